//go:build unit

package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"talent-mailer/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLoggedRouter(t *testing.T, level string) (*gin.Engine, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	cfg := config.NewTestConfig().Log
	cfg.Level = level
	buf := &bytes.Buffer{}
	logger := newLogger(cfg, buf)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.POST("/api/auth/password-reset", func(c *gin.Context) {
		c.JSON(http.StatusAccepted, gin.H{"request_id": GetRequestID(c)})
	})
	return r, buf
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	router, _ := newLoggedRouter(t, "info")

	t.Run("caller supplied id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/password-reset", nil)
		req.Header.Set(requestIDHeader, "req-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "req-123", w.Header().Get(requestIDHeader))
		assert.Contains(t, w.Body.String(), "req-123")
	})

	t.Run("missing id is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/password-reset", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, w.Header().Get(requestIDHeader))
	})
}

func TestLoggingMiddleware_NoBodyInLogs(t *testing.T) {
	router, buf := newLoggedRouter(t, "debug")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/password-reset",
		bytes.NewBufferString(`{"email":"model@agency.io"}`))
	router.ServeHTTP(httptest.NewRecorder(), req)

	out := buf.String()
	assert.Contains(t, out, "Request started")
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "status_code=202")
	assert.NotContains(t, out, "model@agency.io")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
