//go:build unit

package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"talent-mailer/internal/pkg/redact"
	"talent-mailer/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogMailer_Send(t *testing.T) {
	buf := &bytes.Buffer{}
	fp := redact.NewFingerprinter("test-key")
	m := NewLogMailer(slog.New(slog.NewJSONHandler(buf, nil)), fp)

	msg := commands.Message{
		To:       "model@agency.io",
		ToName:   "Kai",
		Subject:  "Reset your password",
		TextBody: "Hi Kai,\n\nhttps://talent.test/auth/reset-password?token=eyJhbGciOiJIUzI1NiJ9.secret.sig\n",
	}

	require.NoError(t, m.Send(context.Background(), msg))

	out := buf.String()
	assert.Contains(t, out, "Reset your password")
	assert.Contains(t, out, fp.Email("model@agency.io"))
	assert.NotContains(t, out, "token=")
	assert.NotContains(t, out, "eyJhbGciOiJIUzI1NiJ9")
	assert.NotContains(t, out, "model@agency.io")
}
