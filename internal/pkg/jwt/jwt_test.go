//go:build unit

package jwt

import (
	"testing"
	"time"

	"talent-mailer/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	userID := uuid.New()

	t.Run("access token round trip", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.TokenType)
	})

	t.Run("action token carries purpose", func(t *testing.T) {
		svc := NewService("secret", time.Hour)

		token, err := svc.GenerateActionToken(userID, "password_reset", 5*time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeAction, claims.TokenType)
		assert.Equal(t, "password_reset", claims.Purpose)
		assert.NotEmpty(t, claims.ID)
	})

	t.Run("action token lifetime is the caller's ttl", func(t *testing.T) {
		svc := NewService("secret", time.Hour)
		issued := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
		svc.now = func() time.Time { return issued }

		token, err := svc.GenerateActionToken(userID, "password_reset", 30*time.Minute)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.True(t, claims.ExpiresAt.Time.Equal(issued.Add(30*time.Minute)))
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		issued := time.Now().Add(-time.Hour)
		svc.now = func() time.Time { return issued }

		token, err := svc.GenerateToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateToken(userID, user.RoleTalent)
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
