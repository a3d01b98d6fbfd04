//go:build unit

package emailsend_test

import (
	"testing"
	"time"

	"talent-mailer/internal/domain/emailsend"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func TestComputeWindow(t *testing.T) {
	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		first, err := emailsend.ComputeWindow(emailsend.PurposeVerifyEmail, "talent@example.com", at(1_700_000_123_456))
		require.NoError(t, err)
		second, err := emailsend.ComputeWindow(emailsend.PurposeVerifyEmail, "talent@example.com", at(1_700_000_123_456))
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Window mismatch (-first +second):\n%s", diff)
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		raw, err := emailsend.ComputeWindow(emailsend.PurposeVerifyEmail, " User@Example.com ", at(5_000))
		require.NoError(t, err)
		clean, err := emailsend.ComputeWindow(emailsend.PurposeVerifyEmail, "user@example.com", at(5_000))
		require.NoError(t, err)

		assert.Equal(t, clean.IdempotencyKey, raw.IdempotencyKey)
		assert.Equal(t, "user@example.com", raw.NormalizedEmail)
	})

	t.Run("window boundaries", func(t *testing.T) {
		testCases := []struct {
			name       string
			nowMs      int64
			expectedMs int64
		}{
			{name: "window start", nowMs: 60_000, expectedMs: 60_000},
			{name: "last ms of window", nowMs: 119_999, expectedMs: 60_000},
			{name: "next window start", nowMs: 120_000, expectedMs: 120_000},
			{name: "epoch", nowMs: 0, expectedMs: 0},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				w, err := emailsend.ComputeWindow(emailsend.PurposeVerifyEmail, "a@b.co", at(tc.nowMs))
				require.NoError(t, err)
				assert.Equal(t, tc.expectedMs, w.CooldownBucket.UnixMilli())
				assert.Equal(t, 60*time.Second, w.Cooldown)
			})
		}

		early, _ := emailsend.ComputeWindow(emailsend.PurposeVerifyEmail, "a@b.co", at(60_000))
		late, _ := emailsend.ComputeWindow(emailsend.PurposeVerifyEmail, "a@b.co", at(119_999))
		next, _ := emailsend.ComputeWindow(emailsend.PurposeVerifyEmail, "a@b.co", at(120_000))
		assert.Equal(t, early.IdempotencyKey, late.IdempotencyKey)
		assert.NotEqual(t, late.IdempotencyKey, next.IdempotencyKey)
		assert.True(t, next.CooldownBucket.After(late.CooldownBucket))
	})

	t.Run("key format", func(t *testing.T) {
		w, err := emailsend.ComputeWindow(emailsend.PurposePasswordReset, "A@Example.com", at(1_000))
		require.NoError(t, err)

		assert.Equal(t, "password_reset:a@example.com:1970-01-01T00:00:00.000Z", w.IdempotencyKey)
		assert.Equal(t, 5*time.Minute, w.Cooldown)
	})

	t.Run("unknown purpose", func(t *testing.T) {
		_, err := emailsend.ComputeWindow(emailsend.Purpose("newsletter"), "a@b.co", at(0))
		assert.ErrorIs(t, err, emailsend.ErrUnknownPurpose)

		assert.Panics(t, func() {
			emailsend.MustComputeWindow(emailsend.Purpose("newsletter"), "a@b.co", at(0))
		})
	})

	t.Run("next window", func(t *testing.T) {
		w := emailsend.MustComputeWindow(emailsend.PurposePasswordReset, "a@b.co", at(1_500))
		next := w.Next()

		assert.Equal(t, int64(300_000), next.CooldownBucket.UnixMilli())
		assert.Equal(t, w.EndsAt(), next.CooldownBucket)
		assert.Equal(t, emailsend.MustComputeWindow(emailsend.PurposePasswordReset, "a@b.co", at(300_001)).IdempotencyKey, next.IdempotencyKey)
	})
}

func TestBucketStart(t *testing.T) {
	assert.Equal(t, int64(0), emailsend.BucketStart(299_999, 300_000))
	assert.Equal(t, int64(300_000), emailsend.BucketStart(300_000, 300_000))
	assert.Equal(t, int64(-60_000), emailsend.BucketStart(-1, 60_000))
}

func TestParsePurpose(t *testing.T) {
	p, err := emailsend.ParsePurpose("verify_email")
	require.NoError(t, err)
	assert.Equal(t, emailsend.PurposeVerifyEmail, p)

	_, err = emailsend.ParsePurpose("VERIFY_EMAIL")
	assert.ErrorIs(t, err, emailsend.ErrUnknownPurpose)
}

func TestNewClaim(t *testing.T) {
	w := emailsend.MustComputeWindow(emailsend.PurposeVerifyEmail, " Model@Agency.io", at(61_000))
	entry := emailsend.NewClaim(w, nil)

	assert.Equal(t, emailsend.StatusClaimed, entry.Status)
	assert.Equal(t, "model@agency.io", entry.RecipientEmail)
	assert.Equal(t, w.IdempotencyKey, entry.IdempotencyKey)
	assert.Nil(t, entry.UserID)
}
