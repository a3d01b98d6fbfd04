//go:build unit

package throttle_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"talent-mailer/internal/infra/throttle"
	"talent-mailer/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("counts within a window", func(t *testing.T) {
		s := throttle.NewMemoryStore(time.Minute)

		for i := int64(1); i <= 3; i++ {
			n, err := s.Increment(ctx, "k", base.Add(time.Duration(i)*time.Second))
			require.NoError(t, err)
			assert.Equal(t, i, n)
		}
	})

	t.Run("resets in the next window", func(t *testing.T) {
		s := throttle.NewMemoryStore(time.Minute)

		_, _ = s.Increment(ctx, "k", base)
		_, _ = s.Increment(ctx, "k", base.Add(59*time.Second))
		n, err := s.Increment(ctx, "k", base.Add(time.Minute))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})

	t.Run("keys are independent", func(t *testing.T) {
		s := throttle.NewMemoryStore(time.Minute)

		_, _ = s.Increment(ctx, "a", base)
		n, _ := s.Increment(ctx, "b", base)
		assert.Equal(t, int64(1), n)
	})

	t.Run("prune drops ended windows only", func(t *testing.T) {
		s := throttle.NewMemoryStore(time.Minute)

		_, _ = s.Increment(ctx, "old", base)
		_, _ = s.Increment(ctx, "current", base.Add(time.Minute))
		require.Equal(t, 2, s.Len())

		require.NoError(t, s.Prune(ctx, base.Add(time.Minute+time.Second)))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		s := throttle.NewMemoryStore(time.Hour)

		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = s.Increment(ctx, "k", base)
			}()
		}
		wg.Wait()

		n, _ := s.Increment(ctx, "k", base)
		assert.Equal(t, int64(51), n)
	})
}

type failingStore struct{}

func (failingStore) Increment(context.Context, string, time.Time) (int64, error) {
	return 0, errors.New("connection refused")
}

func (failingStore) Prune(context.Context, time.Time) error { return nil }

func TestLimiter(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit", func(t *testing.T) {
		clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
		l := throttle.NewLimiter(throttle.NewMemoryStore(10*time.Minute), 2, clk, discard)

		assert.True(t, l.Allow(ctx, "ip|route|a@b.co"))
		assert.True(t, l.Allow(ctx, "ip|route|a@b.co"))
		assert.False(t, l.Allow(ctx, "ip|route|a@b.co"))

		clk.Add(10 * time.Minute)
		assert.True(t, l.Allow(ctx, "ip|route|a@b.co"))
	})

	t.Run("fails open", func(t *testing.T) {
		l := throttle.NewLimiter(failingStore{}, 1, clock.NewRealClock(), discard)

		assert.True(t, l.Allow(ctx, "k"))
		assert.True(t, l.Allow(ctx, "k"))
	})
}

func TestPruner(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	s := throttle.NewMemoryStore(time.Minute)
	_, _ = s.Increment(ctx, "k", clk.Now())
	clk.Add(2 * time.Minute)

	p := throttle.NewPruner(s, 10*time.Millisecond, clk, discard)
	p.Start()
	defer p.Stop()

	assert.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 10*time.Millisecond)
}
