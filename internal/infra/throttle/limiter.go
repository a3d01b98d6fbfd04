package throttle

import (
	"context"
	"log/slog"

	"talent-mailer/internal/pkg/clock"
)

type Limiter struct {
	store  Store
	limit  int64
	clock  clock.Clock
	logger *slog.Logger
}

func NewLimiter(store Store, limit int64, clock clock.Clock, logger *slog.Logger) *Limiter {
	return &Limiter{
		store:  store,
		limit:  limit,
		clock:  clock,
		logger: logger,
	}
}

// Allow fails open: a broken counter backend must not block legitimate
// requests, and it cannot cause duplicate sends.
func (l *Limiter) Allow(ctx context.Context, key string) bool {
	count, err := l.store.Increment(ctx, key, l.clock.Now())
	if err != nil {
		l.logger.WarnContext(ctx, "throttle store unavailable, allowing request", slog.String("error", err.Error()))
		return true
	}
	return count <= l.limit
}
