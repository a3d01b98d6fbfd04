// Package throttle is a best-effort, fixed-window request counter used to
// shed abusive email request volume. It never decides whether an email is a
// duplicate; the send ledger does that.
package throttle

import (
	"context"
	"time"
)

// Store counts hits per key within the fixed window containing now.
type Store interface {
	Increment(ctx context.Context, key string, now time.Time) (int64, error)
	Prune(ctx context.Context, now time.Time) error
}

func windowStart(now time.Time, window time.Duration) time.Time {
	return now.Truncate(window)
}
