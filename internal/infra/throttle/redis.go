package throttle

import (
	"context"
	"strconv"
	"time"

	"talent-mailer/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// RedisStore shares fixed-window counters across instances. Keys carry the
// window start and expire on their own, so Prune has nothing to do.
type RedisStore struct {
	rdb    redis.Cmdable
	window time.Duration
	prefix string
}

func NewRedisStore(rdb redis.Cmdable, window time.Duration, prefix string) *RedisStore {
	return &RedisStore{
		rdb:    rdb,
		window: window,
		prefix: prefix,
	}
}

func (s *RedisStore) key(key string, now time.Time) string {
	return s.prefix + ":" + key + ":" + strconv.FormatInt(windowStart(now, s.window).UnixMilli(), 10)
}

func (s *RedisStore) Increment(ctx context.Context, key string, now time.Time) (int64, error) {
	k := s.key(key, now)

	pipe := s.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	// expire one window after the window ends to tolerate clock skew between instances
	pipe.PExpire(ctx, k, 2*s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errs.Wrap(err, "failed to increment throttle counter")
	}

	return incr.Val(), nil
}

func (s *RedisStore) Prune(context.Context, time.Time) error {
	return nil
}
