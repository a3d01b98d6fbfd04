package throttle

import (
	"context"
	"sync"
	"time"
)

type counter struct {
	windowStart time.Time
	count       int64
}

// MemoryStore keeps counters in process memory. It is not shared across
// instances and loses state on restart.
type MemoryStore struct {
	window time.Duration

	mu       sync.Mutex
	counters map[string]*counter
}

func NewMemoryStore(window time.Duration) *MemoryStore {
	return &MemoryStore{
		window:   window,
		counters: make(map[string]*counter),
	}
}

func (s *MemoryStore) Increment(_ context.Context, key string, now time.Time) (int64, error) {
	start := windowStart(now, s.window)

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[key]
	if !ok || !c.windowStart.Equal(start) {
		c = &counter{windowStart: start}
		s.counters[key] = c
	}
	c.count++

	return c.count, nil
}

// Prune drops every counter whose window has ended.
func (s *MemoryStore) Prune(_ context.Context, now time.Time) error {
	current := windowStart(now, s.window)

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, c := range s.counters {
		if c.windowStart.Before(current) {
			delete(s.counters, key)
		}
	}
	return nil
}

// Len returns the number of tracked keys. For tests and metrics.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.counters)
}
