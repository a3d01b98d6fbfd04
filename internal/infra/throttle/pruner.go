package throttle

import (
	"context"
	"log/slog"
	"time"

	"talent-mailer/internal/pkg/clock"
)

// Pruner bounds MemoryStore growth by pruning on an interval.
type Pruner struct {
	store    Store
	interval time.Duration
	clock    clock.Clock
	logger   *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

func NewPruner(store Store, interval time.Duration, clock clock.Clock, logger *slog.Logger) *Pruner {
	return &Pruner{
		store:    store,
		interval: interval,
		clock:    clock,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (p *Pruner) Start() {
	go p.loop()
}

// Stop blocks until the loop has exited.
func (p *Pruner) Stop() {
	close(p.stopCh)
	<-p.doneCh
}

func (p *Pruner) loop() {
	defer close(p.doneCh)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.store.Prune(context.Background(), p.clock.Now()); err != nil {
				p.logger.Warn("failed to prune throttle counters", slog.String("error", err.Error()))
			}
		case <-p.stopCh:
			return
		}
	}
}
