// Package retention prunes ledger rows older than the configured age.
// Expired windows always produce new keys, so pruning never changes claim results.
package retention

import (
	"context"
	"log/slog"
	"time"

	"talent-mailer/internal/pkg/clock"
)

type LedgerPruner interface {
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type Worker struct {
	ledger   LedgerPruner
	maxAge   time.Duration
	interval time.Duration
	timeout  time.Duration
	clock    clock.Clock
	logger   *slog.Logger

	stopCh chan struct{}
	doneCh chan struct{}
}

func NewWorker(ledger LedgerPruner, maxAge, interval time.Duration, clock clock.Clock, logger *slog.Logger) *Worker {
	return &Worker{
		ledger:   ledger,
		maxAge:   maxAge,
		interval: interval,
		timeout:  30 * time.Second,
		clock:    clock,
		logger:   logger,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// RunOnce deletes every entry created before now - maxAge.
func (w *Worker) RunOnce(ctx context.Context) (int64, error) {
	cutoff := w.clock.Now().Add(-w.maxAge)

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	deleted, err := w.ledger.DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		w.logger.Warn("failed to prune email send ledger",
			slog.Time("cutoff", cutoff),
			slog.String("error", err.Error()),
		)
		return 0, err
	}

	if deleted > 0 {
		w.logger.Info("pruned email send ledger",
			slog.Time("cutoff", cutoff),
			slog.Int64("deleted", deleted),
		)
	}
	return deleted, nil
}

func (w *Worker) Start() {
	go w.loop()
}

// Stop blocks until the loop has exited.
func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.doneCh
}

func (w *Worker) loop() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, _ = w.RunOnce(context.Background())
		case <-w.stopCh:
			return
		}
	}
}
