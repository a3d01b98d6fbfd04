package components

import (
	"context"
	"fmt"
	"log/slog"

	"talent-mailer/internal/infra/mailer"
	"talent-mailer/internal/infra/retention"
	"talent-mailer/internal/infra/throttle"
	"talent-mailer/internal/pkg/clock"
	"talent-mailer/internal/pkg/config"
	"talent-mailer/internal/pkg/redact"
	"talent-mailer/internal/usecase/commands"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewThrottleStore,
		fx.Annotate(
			NewThrottleLimiter,
			fx.As(new(commands.Throttle)),
		),
		NewMailer,
	),
	fx.Invoke(StartLedgerRetention),
)

func NewThrottleStore(lc fx.Lifecycle, cfg config.Config, rdb *redis.Client, clk clock.Clock, logger *slog.Logger) (throttle.Store, error) {
	switch cfg.Throttle.Backend {
	case "redis":
		return throttle.NewRedisStore(rdb, cfg.Throttle.Window, cfg.Throttle.KeyPrefix), nil
	case "memory", "":
		store := throttle.NewMemoryStore(cfg.Throttle.Window)
		pruner := throttle.NewPruner(store, cfg.Throttle.PruneInterval, clk, logger)
		lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				pruner.Start()
				return nil
			},
			OnStop: func(_ context.Context) error {
				pruner.Stop()
				return nil
			},
		})
		return store, nil
	default:
		return nil, fmt.Errorf("unknown THROTTLE_BACKEND %q", cfg.Throttle.Backend)
	}
}

func NewThrottleLimiter(store throttle.Store, cfg config.Config, clk clock.Clock, logger *slog.Logger) *throttle.Limiter {
	return throttle.NewLimiter(store, cfg.Throttle.Limit, clk, logger)
}

func NewMailer(cfg config.Config, logger *slog.Logger, fingerprint *redact.Fingerprinter) (commands.Mailer, error) {
	return mailer.New(cfg.Mail, logger, fingerprint)
}

func StartLedgerRetention(lc fx.Lifecycle, cfg config.Config, ledger commands.LedgerRepository, clk clock.Clock, logger *slog.Logger) {
	if !cfg.Retention.Enabled {
		return
	}

	worker := retention.NewWorker(ledger, cfg.Retention.MaxAge, cfg.Retention.PruneInterval, clk, logger)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			worker.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			worker.Stop()
			return nil
		},
	})
}
