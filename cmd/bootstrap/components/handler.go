package components

import (
	"context"
	"fmt"

	"talent-mailer/internal/handler"
	"talent-mailer/internal/handler/api"
	"talent-mailer/internal/handler/middleware"
	"talent-mailer/internal/pkg/config"
	"talent-mailer/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEmailHandler,
		api.NewAdminEmailSendHandler,
		middleware.NewAuthMiddleware,
		NewIPRateLimiter,
	),
	fx.Invoke(RegisterRoutes),
)

func NewIPRateLimiter(lc fx.Lifecycle, cfg config.Config, recorder metrics.Recorder) (*middleware.IPRateLimiter, error) {
	limits, err := middleware.NewRateLimiterConfig(cfg.Server.PublicRatePerMinute, cfg.Server.PublicBurst)
	if err != nil {
		return nil, fmt.Errorf("invalid public rate limit: %w", err)
	}
	rl := middleware.NewIPRateLimiter(limits, recorder)
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			rl.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			rl.Stop()
			return nil
		},
	})
	return rl, nil
}

type routeDeps struct {
	fx.In

	Engine         *gin.Engine
	Config         config.Config
	Logger         *middleware.Logger
	EmailHandler   *api.EmailHandler
	AdminHandler   *api.AdminEmailSendHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.IPRateLimiter
	Registry       *prometheus.Registry
}

func RegisterRoutes(d routeDeps) {
	handler.NewRouter(d.Engine, handler.Params{
		Config:         d.Config,
		Logger:         d.Logger,
		EmailHandler:   d.EmailHandler,
		AdminHandler:   d.AdminHandler,
		AuthMiddleware: d.AuthMiddleware,
		RateLimiter:    d.RateLimiter,
		Metrics:        metrics.Handler(d.Registry),
	})
}
