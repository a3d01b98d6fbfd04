package components

import (
	"talent-mailer/internal/pkg/clock"
	"talent-mailer/internal/pkg/config"
	"talent-mailer/internal/pkg/jwt"
	"talent-mailer/internal/pkg/redact"
	"talent-mailer/internal/usecase"
	"talent-mailer/internal/usecase/commands"
	"talent-mailer/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) *redact.Fingerprinter {
		return redact.NewFingerprinter(cfg.Log.FingerprintKey)
	},
	func(cfg config.Config) commands.LinkConfig {
		return commands.LinkConfig{AppBaseURL: cfg.Mail.AppBaseURL}
	},
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.ActionTokenIssuer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewEmailSendClaimer,
		commands.NewEmailCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewEmailSendQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
