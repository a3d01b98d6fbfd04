package components

import (
	"talent-mailer/internal/infra/readstore"
	"talent-mailer/internal/infra/repository"
	"talent-mailer/internal/infra/sqlc"
	"talent-mailer/internal/usecase/commands"
	"talent-mailer/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// EmailSend
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.EmailSendReadQueries)),
		),
		fx.Annotate(
			readstore.NewEmailSendReadStore,
			fx.As(new(queries.EmailSendReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(commands.RecipientReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.EmailSendLedgerWriteQueries)),
		),
		fx.Annotate(
			repository.NewEmailSendLedgerRepository,
			fx.As(new(commands.LedgerRepository)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
