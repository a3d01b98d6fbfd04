package readstore

import (
	"context"

	"talent-mailer/internal/infra"
	"talent-mailer/internal/infra/sqlc"
	"talent-mailer/internal/pkg/pgconv"
	"talent-mailer/internal/usecase/queries"
)

type UserReadQueries interface {
	FindUserByEmail(ctx context.Context, db sqlc.DBTX, lower string) (sqlc.FindUserByEmailRow, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByEmail returns (nil, nil) when no account exists so callers can stay
// silent about account existence without inspecting error kinds.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.RecipientView, error) {
	row, err := r.queries.FindUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}

	return &queries.RecipientView{
		ID:              row.ID,
		Email:           row.Email,
		DisplayName:     row.DisplayName,
		Role:            row.Role,
		EmailVerifiedAt: pgconv.TimePtrFromPgtype(row.EmailVerifiedAt),
	}, nil
}
