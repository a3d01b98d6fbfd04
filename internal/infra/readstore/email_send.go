package readstore

import (
	"context"

	"talent-mailer/internal/infra"
	"talent-mailer/internal/infra/sqlc"
	"talent-mailer/internal/pkg/pgconv"
	"talent-mailer/internal/usecase/queries"
)

type EmailSendReadQueries interface {
	GetEmailSendByIdempotencyKey(ctx context.Context, db sqlc.DBTX, idempotencyKey string) (sqlc.EmailSendLedger, error)
	ListEmailSendsByRecipient(ctx context.Context, db sqlc.DBTX, arg sqlc.ListEmailSendsByRecipientParams) ([]sqlc.EmailSendLedger, error)
}

type EmailSendReadStore struct {
	queries EmailSendReadQueries
	db      sqlc.DBTX
}

func NewEmailSendReadStore(queries EmailSendReadQueries, db sqlc.DBTX) *EmailSendReadStore {
	return &EmailSendReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *EmailSendReadStore) FindByIdempotencyKey(ctx context.Context, key string) (*queries.EmailSendView, error) {
	row, err := r.queries.GetEmailSendByIdempotencyKey(ctx, r.db, key)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("email send ledger entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get email send ledger entry", err)
	}

	return toEmailSendView(row), nil
}

func (r *EmailSendReadStore) ListByRecipient(ctx context.Context, recipientEmail string, limit int32) ([]*queries.EmailSendView, error) {
	params := sqlc.ListEmailSendsByRecipientParams{
		RecipientEmail: recipientEmail,
		Limit:          limit,
	}

	rows, err := r.queries.ListEmailSendsByRecipient(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list email send ledger entries", err)
	}

	views := make([]*queries.EmailSendView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toEmailSendView(row))
	}
	return views, nil
}

func toEmailSendView(row sqlc.EmailSendLedger) *queries.EmailSendView {
	return &queries.EmailSendView{
		ID:             row.ID,
		Purpose:        row.Purpose,
		RecipientEmail: row.RecipientEmail,
		UserID:         pgconv.UUIDPtrFromPgtype(row.UserID),
		IdempotencyKey: row.IdempotencyKey,
		CooldownBucket: pgconv.TimeFromPgtype(row.CooldownBucket),
		Status:         row.Status,
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
