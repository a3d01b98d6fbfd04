package repository

import (
	"context"
	"time"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/infra"
	"talent-mailer/internal/infra/sqlc"
	"talent-mailer/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type EmailSendLedgerWriteQueries interface {
	InsertEmailSendClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertEmailSendClaimParams) (sqlc.InsertEmailSendClaimRow, error)
	UpdateEmailSendStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateEmailSendStatusParams) (int64, error)
	DeleteEmailSendsCreatedBefore(ctx context.Context, db sqlc.DBTX, createdAt pgtype.Timestamptz) (int64, error)
}

type EmailSendLedgerRepository struct {
	queries EmailSendLedgerWriteQueries
	db      sqlc.DBTX
}

func NewEmailSendLedgerRepository(queries EmailSendLedgerWriteQueries, db sqlc.DBTX) *EmailSendLedgerRepository {
	return &EmailSendLedgerRepository{
		queries: queries,
		db:      db,
	}
}

// Insert relies on the unique index on idempotency_key; a conflicting row
// surfaces as infra.KindDuplicateKey.
func (r *EmailSendLedgerRepository) Insert(ctx context.Context, entry emailsend.LedgerEntry) (uuid.UUID, error) {
	params := sqlc.InsertEmailSendClaimParams{
		Purpose:        entry.Purpose.String(),
		RecipientEmail: entry.RecipientEmail,
		UserID:         pgconv.UUIDPtrToPgtype(entry.UserID),
		IdempotencyKey: entry.IdempotencyKey,
		CooldownBucket: pgconv.TimeToPgtype(entry.CooldownBucket),
		Status:         entry.Status.String(),
	}

	row, err := r.queries.InsertEmailSendClaim(ctx, r.db, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert email send claim", err)
	}

	return row.ID, nil
}

func (r *EmailSendLedgerRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status emailsend.Status) error {
	params := sqlc.UpdateEmailSendStatusParams{
		ID:     id,
		Status: status.String(),
	}

	affected, err := r.queries.UpdateEmailSendStatus(ctx, r.db, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update email send status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("email send ledger entry not found", nil, infra.KindNotFound)
	}

	return nil
}

func (r *EmailSendLedgerRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	count, err := r.queries.DeleteEmailSendsCreatedBefore(ctx, r.db, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired email send entries", err)
	}

	return count, nil
}
