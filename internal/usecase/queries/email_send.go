package queries

import (
	"context"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/infra"
	"talent-mailer/internal/pkg/clock"
	"talent-mailer/internal/pkg/errs"
)

//go:generate mockgen -source=email_send.go -destination=../../../tests/mock/queries/email_send.go -package=queriesmock

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type EmailSendReadStore interface {
	FindByIdempotencyKey(ctx context.Context, key string) (*EmailSendView, error)
	ListByRecipient(ctx context.Context, recipientEmail string, limit int32) ([]*EmailSendView, error)
}

type EmailSendQueries interface {
	LookupCurrentWindow(ctx context.Context, purpose emailsend.Purpose, email string) (*CurrentWindowView, error)
	ListRecent(ctx context.Context, email string, limit int) ([]*EmailSendView, error)
}

type emailSendQueriesImpl struct {
	readStore EmailSendReadStore
	clock     clock.Clock
}

func NewEmailSendQueries(readStore EmailSendReadStore, clock clock.Clock) EmailSendQueries {
	return &emailSendQueriesImpl{
		readStore: readStore,
		clock:     clock,
	}
}

// LookupCurrentWindow recomputes the key a claim made right now would use.
// A window with no claim yet is not an error: Entry is nil.
func (q *emailSendQueriesImpl) LookupCurrentWindow(ctx context.Context, purpose emailsend.Purpose, email string) (*CurrentWindowView, error) {
	w, err := emailsend.ComputeWindow(purpose, email, q.clock.Now())
	if err != nil {
		return nil, err
	}

	view := &CurrentWindowView{
		Purpose:        purpose.String(),
		IdempotencyKey: w.IdempotencyKey,
		CooldownBucket: w.CooldownBucket,
		WindowEndsAt:   w.EndsAt(),
	}

	entry, err := q.readStore.FindByIdempotencyKey(ctx, w.IdempotencyKey)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return view, nil
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	view.Entry = entry
	return view, nil
}

func (q *emailSendQueriesImpl) ListRecent(ctx context.Context, email string, limit int) ([]*EmailSendView, error) {
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	entries, err := q.readStore.ListByRecipient(ctx, emailsend.NormalizeEmail(email), int32(limit))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return entries, nil
}
