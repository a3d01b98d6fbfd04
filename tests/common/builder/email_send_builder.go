//go:build unit || e2e

package builder

import (
	"time"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/usecase/queries"

	"github.com/google/uuid"
)

type EmailSendBuilder struct {
	Purpose emailsend.Purpose
	Email   string
	UserID  *uuid.UUID
	Status  emailsend.Status
	At      time.Time
}

func NewEmailSendBuilder() *EmailSendBuilder {
	userID := uuid.New()
	return &EmailSendBuilder{
		Purpose: emailsend.PurposePasswordReset,
		Email:   "model@agency.io",
		UserID:  &userID,
		Status:  emailsend.StatusSent,
		At:      time.Date(2026, 10, 14, 9, 2, 0, 0, time.UTC),
	}
}

func (b *EmailSendBuilder) With(mutate func(*EmailSendBuilder)) *EmailSendBuilder {
	mutate(b)
	return b
}

func (b *EmailSendBuilder) BuildDomain() emailsend.LedgerEntry {
	entry := emailsend.NewClaim(emailsend.MustComputeWindow(b.Purpose, b.Email, b.At), b.UserID)
	entry.Status = b.Status
	return entry
}

func (b *EmailSendBuilder) BuildView() *queries.EmailSendView {
	entry := b.BuildDomain()
	return &queries.EmailSendView{
		ID:             uuid.New(),
		Purpose:        entry.Purpose.String(),
		RecipientEmail: entry.RecipientEmail,
		UserID:         entry.UserID,
		IdempotencyKey: entry.IdempotencyKey,
		CooldownBucket: entry.CooldownBucket,
		Status:         entry.Status.String(),
		CreatedAt:      b.At,
	}
}

// BuildCurrentWindow returns the admin view of the window containing At; the
// entry is omitted when claimed is false.
func (b *EmailSendBuilder) BuildCurrentWindow(claimed bool) *queries.CurrentWindowView {
	w := emailsend.MustComputeWindow(b.Purpose, b.Email, b.At)
	v := &queries.CurrentWindowView{
		Purpose:        b.Purpose.String(),
		IdempotencyKey: w.IdempotencyKey,
		CooldownBucket: w.CooldownBucket,
		WindowEndsAt:   w.EndsAt(),
	}
	if claimed {
		v.Entry = b.BuildView()
	}
	return v
}
