//go:build unit || e2e

package builder

import (
	"time"

	"talent-mailer/internal/usecase/queries"

	"github.com/google/uuid"
)

type RecipientBuilder struct {
	Email       string
	DisplayName string
	Role        string
	VerifiedAt  *time.Time
}

func NewRecipientBuilder() *RecipientBuilder {
	return &RecipientBuilder{
		Email:       "model@agency.io",
		DisplayName: "Kai",
		Role:        "talent",
	}
}

func (r *RecipientBuilder) With(mutate func(*RecipientBuilder)) *RecipientBuilder {
	mutate(r)
	return r
}

func (r *RecipientBuilder) AsVerified() *RecipientBuilder {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r.VerifiedAt = &at
	return r
}

func (r *RecipientBuilder) BuildView() *queries.RecipientView {
	return &queries.RecipientView{
		ID:              uuid.New(),
		Email:           r.Email,
		DisplayName:     r.DisplayName,
		Role:            r.Role,
		EmailVerifiedAt: r.VerifiedAt,
	}
}
