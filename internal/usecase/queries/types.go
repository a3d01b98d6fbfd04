package queries

import (
	"time"

	"github.com/google/uuid"
)

// EmailSendView represents one ledger row as seen by admin tooling
type EmailSendView struct {
	ID             uuid.UUID  `json:"id"`
	Purpose        string     `json:"purpose"`
	RecipientEmail string     `json:"recipient_email"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	IdempotencyKey string     `json:"idempotency_key"`
	CooldownBucket time.Time  `json:"cooldown_bucket"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
}

// RecipientView is the account data needed to address an email
type RecipientView struct {
	ID              uuid.UUID  `json:"id"`
	Email           string     `json:"email"`
	DisplayName     string     `json:"display_name"`
	Role            string     `json:"role"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
}

func (r *RecipientView) IsVerified() bool {
	return r.EmailVerifiedAt != nil
}

// CurrentWindowView pairs the computed window with the entry claimed in it, if any
type CurrentWindowView struct {
	Purpose        string         `json:"purpose"`
	IdempotencyKey string         `json:"idempotency_key"`
	CooldownBucket time.Time      `json:"cooldown_bucket"`
	WindowEndsAt   time.Time      `json:"window_ends_at"`
	Entry          *EmailSendView `json:"entry,omitempty"`
}
