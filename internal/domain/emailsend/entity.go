package emailsend

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntry is one claimed email-send slot. Rows are append-only from the
// claimer's point of view; only the dispatcher moves Status past claimed.
type LedgerEntry struct {
	ID             uuid.UUID
	Purpose        Purpose
	RecipientEmail string
	UserID         *uuid.UUID
	IdempotencyKey string
	CooldownBucket time.Time
	Status         Status
	CreatedAt      time.Time
}

// NewClaim builds the row to insert for a computed window.
func NewClaim(w Window, userID *uuid.UUID) LedgerEntry {
	return LedgerEntry{
		Purpose:        w.Purpose,
		RecipientEmail: w.NormalizedEmail,
		UserID:         userID,
		IdempotencyKey: w.IdempotencyKey,
		CooldownBucket: w.CooldownBucket,
		Status:         StatusClaimed,
	}
}
