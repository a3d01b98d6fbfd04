package commands

import (
	"context"
	"time"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports.go -package=commandsmock

// LedgerRepository is the write side of the email send ledger. Insert must
// report a uniqueness conflict as infra.KindDuplicateKey.
type LedgerRepository interface {
	Insert(ctx context.Context, entry emailsend.LedgerEntry) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status emailsend.Status) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type RecipientReadStore interface {
	FindByEmail(ctx context.Context, email string) (*queries.RecipientView, error)
}

type Message struct {
	To       string
	ToName   string
	Subject  string
	TextBody string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Throttle is the best-effort abuse filter. It is never consulted for
// duplicate suppression.
type Throttle interface {
	Allow(ctx context.Context, key string) bool
}

type ActionTokenIssuer interface {
	GenerateActionToken(userID uuid.UUID, purpose string, ttl time.Duration) (string, error)
}
