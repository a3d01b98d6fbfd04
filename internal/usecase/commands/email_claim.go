package commands

import (
	"context"
	"log/slog"
	"time"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/infra"
	"talent-mailer/internal/pkg/clock"
	"talent-mailer/internal/pkg/metrics"
	"talent-mailer/internal/pkg/redact"

	"github.com/google/uuid"
)

//go:generate mockgen -source=email_claim.go -destination=../../../tests/mock/commands/email_claim.go -package=commandsmock

type ClaimReason string

const (
	ReasonAlreadyClaimed ClaimReason = "already-claimed"
	ReasonClaimFailed    ClaimReason = "claim-failed"
)

type ClaimResult struct {
	DidClaim       bool
	LedgerID       uuid.UUID
	IdempotencyKey string
	CooldownBucket time.Time
	// Reason is empty when DidClaim is true
	Reason ClaimReason
}

func (r ClaimResult) outcome() string {
	if r.DidClaim {
		return "claimed"
	}
	return string(r.Reason)
}

// EmailSendClaimer grants at most one send per (purpose, recipient, window).
// Claim never returns an error: every failure mode is a ClaimResult.
type EmailSendClaimer interface {
	ComputeWindow(purpose emailsend.Purpose, recipientEmail string) (emailsend.Window, error)
	Claim(ctx context.Context, purpose emailsend.Purpose, recipientEmail string, userID *uuid.UUID) ClaimResult
}

type emailSendClaimerImpl struct {
	ledger      LedgerRepository
	clock       clock.Clock
	logger      *slog.Logger
	fingerprint *redact.Fingerprinter
	metrics     metrics.Recorder
}

func NewEmailSendClaimer(
	ledger LedgerRepository,
	clock clock.Clock,
	logger *slog.Logger,
	fingerprint *redact.Fingerprinter,
	recorder metrics.Recorder,
) EmailSendClaimer {
	return &emailSendClaimerImpl{
		ledger:      ledger,
		clock:       clock,
		logger:      logger,
		fingerprint: fingerprint,
		metrics:     recorder,
	}
}

func (c *emailSendClaimerImpl) ComputeWindow(purpose emailsend.Purpose, recipientEmail string) (emailsend.Window, error) {
	return emailsend.ComputeWindow(purpose, recipientEmail, c.clock.Now())
}

func (c *emailSendClaimerImpl) Claim(ctx context.Context, purpose emailsend.Purpose, recipientEmail string, userID *uuid.UUID) ClaimResult {
	w, err := c.ComputeWindow(purpose, recipientEmail)
	if err != nil {
		c.logger.ErrorContext(ctx, "email send claim with unknown purpose",
			slog.String("purpose", purpose.String()),
			slog.String("error", err.Error()),
		)
		result := ClaimResult{Reason: ReasonClaimFailed}
		c.metrics.RecordClaim(purpose.String(), result.outcome())
		return result
	}

	result := c.insert(ctx, w, userID)
	c.metrics.RecordClaim(purpose.String(), result.outcome())
	return result
}

// insert is the atomic test-and-set: there is no read before it.
func (c *emailSendClaimerImpl) insert(ctx context.Context, w emailsend.Window, userID *uuid.UUID) ClaimResult {
	result := ClaimResult{
		IdempotencyKey: w.IdempotencyKey,
		CooldownBucket: w.CooldownBucket,
	}

	ledgerID, err := c.ledger.Insert(ctx, emailsend.NewClaim(w, userID))
	switch {
	case err == nil:
		result.DidClaim = true
		result.LedgerID = ledgerID
	case infra.IsKind(err, infra.KindDuplicateKey):
		result.Reason = ReasonAlreadyClaimed
		c.logger.DebugContext(ctx, "email send already claimed for window",
			slog.String("purpose", w.Purpose.String()),
			slog.String("cooldown_bucket", emailsend.FormatBucket(w.CooldownBucket)),
		)
	default:
		result.Reason = ReasonClaimFailed
		c.logger.WarnContext(ctx, "email send claim failed",
			slog.String("purpose", w.Purpose.String()),
			slog.String("cooldown_bucket", emailsend.FormatBucket(w.CooldownBucket)),
			slog.String("recipient_fp", c.fingerprint.Email(w.NormalizedEmail)),
			slog.String("reason", string(ReasonClaimFailed)),
			slog.String("error", err.Error()),
		)
	}

	return result
}
