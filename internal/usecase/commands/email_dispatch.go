package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/domain/user"
	"talent-mailer/internal/pkg/metrics"
	"talent-mailer/internal/pkg/redact"
	"talent-mailer/internal/usecase/queries"
)

//go:generate mockgen -source=email_dispatch.go -destination=../../../tests/mock/commands/email_dispatch.go -package=commandsmock

// GenericInboxMessage is returned for every email request regardless of
// outcome. Varying it by outcome would reveal whether an account exists.
const GenericInboxMessage = "If an account exists for that address, check your inbox for an email from us."

type DispatchOutcome string

const (
	OutcomeSent             DispatchOutcome = "sent"
	OutcomeThrottled        DispatchOutcome = "throttled"
	OutcomeInvalidRecipient DispatchOutcome = "invalid-recipient"
	OutcomeUnknownRecipient DispatchOutcome = "unknown-recipient"
	OutcomeAlreadyVerified  DispatchOutcome = "already-verified"
	OutcomeAlreadyClaimed   DispatchOutcome = "already-claimed"
	OutcomeClaimFailed      DispatchOutcome = "claim-failed"
	OutcomeLookupFailed     DispatchOutcome = "lookup-failed"
	OutcomeDeliveryFailed   DispatchOutcome = "delivery-failed"
)

type EmailRequest struct {
	Email    string
	ClientIP string
	Route    string
}

// ThrottleKey scopes abuse counters to caller, endpoint and recipient.
func (r EmailRequest) ThrottleKey() string {
	return r.ClientIP + "|" + r.Route + "|" + emailsend.NormalizeEmail(r.Email)
}

// EmailCommands never surfaces an outcome to end users; it exists for
// metrics, logs and tests.
type EmailCommands interface {
	RequestVerificationEmail(ctx context.Context, req EmailRequest) DispatchOutcome
	RequestPasswordReset(ctx context.Context, req EmailRequest) DispatchOutcome
}

type LinkConfig struct {
	AppBaseURL string
}

type template struct {
	subject string
	path    string
	intro   string
}

var templates = map[emailsend.Purpose]template{
	emailsend.PurposeVerifyEmail: {
		subject: "Confirm your email address",
		path:    "/auth/verify-email",
		intro:   "Confirm your email address to finish setting up your account.",
	},
	emailsend.PurposePasswordReset: {
		subject: "Reset your password",
		path:    "/auth/reset-password",
		intro:   "We received a request to reset your password. If it was not you, ignore this email.",
	},
}

type emailCommandsImpl struct {
	claimer     EmailSendClaimer
	ledger      LedgerRepository
	recipients  RecipientReadStore
	mailer      Mailer
	throttle    Throttle
	tokens      ActionTokenIssuer
	links       LinkConfig
	logger      *slog.Logger
	fingerprint *redact.Fingerprinter
	metrics     metrics.Recorder
}

func NewEmailCommands(
	claimer EmailSendClaimer,
	ledger LedgerRepository,
	recipients RecipientReadStore,
	mailer Mailer,
	throttle Throttle,
	tokens ActionTokenIssuer,
	links LinkConfig,
	logger *slog.Logger,
	fingerprint *redact.Fingerprinter,
	recorder metrics.Recorder,
) EmailCommands {
	return &emailCommandsImpl{
		claimer:     claimer,
		ledger:      ledger,
		recipients:  recipients,
		mailer:      mailer,
		throttle:    throttle,
		tokens:      tokens,
		links:       links,
		logger:      logger,
		fingerprint: fingerprint,
		metrics:     recorder,
	}
}

func (e *emailCommandsImpl) RequestVerificationEmail(ctx context.Context, req EmailRequest) DispatchOutcome {
	return e.dispatch(ctx, emailsend.PurposeVerifyEmail, req)
}

func (e *emailCommandsImpl) RequestPasswordReset(ctx context.Context, req EmailRequest) DispatchOutcome {
	return e.dispatch(ctx, emailsend.PurposePasswordReset, req)
}

func (e *emailCommandsImpl) dispatch(ctx context.Context, purpose emailsend.Purpose, req EmailRequest) DispatchOutcome {
	outcome := e.run(ctx, purpose, req)
	e.metrics.RecordDispatch(purpose.String(), string(outcome))
	e.logger.InfoContext(ctx, "email request handled",
		slog.String("purpose", purpose.String()),
		slog.String("outcome", string(outcome)),
		slog.String("recipient_fp", e.fingerprint.Email(emailsend.NormalizeEmail(req.Email))),
	)
	return outcome
}

func (e *emailCommandsImpl) run(ctx context.Context, purpose emailsend.Purpose, req EmailRequest) DispatchOutcome {
	addr, err := user.NewEmail(req.Email)
	if err != nil {
		return OutcomeInvalidRecipient
	}
	email := addr.Value()

	if !e.throttle.Allow(ctx, req.ThrottleKey()) {
		e.metrics.RecordThrottled(req.Route)
		return OutcomeThrottled
	}

	recipient, err := e.recipients.FindByEmail(ctx, email)
	if err != nil {
		e.logger.WarnContext(ctx, "recipient lookup failed",
			slog.String("purpose", purpose.String()),
			slog.String("error", err.Error()),
		)
		return OutcomeLookupFailed
	}
	if recipient == nil {
		return OutcomeUnknownRecipient
	}
	if purpose == emailsend.PurposeVerifyEmail && recipient.IsVerified() {
		return OutcomeAlreadyVerified
	}

	claim := e.claimer.Claim(ctx, purpose, email, &recipient.ID)
	if !claim.DidClaim {
		if claim.Reason == ReasonAlreadyClaimed {
			return OutcomeAlreadyClaimed
		}
		return OutcomeClaimFailed
	}

	// the claim is spent from here on: no retry within this window
	msg, err := e.compose(purpose, recipient)
	if err == nil {
		err = e.mailer.Send(ctx, msg)
	}
	if err != nil {
		e.logger.WarnContext(ctx, "email delivery failed",
			slog.String("purpose", purpose.String()),
			slog.String("ledger_id", claim.LedgerID.String()),
			slog.String("error", err.Error()),
		)
		e.markStatus(ctx, claim, emailsend.StatusFailed)
		return OutcomeDeliveryFailed
	}

	e.markStatus(ctx, claim, emailsend.StatusSent)
	return OutcomeSent
}

func (e *emailCommandsImpl) markStatus(ctx context.Context, claim ClaimResult, status emailsend.Status) {
	if err := e.ledger.UpdateStatus(ctx, claim.LedgerID, status); err != nil {
		// Continue without failing - the send decision is already final
		e.logger.WarnContext(ctx, "failed to record email send status",
			slog.String("ledger_id", claim.LedgerID.String()),
			slog.String("status", status.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (e *emailCommandsImpl) compose(purpose emailsend.Purpose, recipient *queries.RecipientView) (Message, error) {
	tpl, ok := templates[purpose]
	if !ok {
		return Message{}, emailsend.ErrUnknownPurpose
	}

	ttl, err := purpose.Cooldown()
	if err != nil {
		return Message{}, err
	}
	// links stay valid for a few windows so a slow inbox does not strand the user
	token, err := e.tokens.GenerateActionToken(recipient.ID, purpose.String(), 6*ttl)
	if err != nil {
		return Message{}, fmt.Errorf("failed to issue action token: %w", err)
	}

	link := strings.TrimRight(e.links.AppBaseURL, "/") + tpl.path + "?token=" + url.QueryEscape(token)

	greeting := "Hi,"
	if recipient.DisplayName != "" {
		greeting = "Hi " + recipient.DisplayName + ","
	}

	return Message{
		To:       recipient.Email,
		ToName:   recipient.DisplayName,
		Subject:  tpl.subject,
		TextBody: greeting + "\n\n" + tpl.intro + "\n\n" + link + "\n",
	}, nil
}
