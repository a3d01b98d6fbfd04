package mailer

import (
	"context"
	"log/slog"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/pkg/redact"
	"talent-mailer/internal/usecase/commands"
)

// LogMailer records that a message would have been sent instead of
// delivering it. Used in local development and tests.
//
// The body is never logged: it carries a signed action link.
type LogMailer struct {
	logger      *slog.Logger
	fingerprint *redact.Fingerprinter
}

func NewLogMailer(logger *slog.Logger, fingerprint *redact.Fingerprinter) *LogMailer {
	return &LogMailer{logger: logger, fingerprint: fingerprint}
}

func (l *LogMailer) Send(ctx context.Context, msg commands.Message) error {
	l.logger.InfoContext(ctx, "email (log driver)",
		slog.String("subject", msg.Subject),
		slog.String("recipient_fp", l.fingerprint.Email(emailsend.NormalizeEmail(msg.To))),
		slog.Int("body_bytes", len(msg.TextBody)),
	)
	return nil
}
