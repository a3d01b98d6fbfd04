package mailer

import (
	"fmt"
	"log/slog"

	"talent-mailer/internal/pkg/config"
	"talent-mailer/internal/pkg/redact"
	"talent-mailer/internal/usecase/commands"
)

// New selects the sender from MAIL_DRIVER. There is no fallback: an unset
// driver must not silently stop delivery.
func New(cfg config.MailConfig, logger *slog.Logger, fingerprint *redact.Fingerprinter) (commands.Mailer, error) {
	switch cfg.Driver {
	case "smtp":
		return NewSMTPMailer(cfg), nil
	case "log":
		return NewLogMailer(logger, fingerprint), nil
	default:
		return nil, fmt.Errorf("unknown MAIL_DRIVER %q", cfg.Driver)
	}
}
