package mailer

import (
	"context"
	"crypto/tls"

	"talent-mailer/internal/pkg/config"
	"talent-mailer/internal/pkg/errs"
	"talent-mailer/internal/usecase/commands"

	mail "gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type SMTPMailer struct {
	from   string
	dialer dialer
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	if cfg.InsecureTLS {
		d.TLSConfig = &tls.Config{InsecureSkipVerify: true, ServerName: cfg.Host} // #nosec G402 -- local relays only
	}

	return &SMTPMailer{
		from:   cfg.From,
		dialer: d,
	}
}

func (s *SMTPMailer) Send(ctx context.Context, msg commands.Message) error {
	if err := ctx.Err(); err != nil {
		return errs.Mark(err, errs.ErrMailDeliveryFailed)
	}

	if err := s.dialer.DialAndSend(s.build(msg)); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to send email via SMTP"), errs.ErrMailDeliveryFailed)
	}
	return nil
}

func (s *SMTPMailer) build(msg commands.Message) *mail.Message {
	m := mail.NewMessage()
	m.SetHeader("From", s.from)
	if msg.ToName != "" {
		m.SetAddressHeader("To", msg.To, msg.ToName)
	} else {
		m.SetHeader("To", msg.To)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.TextBody)
	return m
}
