package emailsend

import (
	"errors"
	"time"
)

var (
	ErrUnknownPurpose = errors.New("unknown email send purpose")
	ErrInvalidStatus  = errors.New("invalid email send status")
)

type Purpose string

const (
	PurposeVerifyEmail   Purpose = "verify_email"
	PurposePasswordReset Purpose = "password_reset"
)

// cooldowns is the single source of truth for which purposes exist.
var cooldowns = map[Purpose]time.Duration{
	PurposeVerifyEmail:   60 * time.Second,
	PurposePasswordReset: 5 * time.Minute,
}

func (p Purpose) String() string {
	return string(p)
}

func (p Purpose) IsValid() bool {
	_, ok := cooldowns[p]
	return ok
}

// Cooldown returns the fixed window width for the purpose.
func (p Purpose) Cooldown() (time.Duration, error) {
	d, ok := cooldowns[p]
	if !ok {
		return 0, ErrUnknownPurpose
	}
	return d, nil
}

func ParsePurpose(s string) (Purpose, error) {
	p := Purpose(s)
	if !p.IsValid() {
		return "", ErrUnknownPurpose
	}
	return p, nil
}

type Status string

const (
	StatusClaimed Status = "claimed"
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusClaimed, StatusSent, StatusFailed:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
