package user

import (
	"errors"
	"regexp"

	"talent-mailer/internal/domain/emailsend"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrInvalidRole  = errors.New("invalid role")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email holds an address already trimmed and lower-cased.
type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	s = emailsend.NormalizeEmail(s)
	if len(s) > 254 || !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}
