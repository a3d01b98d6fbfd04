//go:build unit

package redact_test

import (
	"strings"
	"testing"

	"talent-mailer/internal/pkg/redact"

	"github.com/stretchr/testify/assert"
)

func TestFingerprinter(t *testing.T) {
	f := redact.NewFingerprinter("secret")

	a := f.Email("model@agency.io")
	assert.Len(t, a, 16)
	assert.Equal(t, a, f.Email("model@agency.io"))
	assert.NotEqual(t, a, f.Email("other@agency.io"))
	assert.NotContains(t, a, "agency")

	other := redact.NewFingerprinter("another-secret")
	assert.NotEqual(t, a, other.Email("model@agency.io"))

	long := redact.NewFingerprinter(strings.Repeat("k", 100))
	assert.NotEqual(t, "unavailable", long.Email("model@agency.io"))
}
