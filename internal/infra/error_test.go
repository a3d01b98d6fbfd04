//go:build unit

package infra_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"talent-mailer/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		kind       []infra.RepositoryErrorKind
		expectKind infra.RepositoryErrorKind
	}{
		{
			name:       "unique violation",
			err:        &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"},
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "wrapped unique violation",
			err:        fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}),
			expectKind: infra.KindDuplicateKey,
		},
		{
			name:       "foreign key violation",
			err:        &pgconn.PgError{Code: "23503"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "message mentioning duplicate key is still a failure",
			err:        errors.New("duplicate key value violates unique constraint"),
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "context deadline",
			err:        context.DeadlineExceeded,
			expectKind: infra.KindDBFailure,
		},
		{
			name:       "explicit kind wins",
			err:        errors.New("no rows"),
			kind:       []infra.RepositoryErrorKind{infra.KindNotFound},
			expectKind: infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op failed", tc.err, tc.kind...)

			assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestUniqueConstraint(t *testing.T) {
	name, ok := infra.UniqueConstraint(&pgconn.PgError{Code: "23505", ConstraintName: "email_send_ledger_idempotency_key_key"})
	assert.True(t, ok)
	assert.Equal(t, "email_send_ledger_idempotency_key_key", name)

	_, ok = infra.UniqueConstraint(errors.New("boom"))
	assert.False(t, ok)
}
