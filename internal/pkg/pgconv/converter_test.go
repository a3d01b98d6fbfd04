//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"talent-mailer/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, &id, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(&id)))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgconv.UUIDPtrToPgtype(nil)))
}

func TestTimeFromPgtype(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)
	local := time.Date(2026, 1, 2, 9, 0, 0, 0, tokyo)

	got := pgconv.TimeFromPgtype(pgtype.Timestamptz{Time: local, Valid: true})
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(local))

	assert.True(t, pgconv.TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("scan: %w", sql.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("boom")))
}
