//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"talent-mailer/internal/infra"
	"talent-mailer/internal/infra/sqlc"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, lower string) (sqlc.FindUserByEmailRow, error) {
	args := m.Called(ctx, db, lower)
	return args.Get(0).(sqlc.FindUserByEmailRow), args.Error(1)
}

func TestUserReadStore_FindByEmail(t *testing.T) {
	verifiedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	verified := sqlc.FindUserByEmailRow{
		ID:              uuid.New(),
		Email:           "model@agency.io",
		DisplayName:     "Kai",
		Role:            "talent",
		EmailVerifiedAt: pgtype.Timestamptz{Time: verifiedAt, Valid: true},
	}
	unverified := verified
	unverified.EmailVerifiedAt = pgtype.Timestamptz{}

	tests := []struct {
		name         string
		mockRow      sqlc.FindUserByEmailRow
		mockError    error
		wantUser     bool
		wantVerified bool
		wantError    bool
	}{
		{name: "success - verified", mockRow: verified, wantUser: true, wantVerified: true},
		{name: "success - unverified", mockRow: unverified, wantUser: true},
		{name: "not found returns nil without error", mockError: pgx.ErrNoRows},
		{name: "db error", mockError: assert.AnError, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, "model@agency.io").
				Return(tt.mockRow, tt.mockError)

			view, err := NewUserReadStore(mockQueries, nil).FindByEmail(context.Background(), "model@agency.io")

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.Nil(t, view)
				return
			}

			require.NoError(t, err)
			if !tt.wantUser {
				assert.Nil(t, view)
				return
			}
			require.NotNil(t, view)
			assert.Equal(t, "Kai", view.DisplayName)
			assert.Equal(t, tt.wantVerified, view.IsVerified())
			mockQueries.AssertExpectations(t)
		})
	}
}
