//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"talent-mailer/internal/domain/emailsend"
	"talent-mailer/internal/infra"
	"talent-mailer/internal/pkg/clock"
	"talent-mailer/internal/pkg/redact"
	"talent-mailer/internal/usecase/commands"
	commandsmock "talent-mailer/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// uniqueLedger enforces the idempotency_key unique index in memory.
type uniqueLedger struct {
	mu   sync.Mutex
	rows map[string]emailsend.LedgerEntry
	err  error
}

func newUniqueLedger() *uniqueLedger {
	return &uniqueLedger{rows: map[string]emailsend.LedgerEntry{}}
}

func (l *uniqueLedger) Insert(_ context.Context, entry emailsend.LedgerEntry) (uuid.UUID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert email send claim", l.err)
	}
	if _, ok := l.rows[entry.IdempotencyKey]; ok {
		return uuid.Nil, infra.WrapRepoErr("failed to insert email send claim", &pgconn.PgError{
			Code:           "23505",
			ConstraintName: "email_send_ledger_idempotency_key_key",
		})
	}
	entry.ID = uuid.New()
	l.rows[entry.IdempotencyKey] = entry
	return entry.ID, nil
}

func (l *uniqueLedger) UpdateStatus(context.Context, uuid.UUID, emailsend.Status) error { return nil }

func (l *uniqueLedger) DeleteCreatedBefore(context.Context, time.Time) (int64, error) { return 0, nil }

func (l *uniqueLedger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.rows)
}

type countingRecorder struct {
	mu     sync.Mutex
	claims map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{claims: map[string]int{}}
}

func (r *countingRecorder) RecordClaim(purpose, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.claims[purpose+"/"+outcome]++
}

func (r *countingRecorder) RecordDispatch(string, string) {}

func (r *countingRecorder) RecordThrottled(string) {}

type claimerFixture struct {
	ledger   *uniqueLedger
	clock    *clock.MockClock
	logs     *bytes.Buffer
	recorder *countingRecorder
	claimer  commands.EmailSendClaimer
}

func newClaimerFixture(startMs int64) *claimerFixture {
	f := &claimerFixture{
		ledger:   newUniqueLedger(),
		clock:    clock.NewMockClockAtMillis(startMs),
		logs:     &bytes.Buffer{},
		recorder: newCountingRecorder(),
	}
	logger := slog.New(slog.NewTextHandler(f.logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f.claimer = commands.NewEmailSendClaimer(f.ledger, f.clock, logger, redact.NewFingerprinter("test-key"), f.recorder)
	return f
}

func TestClaim_PasswordResetScenario(t *testing.T) {
	f := newClaimerFixture(1000)
	ctx := context.Background()

	first := f.claimer.Claim(ctx, emailsend.PurposePasswordReset, "A@Example.com", nil)
	require.True(t, first.DidClaim)
	assert.NotEqual(t, uuid.Nil, first.LedgerID)
	assert.Equal(t, "password_reset:a@example.com:1970-01-01T00:00:00.000Z", first.IdempotencyKey)
	assert.Equal(t, time.UnixMilli(0).UTC(), first.CooldownBucket)
	assert.Empty(t, first.Reason)

	f.clock.SetMillis(1500)
	second := f.claimer.Claim(ctx, emailsend.PurposePasswordReset, "a@example.com", nil)
	assert.False(t, second.DidClaim)
	assert.Equal(t, commands.ReasonAlreadyClaimed, second.Reason)
	assert.Equal(t, first.IdempotencyKey, second.IdempotencyKey)

	f.clock.SetMillis(300001)
	third := f.claimer.Claim(ctx, emailsend.PurposePasswordReset, "a@example.com", nil)
	require.True(t, third.DidClaim)
	assert.Equal(t, "password_reset:a@example.com:1970-01-01T00:05:00.000Z", third.IdempotencyKey)

	assert.Equal(t, 2, f.ledger.count())
	assert.Equal(t, 2, f.recorder.claims["password_reset/claimed"])
	assert.Equal(t, 1, f.recorder.claims["password_reset/already-claimed"])
}

func TestClaim_AtMostOneUnderConcurrency(t *testing.T) {
	f := newClaimerFixture(42_000)
	spellings := []string{"user@example.com", " USER@example.com", "User@Example.Com  "}

	const workers = 64
	results := make([]commands.ClaimResult, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = f.claimer.Claim(context.Background(), emailsend.PurposeVerifyEmail, spellings[i%len(spellings)], nil)
		}(i)
	}
	close(start)
	wg.Wait()

	claimed := 0
	for _, r := range results {
		if r.DidClaim {
			claimed++
			continue
		}
		assert.Equal(t, commands.ReasonAlreadyClaimed, r.Reason)
	}
	assert.Equal(t, 1, claimed)
	assert.Equal(t, 1, f.ledger.count())
}

func TestClaim_DistinctWindowsDoNotCollide(t *testing.T) {
	f := newClaimerFixture(10_000)
	ctx := context.Background()

	cases := []struct {
		purpose emailsend.Purpose
		email   string
	}{
		{emailsend.PurposeVerifyEmail, "a@example.com"},
		{emailsend.PurposePasswordReset, "a@example.com"},
		{emailsend.PurposeVerifyEmail, "b@example.com"},
	}
	for _, c := range cases {
		r := f.claimer.Claim(ctx, c.purpose, c.email, nil)
		assert.True(t, r.DidClaim, "%s %s", c.purpose, c.email)
	}

	// next verify_email bucket for the same recipient
	f.clock.SetMillis(60_000)
	r := f.claimer.Claim(ctx, emailsend.PurposeVerifyEmail, "a@example.com", nil)
	assert.True(t, r.DidClaim)

	assert.Equal(t, 4, f.ledger.count())
}

func TestClaim_InfrastructureFailure(t *testing.T) {
	f := newClaimerFixture(1000)
	f.ledger.err = assert.AnError

	r := f.claimer.Claim(context.Background(), emailsend.PurposePasswordReset, "Secret.Person@example.com", nil)

	assert.False(t, r.DidClaim)
	assert.Equal(t, commands.ReasonClaimFailed, r.Reason)
	assert.NotEqual(t, commands.ReasonAlreadyClaimed, r.Reason)
	assert.Equal(t, uuid.Nil, r.LedgerID)

	logs := f.logs.String()
	assert.Contains(t, logs, "level=WARN")
	assert.Contains(t, logs, "reason=claim-failed")
	assert.Contains(t, logs, "purpose=password_reset")
	assert.Contains(t, logs, "cooldown_bucket=1970-01-01T00:00:00.000Z")
	assert.Contains(t, logs, "recipient_fp=")
	assert.NotContains(t, logs, "secret.person@example.com")
	assert.Equal(t, 1, f.recorder.claims["password_reset/claim-failed"])
}

func TestClaim_ConflictIsLoggedAtDebugOnly(t *testing.T) {
	f := newClaimerFixture(1000)
	ctx := context.Background()

	require.True(t, f.claimer.Claim(ctx, emailsend.PurposeVerifyEmail, "a@example.com", nil).DidClaim)
	f.logs.Reset()

	r := f.claimer.Claim(ctx, emailsend.PurposeVerifyEmail, "a@example.com", nil)

	assert.Equal(t, commands.ReasonAlreadyClaimed, r.Reason)
	assert.Contains(t, f.logs.String(), "level=DEBUG")
	assert.NotContains(t, f.logs.String(), "level=WARN")
}

func TestClaim_ContextCancellationIsClaimFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := commandsmock.NewMockLedgerRepository(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ledger.EXPECT().Insert(gomock.Any(), gomock.Any()).
		Return(uuid.Nil, infra.WrapRepoErr("failed to insert email send claim", context.Canceled))

	claimer := commands.NewEmailSendClaimer(ledger, clock.NewMockClockAtMillis(0), slog.New(slog.DiscardHandler),
		redact.NewFingerprinter(""), newCountingRecorder())

	r := claimer.Claim(ctx, emailsend.PurposeVerifyEmail, "a@example.com", nil)
	assert.Equal(t, commands.ReasonClaimFailed, r.Reason)
}

func TestClaim_PassesUserAndWindowToLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := commandsmock.NewMockLedgerRepository(ctrl)
	userID := uuid.New()
	ledgerID := uuid.New()

	ledger.EXPECT().Insert(gomock.Any(), gomock.Cond(func(x any) bool {
		e := x.(emailsend.LedgerEntry)
		return e.UserID != nil && *e.UserID == userID &&
			e.Status == emailsend.StatusClaimed &&
			e.RecipientEmail == "a@example.com" &&
			e.IdempotencyKey == "verify_email:a@example.com:1970-01-01T00:01:00.000Z"
	})).Return(ledgerID, nil)

	claimer := commands.NewEmailSendClaimer(ledger, clock.NewMockClockAtMillis(119_999), slog.New(slog.DiscardHandler),
		redact.NewFingerprinter(""), newCountingRecorder())

	r := claimer.Claim(context.Background(), emailsend.PurposeVerifyEmail, " A@example.com", &userID)
	assert.True(t, r.DidClaim)
	assert.Equal(t, ledgerID, r.LedgerID)
}

func TestClaim_UnknownPurpose(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := commandsmock.NewMockLedgerRepository(ctrl)
	var buf bytes.Buffer

	claimer := commands.NewEmailSendClaimer(ledger, clock.NewMockClockAtMillis(0), slog.New(slog.NewTextHandler(&buf, nil)),
		redact.NewFingerprinter(""), newCountingRecorder())

	var r commands.ClaimResult
	assert.NotPanics(t, func() {
		r = claimer.Claim(context.Background(), emailsend.Purpose("newsletter"), "a@example.com", nil)
	})
	assert.False(t, r.DidClaim)
	assert.Equal(t, commands.ReasonClaimFailed, r.Reason)
	assert.Contains(t, buf.String(), "level=ERROR")
}

func TestComputeWindow_UsesInjectedClock(t *testing.T) {
	f := newClaimerFixture(119_999)

	w, err := f.claimer.ComputeWindow(emailsend.PurposeVerifyEmail, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(60_000), w.CooldownBucket.UnixMilli())

	f.clock.SetMillis(120_000)
	w, err = f.claimer.ComputeWindow(emailsend.PurposeVerifyEmail, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(120_000), w.CooldownBucket.UnixMilli())
}
