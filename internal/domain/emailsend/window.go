package emailsend

import (
	"strings"
	"time"
)

// BucketLayout renders buckets the way JavaScript's Date.toISOString does,
// so keys stay stable for rows written by other services.
const BucketLayout = "2006-01-02T15:04:05.000Z"

type Window struct {
	Purpose         Purpose
	NormalizedEmail string
	Cooldown        time.Duration
	CooldownBucket  time.Time
	IdempotencyKey  string
}

func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// BucketStart floors nowMs to the start of its cooldown window.
// Both operands are non-negative in practice; a negative nowMs still floors
// toward minus infinity so boundaries stay aligned.
func BucketStart(nowMs, cooldownMs int64) int64 {
	q := nowMs / cooldownMs
	if nowMs%cooldownMs != 0 && nowMs < 0 {
		q--
	}
	return q * cooldownMs
}

func FormatBucket(bucket time.Time) string {
	return bucket.UTC().Format(BucketLayout)
}

func IdempotencyKey(purpose Purpose, normalizedEmail string, bucket time.Time) string {
	return purpose.String() + ":" + normalizedEmail + ":" + FormatBucket(bucket)
}

// ComputeWindow is pure: identical inputs always produce the identical key,
// which is what makes the ledger insert race meaningful.
func ComputeWindow(purpose Purpose, recipientEmail string, now time.Time) (Window, error) {
	cooldown, err := purpose.Cooldown()
	if err != nil {
		return Window{}, err
	}

	normalized := NormalizeEmail(recipientEmail)
	bucketMs := BucketStart(now.UnixMilli(), cooldown.Milliseconds())
	bucket := time.UnixMilli(bucketMs).UTC()

	return Window{
		Purpose:         purpose,
		NormalizedEmail: normalized,
		Cooldown:        cooldown,
		CooldownBucket:  bucket,
		IdempotencyKey:  IdempotencyKey(purpose, normalized, bucket),
	}, nil
}

// MustComputeWindow is for callers that validated the purpose upstream.
func MustComputeWindow(purpose Purpose, recipientEmail string, now time.Time) Window {
	w, err := ComputeWindow(purpose, recipientEmail, now)
	if err != nil {
		panic("emailsend: " + err.Error() + ": " + purpose.String())
	}
	return w
}

// Next returns the window that starts when this one ends.
func (w Window) Next() Window {
	bucket := w.CooldownBucket.Add(w.Cooldown)
	return Window{
		Purpose:         w.Purpose,
		NormalizedEmail: w.NormalizedEmail,
		Cooldown:        w.Cooldown,
		CooldownBucket:  bucket,
		IdempotencyKey:  IdempotencyKey(w.Purpose, w.NormalizedEmail, bucket),
	}
}

func (w Window) EndsAt() time.Time {
	return w.CooldownBucket.Add(w.Cooldown)
}
