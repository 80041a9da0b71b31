// Package backoff implements the retry policy used by the card provider
// adapter's outbound calls (C4): exponential backoff with jitter, a
// server-supplied Retry-After override, and a hard attempt cap.
package backoff

import (
	"context"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

const (
	// MaxAttempts bounds how many times an adapter call is retried,
	// including the first attempt.
	MaxAttempts = 3

	baseDelay = 250 * time.Millisecond
	factor    = 2
	capDelay  = 8 * time.Second
	jitterPct = 0.25
)

// Delay returns the backoff delay before retry attempt n (1-indexed:
// n=1 is the delay before the second overall attempt), with ±25%
// jitter applied around the exponential curve and capped at 8s.
func Delay(n int) time.Duration {
	d := baseDelay
	for i := 1; i < n; i++ {
		d *= factor
		if d > capDelay {
			d = capDelay
			break
		}
	}
	if d > capDelay {
		d = capDelay
	}

	jitter := time.Duration(float64(d) * jitterPct * (2*rand.Float64() - 1))
	d += jitter
	if d < 0 {
		d = 0
	}
	return d
}

// RetryAfter parses a Retry-After response header (seconds or HTTP
// date form) and returns the delay it specifies. ok is false if the
// header is absent or unparseable, in which case the caller should
// fall back to Delay.
func RetryAfter(h http.Header) (time.Duration, bool) {
	v := h.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if when, err := http.ParseTime(v); err == nil {
		d := time.Until(when)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}

// Sleep blocks for d or until ctx is done, whichever comes first. It
// returns ctx.Err() if the context was cancelled before d elapsed.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
