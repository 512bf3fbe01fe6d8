// Package retry implements bounded exponential backoff with jitter for calls
// to external providers. Only boundary code uses it; core pipeline logic never
// retries.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"time"
)

// Policy bounds the backoff schedule.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultPolicy matches the RETRY_* config defaults.
var DefaultPolicy = Policy{
	MaxAttempts: 4,
	BaseDelay:   500 * time.Millisecond,
	MaxDelay:    15 * time.Second,
}

// statusError carries an HTTP status for retryability classification.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string { return e.err.Error() }
func (e *statusError) Unwrap() error { return e.err }

// WithStatus tags err with the HTTP status that produced it.
func WithStatus(err error, status int) error {
	if err == nil {
		return nil
	}
	return &statusError{status: status, err: err}
}

// IsRetryable classifies an error as transient. Network errors, 429 and 5xx
// are transient; 401/403 and other 4xx are fatal (invalid request or auth,
// retrying cannot help). Context errors are fatal and must be checked before
// the net.Error probe: context.DeadlineExceeded satisfies net.Error too.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.status == 429 || se.status >= 500
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	return false
}

// Do runs fn with the policy's backoff schedule, stopping early on fatal
// errors or context cancellation. The returned error is the last attempt's.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	if p.MaxAttempts <= 0 {
		p = DefaultPolicy
	}
	var lastErr error
	delay := p.BaseDelay
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) || attempt == p.MaxAttempts {
			return lastErr
		}

		// full jitter on the capped exponential delay
		sleep := time.Duration(rand.Int63n(int64(delay) + 1))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
		delay *= 2
		if delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}
	return lastErr
}
