package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestIsRetryable(t *testing.T) {
	base := errors.New("boom")
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"untagged", base, false},
		{"429", WithStatus(base, 429), true},
		{"500", WithStatus(base, 500), true},
		{"503", WithStatus(base, 503), true},
		{"401", WithStatus(base, 401), false},
		{"403", WithStatus(base, 403), false},
		{"400", WithStatus(base, 400), false},
		{"deadline", context.DeadlineExceeded, false},
		{"canceled", context.Canceled, false},
		{"wrapped deadline", fmt.Errorf("call provider: %w", context.DeadlineExceeded), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestWithStatusPreservesCause(t *testing.T) {
	base := errors.New("boom")
	tagged := WithStatus(base, 500)
	if !errors.Is(tagged, base) {
		t.Error("WithStatus must wrap the cause")
	}
	if WithStatus(nil, 500) != nil {
		t.Error("WithStatus(nil) must stay nil")
	}
}

func TestDoRetriesTransientErrors(t *testing.T) {
	p := Policy{MaxAttempts: 4, BaseDelay: time.Microsecond, MaxDelay: time.Millisecond}
	attempts := 0
	err := Do(context.Background(), p, func(context.Context) error {
		attempts++
		if attempts < 3 {
			return WithStatus(errors.New("rate limited"), 429)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoStopsOnFatalError(t *testing.T) {
	p := Policy{MaxAttempts: 4, BaseDelay: time.Microsecond, MaxDelay: time.Millisecond}
	attempts := 0
	err := Do(context.Background(), p, func(context.Context) error {
		attempts++
		return WithStatus(errors.New("bad key"), 401)
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (auth errors are fatal)", attempts)
	}
}

func TestDoExhaustsAttempts(t *testing.T) {
	p := Policy{MaxAttempts: 3, BaseDelay: time.Microsecond, MaxDelay: time.Millisecond}
	attempts := 0
	base := errors.New("still down")
	err := Do(context.Background(), p, func(context.Context) error {
		attempts++
		return WithStatus(base, 503)
	})
	if !errors.Is(err, base) {
		t.Errorf("err = %v, want last attempt's error", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestDoHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := Policy{MaxAttempts: 5, BaseDelay: time.Hour, MaxDelay: time.Hour}
	err := Do(ctx, p, func(context.Context) error {
		return WithStatus(errors.New("down"), 500)
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
