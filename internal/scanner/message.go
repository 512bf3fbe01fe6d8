// Package scanner runs the two-stage email extraction pipeline: keyword
// classification, structured extraction with a deterministic fallback, vendor
// resolution, and the subscription upsert.
package scanner

import (
	"context"
	"strings"
	"time"
)

// Message is one inbound email, already reduced to plain text by the source
// (or by StripHTML when only HTML was available).
type Message struct {
	ID      string
	Subject string
	Sender  string
	Date    time.Time
	Snippet string
	Body    string
}

// SenderDomain returns the domain part of the sender address, lowercased.
func (m *Message) SenderDomain() string {
	addr := m.Sender
	if start := strings.LastIndex(addr, "<"); start >= 0 {
		addr = strings.TrimSuffix(addr[start+1:], ">")
	}
	if at := strings.LastIndex(addr, "@"); at >= 0 {
		return strings.ToLower(strings.TrimSpace(addr[at+1:]))
	}
	return ""
}

// MessageSource yields a bounded, ordered batch of the most recent messages.
// The Gmail adapter implements this; SliceSource serves tests and offline
// scans.
type MessageSource interface {
	ListRecent(ctx context.Context, n int) ([]Message, error)
}

// SliceSource is a MessageSource over an in-memory slice.
type SliceSource []Message

func (s SliceSource) ListRecent(_ context.Context, n int) ([]Message, error) {
	if n <= 0 || n > len(s) {
		n = len(s)
	}
	out := make([]Message, n)
	copy(out, s[:n])
	return out, nil
}
