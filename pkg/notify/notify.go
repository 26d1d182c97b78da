// Package notify implements the outbound notification dispatch path: a set
// of pluggable transports for delivering contact form messages, and a
// dispatcher that attempts them in priority order with independent fallback.
package notify

import (
	"context"
	"time"
)

// outboundTimeout bounds every outbound call to an external service.
const outboundTimeout = 20 * time.Second

// Message is a transport-agnostic projection of a contact submission.
// Constructed fresh per dispatch attempt, never shared or mutated.
type Message struct {
	Name    string // "First Last"
	Company string
	Service string
	Email   string
	Phone   string
	Time    string // local-time string for display in the notification
	Body    string
}

// Transport is a single notification channel. A transport with incomplete
// configuration reports Configured() == false and is skipped, which is
// distinct from a send failure.
type Transport interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, msg Message) error
}

// Timestamp returns a display time string in the given location, falling
// back to UTC when loc is nil.
func Timestamp(loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Now().UTC().In(loc).Format("2006-01-02 15:04:05 MST")
}
