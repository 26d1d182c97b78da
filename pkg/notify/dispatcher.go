package notify

import (
	"context"

	"go-marketing-backend/pkg/logger"
)

// Mode selects which transports are eligible and in what order.
type Mode string

const (
	// ModeAuto attempts the relay transport first and falls back to SMTP.
	ModeAuto Mode = "auto"
	// ModeRelay attempts only the relay transport, no fallback.
	ModeRelay Mode = "relay"
	// ModeSMTP attempts only the SMTP transport, no fallback.
	ModeSMTP Mode = "smtp"
	// ModeDisabled fails every dispatch without attempting any transport.
	ModeDisabled Mode = "disabled"
)

// ParseMode maps a configuration string to a Mode, defaulting to auto.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeRelay, ModeSMTP, ModeDisabled:
		return Mode(s)
	default:
		return ModeAuto
	}
}

// Status is the tri-state outcome of a single transport attempt.
type Status string

const (
	StatusSent    Status = "sent"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped" // transport not configured, not an error
)

// Attempt records the outcome of one transport attempt.
type Attempt struct {
	Transport string
	Status    Status
	Detail    string
}

// Result is the overall outcome of dispatching one message: the first
// successful transport in priority order wins.
type Result struct {
	Delivered bool
	Attempts  []Attempt
}

// Dispatcher attempts delivery through a prioritized chain of transports
// according to the configured mode.
type Dispatcher struct {
	relay Transport
	smtp  Transport
	mode  Mode
}

func NewDispatcher(mode Mode, relay, smtp Transport) *Dispatcher {
	return &Dispatcher{relay: relay, smtp: smtp, mode: mode}
}

// Available reports whether at least one transport is configured for the
// active mode. Submissions are rejected up front when it returns false so
// messages are never silently swallowed.
func (d *Dispatcher) Available() bool {
	switch d.mode {
	case ModeDisabled:
		return false
	case ModeRelay:
		return d.relay.Configured()
	case ModeSMTP:
		return d.smtp.Configured()
	default:
		return d.relay.Configured() || d.smtp.Configured()
	}
}

// Dispatch runs the transport chain for one message. In automatic mode the
// first success short-circuits the chain; a failed or skipped transport
// falls through to the next one.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) Result {
	var res Result

	if d.mode == ModeDisabled {
		logger.Log.Warn("Dispatch disabled by configuration, message dropped")
		return res
	}

	for _, t := range d.chain() {
		attempt := d.attempt(ctx, t, msg)
		res.Attempts = append(res.Attempts, attempt)
		if attempt.Status == StatusSent {
			res.Delivered = true
			return res
		}
	}

	logger.Log.Error("All transports exhausted, message not delivered",
		"mode", string(d.mode), "attempts", len(res.Attempts))
	return res
}

// chain returns the transports eligible for the active mode, in priority
// order. Automatic mode keeps the relay-first order.
func (d *Dispatcher) chain() []Transport {
	switch d.mode {
	case ModeRelay:
		return []Transport{d.relay}
	case ModeSMTP:
		return []Transport{d.smtp}
	default:
		return []Transport{d.relay, d.smtp}
	}
}

func (d *Dispatcher) attempt(ctx context.Context, t Transport, msg Message) Attempt {
	if !t.Configured() {
		logger.Log.Info("Transport skipped, not configured", "transport", t.Name())
		return Attempt{Transport: t.Name(), Status: StatusSkipped, Detail: "not configured"}
	}

	if err := t.Send(ctx, msg); err != nil {
		logger.Log.Error("Transport send failed", "transport", t.Name(), "error", err)
		return Attempt{Transport: t.Name(), Status: StatusFailed, Detail: err.Error()}
	}

	logger.Log.Info("Notification sent", "transport", t.Name())
	return Attempt{Transport: t.Name(), Status: StatusSent}
}
