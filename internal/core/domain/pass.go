package domain

import "go.trai.ch/zerr"

// PassState is the lifecycle state of one generation pass.
type PassState uint8

const (
	// PassStart is the state before the manifest has been resolved.
	PassStart PassState = iota
	// PassResolved means the manifest resolved into metadata.
	PassResolved
	// PassArrayEmitted means the array form has been rendered.
	PassArrayEmitted
	// PassMapEmitted means the map form has been rendered.
	PassMapEmitted
	// PassVerified means both forms decode to identical content.
	PassVerified
	// PassPublished means both artifacts were written.
	PassPublished
	// PassFailed means the pass aborted. Nothing was published.
	PassFailed
)

var passStateNames = [...]string{
	PassStart:        "start",
	PassResolved:     "resolved",
	PassArrayEmitted: "array-emitted",
	PassMapEmitted:   "map-emitted",
	PassVerified:     "verified",
	PassPublished:    "published",
	PassFailed:       "failed",
}

// String returns the lowercase name of the state.
func (s PassState) String() string {
	if int(s) < len(passStateNames) {
		return passStateNames[s]
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s PassState) IsTerminal() bool {
	return s == PassPublished || s == PassFailed
}

// Pass tracks the state of one generation pass.
// The zero value is a pass in PassStart.
type Pass struct {
	state  PassState
	reason error
}

// State returns the current state.
func (p *Pass) State() PassState {
	return p.state
}

// Reason returns the error that failed the pass, or nil.
func (p *Pass) Reason() error {
	return p.reason
}

// Advance moves the pass to the next state.
// States must be entered in order and exactly once.
func (p *Pass) Advance(next PassState) error {
	if p.state.IsTerminal() || next == PassFailed || next != p.state+1 {
		return zerr.With(
			zerr.With(zerr.Wrap(ErrInvalidPassTransition, "pass state out of order"), "from", p.state.String()),
			"to", next.String(),
		)
	}
	p.state = next
	return nil
}

// Fail moves the pass to PassFailed and records the reason.
// A pass that already reached a terminal state keeps it.
func (p *Pass) Fail(reason error) {
	if p.state.IsTerminal() {
		return
	}
	p.state = PassFailed
	p.reason = reason
}
