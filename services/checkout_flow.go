package services

import (
	"errors"
	"sync"
)

// Phase is the checkout state of one session.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseIntentRequested  Phase = "intent_requested"
	PhaseIntentReady      Phase = "intent_ready"
	PhasePaymentSubmitted Phase = "payment_submitted"
	PhaseCompleted        Phase = "completed"
	PhaseFailed           Phase = "failed"
)

var ErrCheckoutInFlight = errors.New("a checkout request is already in progress")

// FlowTracker keeps the checkout phase of every session. Its main job
// is blocking a second intent request or payment submission while one
// is outstanding; one logical flow exists per session.
type FlowTracker struct {
	mu     sync.Mutex
	phases map[string]Phase
}

func NewFlowTracker() *FlowTracker {
	return &FlowTracker{phases: make(map[string]Phase)}
}

func (t *FlowTracker) Phase(sessionID string) Phase {
	t.mu.Lock()
	defer t.mu.Unlock()

	if p, ok := t.phases[sessionID]; ok {
		return p
	}
	return PhaseIdle
}

// Begin moves idle -> intent_requested. A flow with an outstanding
// request or an unconsumed intent cannot begin again; a failed or
// completed flow starts over.
func (t *FlowTracker) Begin(sessionID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.phase(sessionID) {
	case PhaseIntentRequested, PhaseIntentReady, PhasePaymentSubmitted:
		return ErrCheckoutInFlight
	}
	t.phases[sessionID] = PhaseIntentRequested
	return nil
}

// Ready moves intent_requested -> intent_ready once the processor has
// returned a client secret.
func (t *FlowTracker) Ready(sessionID string) {
	t.set(sessionID, PhaseIntentRequested, PhaseIntentReady)
}

// Abort returns a flow whose intent request failed to idle, so the
// customer can retry.
func (t *FlowTracker) Abort(sessionID string) {
	t.set(sessionID, PhaseIntentRequested, PhaseIdle)
}

// Submit moves intent_ready -> payment_submitted. A failed payment may
// be resubmitted against the same intent.
func (t *FlowTracker) Submit(sessionID string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.phase(sessionID) {
	case PhaseIntentReady, PhaseFailed:
		t.phases[sessionID] = PhasePaymentSubmitted
		return nil
	case PhasePaymentSubmitted:
		return ErrCheckoutInFlight
	default:
		return errors.New("no payment intent ready for this session")
	}
}

// Complete marks the flow finished. The confirmation callback may
// arrive before the client reports submission, so completion is
// accepted from intent_ready as well.
func (t *FlowTracker) Complete(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.phase(sessionID) {
	case PhaseIntentReady, PhasePaymentSubmitted, PhaseCompleted:
		t.phases[sessionID] = PhaseCompleted
	}
}

// Fail records a decline or processor error. The order stays pending;
// the customer may retry from the ready intent.
func (t *FlowTracker) Fail(sessionID string) {
	t.set(sessionID, PhasePaymentSubmitted, PhaseFailed)
}

// Reset drops the session's flow state entirely.
func (t *FlowTracker) Reset(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.phases, sessionID)
}

func (t *FlowTracker) phase(sessionID string) Phase {
	if p, ok := t.phases[sessionID]; ok {
		return p
	}
	return PhaseIdle
}

func (t *FlowTracker) set(sessionID string, from, to Phase) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase(sessionID) == from {
		t.phases[sessionID] = to
	}
}
