package mvc

import "time"

// Outcome is how a dispatch has ended.
type Outcome string

const (
	// rendered a template.
	OutcomeForward Outcome = "forward"

	// the action has written (or left empty) the response by itself.
	OutcomeWritten Outcome = "written"

	// the action is unknown, and DefaultResponse is written.
	OutcomeDefault Outcome = "default"

	// the action or rendering has failed.
	OutcomeError Outcome = "error"
)

// Observer is notified of each dispatch.
//
// For unknown actions, action is "-".
type Observer interface {
	Observe(controller string, action string, outcome Outcome, elapsed time.Duration)
}

type nopObserver struct{}

func (nopObserver) Observe(string, string, Outcome, time.Duration) {}
