package domain

// State of one action instance. A finished run returns the instance to Idle;
// how it finished is kept as the last Outcome.
type State string

const (
	StateIdle State = "idle"
	StateBusy State = "busy"
)

// Outcome reports what a single submission did.
type Outcome string

const (
	// OutcomeRejected: precondition failed, no work started.
	OutcomeRejected Outcome = "rejected"
	// OutcomeSkipped: the instance was busy, nothing happened.
	OutcomeSkipped   Outcome = "skipped"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// Result of a submission. NotificationID is empty only for OutcomeSkipped.
type Result struct {
	Outcome        Outcome `json:"outcome"`
	NotificationID string  `json:"notification_id,omitempty"`
	Err            error   `json:"-"`
}
