package types

import "time"

// OutcomeStatus is the final state of one operation within a run.
type OutcomeStatus string

const (
	// StatusCompleted means the operation body reached its end, regardless
	// of how many ancillary sub-steps no-opped along the way
	StatusCompleted OutcomeStatus = "completed"

	// StatusSkipped means the operation never ran (declined, policy deny)
	StatusSkipped OutcomeStatus = "skipped"

	// StatusFailed means a required step signalled a hard failure
	StatusFailed OutcomeStatus = "failed"
)

// OperationOutcome records what one operation did. It is created when the
// operation begins, recorded exactly once, and never mutated afterwards.
type OperationOutcome struct {
	OperationID string
	Status      OutcomeStatus

	// Description, Risk, and Category are copied from the descriptor at
	// recording time so the report renderers are pure functions of the
	// report alone
	Description string
	Risk        RiskLevel
	Category    string

	SpaceFreedKB int64
	Warnings     []string
	Errors       []string
	StartedAt    time.Time
	FinishedAt   time.Time
}

// Duration is the wall time the operation took.
func (o OperationOutcome) Duration() time.Duration {
	return o.FinishedAt.Sub(o.StartedAt)
}

// SkippedOutcome builds the outcome for an operation that never ran.
// Skipped outcomes carry the reason as a warning and never carry errors.
func SkippedOutcome(desc OperationDescriptor, reason string, at time.Time) OperationOutcome {
	return OperationOutcome{
		OperationID: desc.ID,
		Status:      StatusSkipped,
		Description: desc.Description,
		Risk:        desc.Risk,
		Category:    desc.Category,
		Warnings:    []string{reason},
		StartedAt:   at,
		FinishedAt:  at,
	}
}
