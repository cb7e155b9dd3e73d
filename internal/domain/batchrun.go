package domain

import "time"

// BatchRun is the persisted summary of one batch invocation. Only the
// aggregate numbers are recorded; individual states are recomputable
// because the engine is deterministic.
type BatchRun struct {
	ID         string
	Plan       string
	Scenarios  int
	Successes  int
	SuccessPct int
	CreatedAt  time.Time
}
