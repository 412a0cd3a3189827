package entities

import "time"

// RunStatus represents the lifecycle of a silver job run.
type RunStatus string

const (
	RunStatusRunning   RunStatus = "running"
	RunStatusSucceeded RunStatus = "succeeded"
	RunStatusFailed    RunStatus = "failed"
)

// TableResult records the outcome of cleansing one table: how many rows
// were written and where the staged collection lives.
type TableResult struct {
	Table    string
	Rows     int
	Location string
}

// RunRecord is the audit record persisted for each silver job run.
//
// The run is idempotent at the table level (full replace per table) but
// not atomic across tables: a failed run may leave some tables updated
// and others missing. The record keeps which tables made it.
type RunRecord struct {
	ID         string
	Status     RunStatus
	StartedAt  time.Time
	FinishedAt *time.Time
	Tables     []TableResult
	Error      string
}
