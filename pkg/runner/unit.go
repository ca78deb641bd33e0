// Package runner discovers per-application install scripts and executes
// them in deterministic order, one at a time.
package runner

import "time"

// Unit is one discoverable install script, treated as an opaque
// executable. Units are enumerated once per run and immutable thereafter.
type Unit struct {
	Name        string // identifier, the filename with -install stripped
	Script      string // path to the executable
	DisplayName string // from the script header, defaults to Name
	Description string // from the script header, may be empty
}

// UnitStatus tracks a unit through the execution loop.
type UnitStatus int

const (
	// StatusPending means the unit has not been reached yet.
	StatusPending UnitStatus = iota
	// StatusRunning means the unit is executing.
	StatusRunning
	// StatusSucceeded means the unit exited zero.
	StatusSucceeded
	// StatusFailed means the unit exited non-zero.
	StatusFailed
	// StatusSkipped means a dry run recorded the unit without invoking it.
	StatusSkipped
)

// String returns the string representation of the status.
func (s UnitStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Outcome is the per-unit record of one run.
type Outcome struct {
	Unit     Unit
	Status   UnitStatus
	Err      error
	Duration time.Duration
}

// Summary aggregates the outcomes of one orchestrator run. Every
// discovered unit is accounted for exactly once, either in the processed
// counts or in Remaining after an early abort.
type Summary struct {
	RunID       string
	DryRun      bool
	Succeeded   int
	Failed      int
	Skipped     int
	FailedUnits []string
	Aborted     bool     // a failure stopped the loop early
	Remaining   []string // units left pending after an early abort
	Outcomes    []Outcome
	Elapsed     time.Duration
}

// OverallFailure reports whether the run should terminate the process
// with a non-zero status. Dry runs never fail.
func (s *Summary) OverallFailure() bool {
	if s.DryRun {
		return false
	}
	return s.Failed > 0
}
