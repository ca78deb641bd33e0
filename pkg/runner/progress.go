package runner

import "time"

// Stage represents where the orchestrator is in a batch run.
type Stage string

const (
	// StageDiscovered fires once after discovery with the batch size.
	StageDiscovered Stage = "discovered"
	// StageUnit fires on every unit state change.
	StageUnit Stage = "unit"
	// StageSummary fires once after the loop ends.
	StageSummary Stage = "summary"
)

// ProgressEvent represents a batch progress update.
type ProgressEvent struct {
	Stage     Stage
	Unit      string     // unit name, set for StageUnit events
	Status    UnitStatus // unit state, set for StageUnit events
	Message   string
	Index     int // 1-based position of the unit in the batch
	Total     int
	IsError   bool
	Timestamp time.Time
}

// ProgressCallback is called with progress updates during a run.
type ProgressCallback func(ProgressEvent)

// NoOpProgress is a progress callback that does nothing.
func NoOpProgress(_ ProgressEvent) {}

// ProgressTracker collects progress events for later review.
type ProgressTracker struct {
	events []ProgressEvent
}

// NewProgressTracker creates a new progress tracker.
func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{
		events: make([]ProgressEvent, 0),
	}
}

// Callback returns a callback that records events to this tracker.
func (t *ProgressTracker) Callback() ProgressCallback {
	return func(event ProgressEvent) {
		t.events = append(t.events, event)
	}
}

// Events returns all recorded events.
func (t *ProgressTracker) Events() []ProgressEvent {
	return t.events
}

// HasErrors returns true if any error events were recorded.
func (t *ProgressTracker) HasErrors() bool {
	for _, event := range t.events {
		if event.IsError {
			return true
		}
	}
	return false
}
