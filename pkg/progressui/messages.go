// Package progressui provides the Bubble Tea view for batch runs.
package progressui

import "github.com/jaspreet-dot-casa/arch-apps/pkg/runner"

// runProgressMsg wraps a runner.ProgressEvent for Bubble Tea.
type runProgressMsg runner.ProgressEvent

// runCompleteMsg is sent when the batch finishes.
type runCompleteMsg struct {
	summary *runner.Summary
	err     error
}
