package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
)

// ErrNoUnits is returned when a run starts with an empty batch.
var ErrNoUnits = errors.New("no install scripts found")

// Options carries the orchestrator flags. They are threaded explicitly,
// never read from globals.
type Options struct {
	DryRun          bool
	Force           bool
	ContinueOnError bool
}

// ForwardedArgs returns the flags passed through verbatim to every unit.
// ContinueOnError shapes the orchestrator loop only and is never
// forwarded.
func (o Options) ForwardedArgs() []string {
	var args []string
	if o.DryRun {
		args = append(args, "--dry-run")
	}
	if o.Force {
		args = append(args, "--force")
	}
	return args
}

// Runner executes units strictly in the order given, one at a time.
type Runner struct {
	invoker  Invoker
	progress ProgressCallback
	opts     Options
}

// NewRunner creates a runner with the given invoker and options.
func NewRunner(invoker Invoker, opts Options) *Runner {
	return &Runner{invoker: invoker, progress: NoOpProgress, opts: opts}
}

// SetProgress installs a progress callback.
func (r *Runner) SetProgress(cb ProgressCallback) {
	if cb == nil {
		cb = NoOpProgress
	}
	r.progress = cb
}

// Run executes the batch and always returns a summary for whatever was
// processed, including after an early abort. In dry-run mode every unit
// is recorded as skipped without being invoked. A unit failure aborts
// the loop unless ContinueOnError is set; units after the abort point
// stay pending and are reported in Summary.Remaining.
func (r *Runner) Run(ctx context.Context, units []Unit) (*Summary, error) {
	if len(units) == 0 {
		return nil, ErrNoUnits
	}

	summary := &Summary{
		RunID:  uuid.NewString(),
		DryRun: r.opts.DryRun,
	}
	args := r.opts.ForwardedArgs()
	start := time.Now()

	r.progress(ProgressEvent{
		Stage:     StageDiscovered,
		Total:     len(units),
		Message:   fmt.Sprintf("%d install scripts", len(units)),
		Timestamp: time.Now(),
	})

	for i, unit := range units {
		r.progress(ProgressEvent{
			Stage:     StageUnit,
			Unit:      unit.Name,
			Status:    StatusRunning,
			Index:     i + 1,
			Total:     len(units),
			Timestamp: time.Now(),
		})

		if r.opts.DryRun {
			summary.Skipped++
			summary.Outcomes = append(summary.Outcomes, Outcome{Unit: unit, Status: StatusSkipped})
			r.progress(ProgressEvent{
				Stage:     StageUnit,
				Unit:      unit.Name,
				Status:    StatusSkipped,
				Index:     i + 1,
				Total:     len(units),
				Timestamp: time.Now(),
			})
			continue
		}

		unitStart := time.Now()
		err := r.invoker.Invoke(ctx, unit, args)
		duration := time.Since(unitStart)

		if err != nil {
			summary.Failed++
			summary.FailedUnits = append(summary.FailedUnits, unit.Name)
			summary.Outcomes = append(summary.Outcomes, Outcome{Unit: unit, Status: StatusFailed, Err: err, Duration: duration})
			r.progress(ProgressEvent{
				Stage:     StageUnit,
				Unit:      unit.Name,
				Status:    StatusFailed,
				Index:     i + 1,
				Total:     len(units),
				Message:   err.Error(),
				IsError:   true,
				Timestamp: time.Now(),
			})

			if !r.opts.ContinueOnError {
				summary.Aborted = true
				for _, rest := range units[i+1:] {
					summary.Remaining = append(summary.Remaining, rest.Name)
				}
				break
			}
			continue
		}

		summary.Succeeded++
		summary.Outcomes = append(summary.Outcomes, Outcome{Unit: unit, Status: StatusSucceeded, Duration: duration})
		r.progress(ProgressEvent{
			Stage:     StageUnit,
			Unit:      unit.Name,
			Status:    StatusSucceeded,
			Index:     i + 1,
			Total:     len(units),
			Timestamp: time.Now(),
		})
	}

	summary.Elapsed = time.Since(start)
	r.progress(ProgressEvent{
		Stage:     StageSummary,
		Total:     len(units),
		Timestamp: time.Now(),
	})
	return summary, nil
}

// LogProgress renders progress events as plain log lines.
func LogProgress(log *logging.Logger) ProgressCallback {
	return func(e ProgressEvent) {
		switch e.Stage {
		case StageDiscovered:
			log.Info(fmt.Sprintf("discovered %d install scripts", e.Total))
		case StageUnit:
			switch e.Status {
			case StatusRunning:
				log.Info(fmt.Sprintf("[%d/%d] running %s", e.Index, e.Total, e.Unit))
			case StatusSkipped:
				log.Info(fmt.Sprintf("[%d/%d] dry run: would run %s", e.Index, e.Total, e.Unit))
			case StatusSucceeded:
				log.Info(fmt.Sprintf("[%d/%d] %s succeeded", e.Index, e.Total, e.Unit))
			case StatusFailed:
				log.Error(fmt.Sprintf("[%d/%d] %s: %s", e.Index, e.Total, e.Unit, e.Message))
			}
		}
	}
}

// LogSummary emits the end-of-run report. It is printed after every
// run, aborted or not.
func LogSummary(log *logging.Logger, s *Summary) {
	log.Info(fmt.Sprintf("summary: %d succeeded, %d failed, %d skipped",
		s.Succeeded, s.Failed, s.Skipped), "run", s.RunID, "elapsed", s.Elapsed.Round(time.Millisecond))
	if len(s.FailedUnits) > 0 {
		log.Error("failed scripts: " + strings.Join(s.FailedUnits, ", "))
	}
	if s.Aborted {
		log.Warn("aborted after failure, not attempted: " + strings.Join(s.Remaining, ", "))
	}
	if s.DryRun {
		log.Info("dry run complete, no actual changes made")
	}
}
