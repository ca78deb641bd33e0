package runner

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
)

type fakeInvoker struct {
	invoked  []string
	argsSeen [][]string
	failOn   map[string]bool
}

func (f *fakeInvoker) Invoke(_ context.Context, unit Unit, args []string) error {
	f.invoked = append(f.invoked, unit.Name)
	f.argsSeen = append(f.argsSeen, args)
	if f.failOn[unit.Name] {
		return fmt.Errorf("%s failed: exit status 1", unit.Name)
	}
	return nil
}

func testUnits(names ...string) []Unit {
	units := make([]Unit, 0, len(names))
	for _, name := range names {
		units = append(units, Unit{Name: name, Script: "/apps/" + name + UnitSuffix})
	}
	return units
}

func TestRunAllSucceed(t *testing.T) {
	invoker := &fakeInvoker{}
	summary, err := NewRunner(invoker, Options{}).Run(context.Background(), testUnits("a", "b", "c"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, invoker.invoked)
	assert.Equal(t, 3, summary.Succeeded)
	assert.Zero(t, summary.Failed)
	assert.False(t, summary.Aborted)
	assert.False(t, summary.OverallFailure())
	assert.NotEmpty(t, summary.RunID)
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	invoker := &fakeInvoker{failOn: map[string]bool{"b": true}}
	summary, err := NewRunner(invoker, Options{}).Run(context.Background(), testUnits("a", "b", "c"))
	require.NoError(t, err)

	// c is never reached and stays out of the processed counts
	assert.Equal(t, []string{"a", "b"}, invoker.invoked)
	assert.Equal(t, 1, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, []string{"b"}, summary.FailedUnits)
	assert.True(t, summary.Aborted)
	assert.Equal(t, []string{"c"}, summary.Remaining)
	assert.Len(t, summary.Outcomes, 2)
	assert.True(t, summary.OverallFailure())
}

func TestRunContinueOnErrorAttemptsAll(t *testing.T) {
	invoker := &fakeInvoker{failOn: map[string]bool{"b": true}}
	opts := Options{ContinueOnError: true}
	summary, err := NewRunner(invoker, opts).Run(context.Background(), testUnits("a", "b", "c"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, invoker.invoked)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.False(t, summary.Aborted)
	assert.Empty(t, summary.Remaining)
	assert.True(t, summary.OverallFailure())
}

func TestRunDryRunNeverInvokes(t *testing.T) {
	invoker := &fakeInvoker{failOn: map[string]bool{"a": true}}
	summary, err := NewRunner(invoker, Options{DryRun: true}).Run(context.Background(), testUnits("a", "b"))
	require.NoError(t, err)

	assert.Empty(t, invoker.invoked)
	assert.Equal(t, 2, summary.Skipped)
	assert.Zero(t, summary.Failed)
	for _, outcome := range summary.Outcomes {
		assert.Equal(t, StatusSkipped, outcome.Status)
	}
	assert.False(t, summary.OverallFailure())
}

func TestRunEmptyBatch(t *testing.T) {
	_, err := NewRunner(&fakeInvoker{}, Options{}).Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoUnits)
}

func TestRunForwardsFlags(t *testing.T) {
	invoker := &fakeInvoker{}
	opts := Options{Force: true, ContinueOnError: true}
	_, err := NewRunner(invoker, opts).Run(context.Background(), testUnits("a", "b"))
	require.NoError(t, err)

	for _, args := range invoker.argsSeen {
		assert.Equal(t, []string{"--force"}, args)
	}
}

func TestForwardedArgs(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{"none", Options{}, nil},
		{"dry run", Options{DryRun: true}, []string{"--dry-run"}},
		{"force", Options{Force: true}, []string{"--force"}},
		{"continue is not forwarded", Options{DryRun: true, Force: true, ContinueOnError: true}, []string{"--dry-run", "--force"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.opts.ForwardedArgs())
		})
	}
}

func TestRunEmitsProgress(t *testing.T) {
	tracker := NewProgressTracker()
	r := NewRunner(&fakeInvoker{failOn: map[string]bool{"b": true}}, Options{ContinueOnError: true})
	r.SetProgress(tracker.Callback())

	_, err := r.Run(context.Background(), testUnits("a", "b"))
	require.NoError(t, err)

	events := tracker.Events()
	require.NotEmpty(t, events)
	assert.Equal(t, StageDiscovered, events[0].Stage)
	assert.Equal(t, StageSummary, events[len(events)-1].Stage)
	assert.True(t, tracker.HasErrors())
}

func TestRunAccountsForEveryUnit(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"abort mode", Options{}},
		{"continue mode", Options{ContinueOnError: true}},
		{"dry run", Options{DryRun: true}},
	}

	units := testUnits("a", "b", "c", "d")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			invoker := &fakeInvoker{failOn: map[string]bool{"b": true}}
			summary, err := NewRunner(invoker, tt.opts).Run(context.Background(), units)
			require.NoError(t, err)
			assert.Len(t, units, len(summary.Outcomes)+len(summary.Remaining))
		})
	}
}

func TestLogSummary(t *testing.T) {
	var stdout, stderr bytes.Buffer
	log := logging.New(&stdout, &stderr)

	LogSummary(log, &Summary{
		RunID:       "run-1",
		Succeeded:   1,
		Failed:      1,
		FailedUnits: []string{"b"},
		Aborted:     true,
		Remaining:   []string{"c"},
	})

	assert.Contains(t, stdout.String(), "1 succeeded, 1 failed, 0 skipped")
	assert.Contains(t, stderr.String(), "[ERROR]")
	assert.Contains(t, stderr.String(), "failed scripts: b")
	assert.Contains(t, stderr.String(), "not attempted: c")
}

func TestLogSummaryDryRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	log := logging.New(&stdout, &stderr)

	LogSummary(log, &Summary{RunID: "run-2", Skipped: 2, DryRun: true})

	assert.Contains(t, stdout.String(), "no actual changes made")
	assert.Empty(t, stderr.String())
}

func TestUnitStatusString(t *testing.T) {
	assert.Equal(t, "pending", StatusPending.String())
	assert.Equal(t, "running", StatusRunning.String())
	assert.Equal(t, "succeeded", StatusSucceeded.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "skipped", StatusSkipped.String())
	assert.Equal(t, "unknown", UnitStatus(42).String())
}
