package runner

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Invoker runs one unit to completion. The blocking call hides behind an
// interface so runner tests use fakes instead of spawning processes.
type Invoker interface {
	Invoke(ctx context.Context, unit Unit, args []string) error
}

// ExecInvoker invokes units as child processes with the caller's stdio.
// It blocks until the child exits. No timeout is applied, a unit runs
// until it finishes on its own.
type ExecInvoker struct{}

// Invoke runs the unit's script with the forwarded flags.
func (ExecInvoker) Invoke(ctx context.Context, unit Unit, args []string) error {
	cmd := exec.CommandContext(ctx, unit.Script, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", unit.Name, err)
	}
	return nil
}
