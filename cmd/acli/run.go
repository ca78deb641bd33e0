package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/globalconfig"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/progressui"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/project"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/runner"
)

// newRunCmd creates the run command
func newRunCmd() *cobra.Command {
	var opts runner.Options
	var listOnly bool
	var dir string
	var progressView bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every install script in order",
		Long: `Discover the *-install scripts in the scripts directory and run them
one at a time in filename order.

Scripts receive --dry-run and --force verbatim. A failing script aborts
the rest of the batch unless --continue is set.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if listOnly {
				return runList(dir)
			}
			return runRun(opts, dir, progressView)
		},
	}

	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Log what would run without executing anything")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Forward --force so scripts reinstall even when current")
	cmd.Flags().BoolVarP(&opts.ContinueOnError, "continue", "c", false, "Keep going after a script fails")
	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List the scripts without running them")
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Scripts directory (default: nearest apps/ directory)")
	cmd.Flags().BoolVar(&progressView, "progress", false, "Render an interactive progress view")

	return cmd
}

// findUnits locates the scripts directory and discovers its install
// scripts. The --dir flag wins over the remembered config directory.
func findUnits(dirFlag string) (string, []runner.Unit, error) {
	cfg, err := globalconfig.Load()
	if err != nil {
		return "", nil, err
	}

	dir, err := project.FindScriptsDir(dirFlag, cfg.ScriptsDir)
	if err != nil {
		return "", nil, err
	}

	units, err := runner.NewDirDiscoverer(dir).Discover()
	if err != nil {
		return "", nil, err
	}

	return dir, units, nil
}

func runRun(opts runner.Options, dirFlag string, progressView bool) error {
	log := logging.Default()

	dir, units, err := findUnits(dirFlag)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		return fmt.Errorf("no install scripts found in %s", dir)
	}

	r := runner.NewRunner(runner.ExecInvoker{}, opts)

	var summary *runner.Summary
	if progressView && isInteractive() {
		summary, err = progressui.Run(r, units)
		if err != nil {
			return err
		}
		if summary == nil {
			return fmt.Errorf("run cancelled")
		}
	} else {
		r.SetProgress(runner.LogProgress(log))
		summary, err = r.Run(context.Background(), units)
		if err != nil {
			return err
		}
	}

	runner.LogSummary(log, summary)

	if summary.OverallFailure() {
		return fmt.Errorf("%d of %d scripts failed", summary.Failed, len(units))
	}

	return nil
}
