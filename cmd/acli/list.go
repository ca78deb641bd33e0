package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/apps"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/runner"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/tui"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog applications and discovered install scripts",
		Long: `Show the applications acli can scaffold wrappers for, followed by the
install scripts found in the scripts directory in the order acli run
would execute them.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runListAll(dir)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Scripts directory (default: nearest apps/ directory)")

	return cmd
}

func runListAll(dirFlag string) error {
	log := logging.Default()

	fmt.Println(tui.TitleStyle.Render("Applications"))
	for _, app := range apps.Catalog() {
		origin := string(app.Origin)
		if origin == "" {
			origin = "auto"
		}
		fmt.Printf("  %-10s %-5s %s\n", app.Name, origin, app.Description)
	}
	fmt.Println()

	dir, units, err := findUnits(dirFlag)
	if err != nil {
		log.Debug("script discovery failed", "error", err)
		log.Info("no install scripts found, run 'acli init' to scaffold some")
		return nil
	}
	if len(units) == 0 {
		log.Info("no install scripts found in " + dir)
		return nil
	}

	fmt.Println(tui.TitleStyle.Render("Install scripts"))
	printUnits(dir, units)

	return nil
}

// runList backs `acli run --list`. An empty directory is informational
// here, unlike a run, which treats it as an error.
func runList(dirFlag string) error {
	log := logging.Default()

	dir, units, err := findUnits(dirFlag)
	if err != nil {
		return err
	}
	if len(units) == 0 {
		log.Info("no install scripts found in " + dir)
		return nil
	}

	printUnits(dir, units)

	return nil
}

// printUnits renders discovered scripts in execution order, named by
// their identifier rather than the full filename.
func printUnits(dir string, units []runner.Unit) {
	fmt.Printf("%d install scripts in %s\n\n", len(units), dir)
	for i, unit := range units {
		desc := unit.Description
		if desc == "" {
			desc = tui.SubtitleStyle.Render("(no description)")
		}
		fmt.Printf("  %2d. %-12s %s\n", i+1, unit.Name, desc)
	}
}
