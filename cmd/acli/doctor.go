package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/doctor"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/globalconfig"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/project"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/tui"
)

// newDoctorCmd creates the doctor command
func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment for the tools installs depend on",
		Long: `Verify that pacman, sudo, git, makepkg and an AUR helper are
installed and that install scripts are discoverable. Failing checks
print the command that would fix them; --fix runs those commands
directly.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runDoctor(fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Run the suggested fix commands")

	return cmd
}

func runDoctor(fix bool) error {
	log := logging.Default()

	checker := doctor.NewChecker()
	if dir := locateScriptsDir(); dir != "" {
		checker.SetScriptsDir(dir)
	}

	groups := checker.CheckAllAsync()
	printGroups(groups)

	summary := checker.GetSummary(groups)
	log.Info(fmt.Sprintf("%d checks: %d ok, %d missing, %d warnings",
		summary.Total, summary.OK, summary.Missing, summary.Warnings))

	if !checker.HasIssues(groups) {
		return nil
	}

	if !fix {
		printFixHints(groups)
		return fmt.Errorf("environment is missing required tools")
	}

	if err := runFixes(groups); err != nil {
		return err
	}

	// Re-check so the exit status reflects the state after fixing.
	groups = checker.CheckAll()
	if checker.HasIssues(groups) {
		return fmt.Errorf("issues remain after fixing, re-run acli doctor")
	}

	log.Info("all issues fixed")
	return nil
}

// locateScriptsDir finds the scripts directory without failing; doctor
// reports a missing directory as a check result instead.
func locateScriptsDir() string {
	cfg, err := globalconfig.Load()
	if err != nil {
		return ""
	}

	dir, err := project.FindScriptsDir("", cfg.ScriptsDir)
	if err != nil {
		return ""
	}

	return dir
}

func printGroups(groups []doctor.CheckGroup) {
	for _, group := range groups {
		fmt.Println(tui.TitleStyle.Render(group.Name))
		for _, check := range group.Checks {
			fmt.Printf("  %s %-14s %s\n", statusIcon(check.Status), check.Name, check.Message)
		}
		fmt.Println()
	}
}

// statusIcon maps a check status to a colored marker.
func statusIcon(status doctor.CheckStatus) string {
	switch status {
	case doctor.StatusOK:
		return tui.SuccessStyle.Render("✓")
	case doctor.StatusWarning:
		return tui.WarningStyle.Render("!")
	default:
		return tui.ErrorStyle.Render("✗")
	}
}

// printFixHints lists the fix command for every check that did not pass.
func printFixHints(groups []doctor.CheckGroup) {
	fmt.Println(tui.TitleStyle.Render("Suggested fixes"))
	for _, group := range groups {
		for _, check := range group.Checks {
			if check.Status == doctor.StatusOK || check.FixCommand == nil {
				continue
			}
			fmt.Printf("  %s: %s\n", check.Name, check.FixCommand.Description)
			fmt.Printf("    %s\n", tui.SubtitleStyle.Render(check.FixCommand.Command))
		}
	}
	fmt.Println()
}

// runFixes applies the fix command for every missing check that has one.
func runFixes(groups []doctor.CheckGroup) error {
	log := logging.Default()
	fixer := doctor.NewFixer()

	for _, group := range groups {
		for _, check := range group.Checks {
			if check.Status != doctor.StatusMissing || check.FixCommand == nil {
				continue
			}
			log.Info("fixing " + check.Name + ": " + check.FixCommand.Description)
			if err := fixer.RunFix(check.FixCommand); err != nil {
				return fmt.Errorf("could not fix %s: %w", check.Name, err)
			}
		}
	}

	return nil
}
