package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/apps"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/globalconfig"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/scaffold"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/tui"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var all, force bool

	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold install scripts for catalog applications",
		Long: `Create a scripts directory containing install-all plus one wrapper
script per selected application. The directory defaults to apps/ under
the current directory and is remembered for later runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := "apps"
			if len(args) == 1 {
				dir = args[0]
			}
			return runInit(dir, all, force)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Scaffold every catalog application without prompting")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite scripts that already exist")

	return cmd
}

func runInit(dir string, all, force bool) error {
	log := logging.Default()

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	selection := apps.Catalog()
	if !all && isInteractive() {
		selection, err = selectApps(selection)
		if err != nil {
			return err
		}
	}
	if len(selection) == 0 {
		return fmt.Errorf("no applications selected")
	}

	result, err := scaffold.Init(absDir, selection, scaffold.Options{Force: force})
	if err != nil {
		return err
	}

	for _, name := range result.Created {
		fmt.Printf("  %s %s\n", tui.SuccessStyle.Render("created"), name)
	}
	for _, name := range result.Skipped {
		fmt.Printf("  %s %s\n", tui.SubtitleStyle.Render("skipped"), name)
	}

	log.Info(fmt.Sprintf("%d scripts in %s", len(result.Created)+len(result.Skipped), absDir))
	if len(result.Skipped) > 0 {
		log.Warn("existing scripts were left alone, use --force to overwrite")
	}

	// Remember the directory so run and doctor find it from anywhere.
	if err := globalconfig.Update(func(cfg *globalconfig.Config) error {
		cfg.ScriptsDir = absDir
		return nil
	}); err != nil {
		log.Warn("could not remember the scripts directory: " + err.Error())
	}

	return nil
}

// selectApps asks which catalog applications to scaffold. Everything
// starts selected; the prompt exists for pruning.
func selectApps(catalog []apps.App) ([]apps.App, error) {
	options := make([]huh.Option[string], 0, len(catalog))
	for _, app := range catalog {
		label := app.DisplayName()
		if app.Description != "" {
			label = fmt.Sprintf("%s (%s)", app.DisplayName(), app.Description)
		}
		options = append(options, huh.NewOption(label, app.Name).Selected(true))
	}

	var chosen []string
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Applications to scaffold").
			Options(options...).
			Validate(func(selected []string) error {
				if len(selected) == 0 {
					return fmt.Errorf("select at least one application")
				}
				return nil
			}).
			Value(&chosen),
	)).WithTheme(tui.Theme())

	if err := form.Run(); err != nil {
		return nil, err
	}

	selection := make([]apps.App, 0, len(chosen))
	for _, name := range chosen {
		selection = append(selection, apps.Find(name))
	}

	return selection, nil
}
