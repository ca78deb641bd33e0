package main

import (
	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/apps"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/aur"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/globalconfig"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/pacman"
)

// newInstallCmd creates the install command
func newInstallCmd() *cobra.Command {
	var opts apps.Options

	cmd := &cobra.Command{
		Use:   "install <app>",
		Short: "Install or update a single application",
		Long: `Install an application from the official repositories or the AUR,
upgrading it when a newer version is available. Nothing happens when
the installed version is already current, unless --force is set.

AUR packages need a helper. When neither yay nor paru is installed,
acli offers to build yay first (git clone plus makepkg).`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInstall(args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.DryRun, "dry-run", "n", false, "Log what would happen without changing anything")
	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Reinstall even when the installed version is current")

	return cmd
}

func runInstall(name string, opts apps.Options) error {
	log := logging.Default()

	cfg, err := globalconfig.Load()
	if err != nil {
		return err
	}

	app := apps.Find(name)

	resolveOpts := aur.ResolveOptions{
		DryRun:    opts.DryRun,
		Preferred: cfg.PreferredHelper,
	}
	if isInteractive() {
		resolveOpts.Confirm = aur.TerminalConfirmer{}
	}

	resolver := aur.NewResolver(&pacman.RealExecutor{}, log)
	client, err := apps.EnsureCapability(pacman.NewClient(), resolver, app, resolveOpts)
	if err != nil {
		return err
	}

	return apps.NewSyncer(client, log).Sync(app, opts)
}
