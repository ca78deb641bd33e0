// Package main provides the acli CLI tool for installing and updating
// the applications behind this repository's install scripts
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Fatal errors come out as a single [ERROR] line on stderr
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		logging.Default().Error(err)
		os.Exit(1)
	}
}

// newRootCmd creates the root command
func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "acli",
		Short: "Arch application install CLI",
		Long: `acli installs and keeps up to date the applications behind the
per-app install scripts in this repository.

It supports:
  - Installing a single application from the official repos or the AUR
  - Running every install script in order with one command
  - Bootstrapping an AUR helper when none is installed
  - Checking the environment for the tools installs depend on
  - Scaffolding wrapper scripts for new machines`,
		Version: version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logging.Default().SetVerbose(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug output")

	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// isInteractive reports whether stdin is attached to a terminal, which
// decides whether acli may prompt the user.
func isInteractive() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
