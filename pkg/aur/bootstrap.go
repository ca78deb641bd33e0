package aur

import (
	"errors"
	"fmt"
	"os"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/pacman"
)

// ErrHelperRequired is returned when no AUR helper is installed and one
// cannot, or may not, be bootstrapped.
var ErrHelperRequired = errors.New("an AUR helper (yay or paru) is required")

// recipeURL is where the primary helper's build recipe lives.
const recipeURL = "https://aur.archlinux.org/yay.git"

// ResolveOptions controls helper resolution.
type ResolveOptions struct {
	DryRun    bool
	Preferred string    // helper command to probe first, may be empty
	Confirm   Confirmer // nil means the context cannot ask the user
}

// Resolver finds the AUR helper once per process invocation and bootstraps
// the primary helper when the user agrees. The resolved identity is handed
// back to the caller, which threads it into whatever needs AUR capability.
type Resolver struct {
	exec pacman.CommandExecutor
	log  *logging.Logger
}

// NewResolver creates a Resolver over the given executor.
func NewResolver(exec pacman.CommandExecutor, log *logging.Logger) *Resolver {
	return &Resolver{exec: exec, log: log}
}

// Resolve returns the helper to use for AUR operations. When none is
// installed it offers to bootstrap yay; declining, or running without a
// way to ask, fails with ErrHelperRequired.
func (r *Resolver) Resolve(opts ResolveOptions) (Helper, error) {
	if h, ok := Detect(r.exec, opts.Preferred); ok {
		r.log.Debug("AUR helper detected", "helper", h.Name)
		return h, nil
	}

	if opts.Confirm == nil {
		return Helper{}, ErrHelperRequired
	}
	if !opts.Confirm.Confirm("No AUR helper found. Install yay now?") {
		return Helper{}, ErrHelperRequired
	}

	if opts.DryRun {
		r.log.Info("dry run: would install yay from the AUR")
		return Yay, nil
	}

	if err := r.bootstrap(); err != nil {
		return Helper{}, err
	}
	return Yay, nil
}

// bootstrap installs yay: prerequisite packages, clone the build recipe,
// build and install, then drop the working directory.
func (r *Resolver) bootstrap() error {
	r.log.Info("installing yay from the AUR")

	// makepkg refuses to run without base-devel, and the clone needs git
	err := r.exec.RunInteractive("", "sudo", "pacman", "-S", "--noconfirm", "--needed", "git", "base-devel")
	if err != nil {
		return fmt.Errorf("failed to install prerequisites: %w", err)
	}

	buildDir, err := os.MkdirTemp("", "yay-build-")
	if err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}
	defer os.RemoveAll(buildDir)

	if err := r.exec.RunInteractive("", "git", "clone", recipeURL, buildDir); err != nil {
		return fmt.Errorf("failed to clone yay build recipe: %w", err)
	}

	if err := r.exec.RunInteractive(buildDir, "makepkg", "-si", "--noconfirm"); err != nil {
		return fmt.Errorf("failed to build yay: %w", err)
	}

	r.log.Info("yay installed")
	return nil
}
