package apps

import (
	"errors"
	"fmt"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/aur"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/logging"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/pacman"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/version"
)

// ErrNoVersionInfo signals that no available version could be retrieved
// for an installed package, from the repositories or the AUR.
var ErrNoVersionInfo = errors.New("could not retrieve available version information")

// Installer is the capability the sync flow needs from the package
// system. *pacman.Client implements it; tests substitute fakes.
type Installer interface {
	QueryInstalled(name string) (string, error)
	QueryAvailable(name string) (string, error)
	InstallOrUpdate(name string, force bool) error
}

// Options carries the per-invocation flags, threaded explicitly through
// every call.
type Options struct {
	DryRun bool
	Force  bool
}

// EnsureCapability returns a client able to serve the app, resolving the
// AUR helper first when the app lives in the AUR. The helper identity
// travels inside the returned client; nothing is stored globally.
func EnsureCapability(client *pacman.Client, resolver *aur.Resolver, app App, ro aur.ResolveOptions) (*pacman.Client, error) {
	origin := app.Origin
	if origin == "" {
		origin = client.Origin(app.PackageName())
	}
	if origin != pacman.OriginAUR || client.Helper() != "" {
		return client, nil
	}

	h, err := resolver.Resolve(ro)
	if err != nil {
		return nil, err
	}
	return client.WithHelper(h.Command), nil
}

// Syncer drives one application through the install-or-update flow.
type Syncer struct {
	pm  Installer
	log *logging.Logger
}

// NewSyncer creates a Syncer over the given package-system capability.
func NewSyncer(pm Installer, log *logging.Logger) *Syncer {
	return &Syncer{pm: pm, log: log}
}

// Sync brings one application to its available version: installs it when
// absent, updates when outdated, and leaves it alone otherwise. In dry-run
// mode every mutating step is logged and skipped.
func (s *Syncer) Sync(app App, opts Options) error {
	pkg := app.PackageName()

	installed, err := s.pm.QueryInstalled(pkg)
	if err != nil {
		return fmt.Errorf("failed to query installed version of %s: %w", pkg, err)
	}

	if installed == "" {
		s.log.Info("not installed", "app", app.Name)
		if opts.DryRun {
			s.log.Info("dry run: would install", "package", pkg)
			return nil
		}
		return s.pm.InstallOrUpdate(pkg, opts.Force)
	}

	available, err := s.pm.QueryAvailable(pkg)
	if err != nil {
		return fmt.Errorf("failed to query available version of %s: %w", pkg, err)
	}
	if available == "" {
		return fmt.Errorf("%s: %w", pkg, ErrNoVersionInfo)
	}

	switch version.Compare(installed, available) {
	case version.Equal:
		if opts.Force {
			s.log.Info("reinstalling at current version", "app", app.Name, "version", installed)
			if opts.DryRun {
				s.log.Info("dry run: would reinstall", "package", pkg)
				return nil
			}
			return s.pm.InstallOrUpdate(pkg, true)
		}
		s.log.Info("already up to date", "app", app.Name, "version", installed)
		return nil

	case version.UpgradeAvailable:
		s.log.Info("upgrade available", "app", app.Name, "installed", installed, "available", available)
		if opts.DryRun {
			s.log.Info("dry run: would update", "package", pkg)
			return nil
		}
		return s.pm.InstallOrUpdate(pkg, opts.Force)

	default:
		// Valid terminal state, e.g. after a repo rollback or local rebuild
		s.log.Warn(fmt.Sprintf("installed version of %s (%s) is newer than available (%s)", app.Name, installed, available))
		return nil
	}
}
