package pacman

import (
	"fmt"
	"strings"
)

// Origin identifies where a package is served from.
type Origin string

const (
	// OriginRepo means the package lives in the official repositories.
	OriginRepo Origin = "repo"
	// OriginAUR means the package must be built from the AUR.
	OriginAUR Origin = "aur"
)

// Client queries and installs packages through pacman, falling back to a
// resolved AUR helper for packages the official repositories do not carry.
// The zero helper means AUR operations are unavailable.
type Client struct {
	exec   CommandExecutor
	helper string
}

// NewClient creates a Client over the real executor.
func NewClient() *Client {
	return &Client{exec: &RealExecutor{}}
}

// NewClientWithExecutor creates a Client with a custom executor (for testing).
func NewClientWithExecutor(exec CommandExecutor) *Client {
	return &Client{exec: exec}
}

// WithHelper returns a copy of the client that routes AUR queries and
// installs through the given helper command, e.g. "yay".
func (c *Client) WithHelper(helperCmd string) *Client {
	return &Client{exec: c.exec, helper: helperCmd}
}

// Helper returns the configured AUR helper command, empty if none.
func (c *Client) Helper() string {
	return c.helper
}

// QueryInstalled returns the installed version of a package, or the empty
// string when it is not installed. pacman -Q exits non-zero for unknown
// packages, which is not an error here.
func (c *Client) QueryInstalled(name string) (string, error) {
	output, err := c.exec.Run("pacman", "-Q", name)
	if err != nil {
		return "", nil
	}
	return parseQueryOutput(output), nil
}

// QueryAvailable returns the version available for a package, probing the
// official repositories first and the AUR helper second. The empty string
// means no version information could be retrieved from either source.
func (c *Client) QueryAvailable(name string) (string, error) {
	if v := c.infoVersion("pacman", name); v != "" {
		return v, nil
	}
	if c.helper != "" {
		if v := c.infoVersion(c.helper, name); v != "" {
			return v, nil
		}
	}
	return "", nil
}

// Origin reports whether a package is served by the official repositories.
// Anything the repositories do not know is assumed to be an AUR package.
func (c *Client) Origin(name string) Origin {
	if _, err := c.exec.Run("pacman", "-Si", name); err == nil {
		return OriginRepo
	}
	return OriginAUR
}

// InstallOrUpdate installs a package, or updates it when already present.
// With --needed pacman leaves a current package alone, so the call is
// idempotent; force drops --needed to reinstall at the same version.
func (c *Client) InstallOrUpdate(name string, force bool) error {
	args := []string{"-S", "--noconfirm"}
	if !force {
		args = append(args, "--needed")
	}
	args = append(args, name)

	var err error
	if c.Origin(name) == OriginRepo {
		err = c.exec.RunInteractive("", "sudo", append([]string{"pacman"}, args...)...)
	} else {
		if c.helper == "" {
			return fmt.Errorf("%s is an AUR package but no AUR helper is available", name)
		}
		// AUR helpers elevate themselves when needed
		err = c.exec.RunInteractive("", c.helper, args...)
	}
	if err != nil {
		return fmt.Errorf("failed to install %s: %w", name, err)
	}
	return nil
}

// infoVersion runs `<tool> -Si <name>` and extracts the Version field.
func (c *Client) infoVersion(tool, name string) string {
	output, err := c.exec.Run(tool, "-Si", name)
	if err != nil {
		return ""
	}
	return parseInfoVersion(output)
}

// parseQueryOutput extracts the version from `pacman -Q` output, which has
// the form "name version".
func parseQueryOutput(output string) string {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return ""
	}
	return fields[1]
}

// parseInfoVersion extracts the Version field from a `-Si` info block.
func parseInfoVersion(output string) string {
	for _, line := range strings.Split(output, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.TrimSpace(key) == "Version" {
			return strings.TrimSpace(value)
		}
	}
	return ""
}
