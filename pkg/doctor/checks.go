package doctor

import (
	"fmt"
	"regexp"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/aur"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/pacman"
	"github.com/jaspreet-dot-casa/arch-apps/pkg/runner"
)

// checkTool checks if a tool is installed and gets its version.
func checkTool(exec pacman.CommandExecutor, id, name, desc string, versionArgs []string, versionRegex *regexp.Regexp, fixCmd *FixCommand) Check {
	check := Check{
		ID:          id,
		Name:        name,
		Description: desc,
		FixCommand:  fixCmd,
	}

	path, err := exec.LookPath(id)
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not installed"
		return check
	}

	// Try to get version
	output, err := exec.Run(path, versionArgs...)
	if err != nil {
		// Tool exists but version check failed - still consider it OK
		check.Status = StatusOK
		check.Message = "installed (version unknown)"
		return check
	}

	// Extract version from output
	version := extractVersion(output, versionRegex)
	if version != "" {
		check.Status = StatusOK
		check.Message = version
	} else {
		check.Status = StatusOK
		check.Message = "installed"
	}

	return check
}

// extractVersion extracts version string from command output.
func extractVersion(output string, regex *regexp.Regexp) string {
	if regex == nil {
		// Default: look for common version patterns
		defaultRegex := regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:-[a-zA-Z0-9]+)?)`)
		matches := defaultRegex.FindStringSubmatch(output)
		if len(matches) >= 2 {
			return matches[1]
		}
		return ""
	}

	matches := regex.FindStringSubmatch(output)
	if len(matches) >= 2 {
		return matches[1]
	}
	return ""
}

// CheckArch checks whether this is an Arch system at all.
func CheckArch(exec pacman.CommandExecutor) Check {
	check := Check{
		ID:          IDArch,
		Name:        "Arch Linux",
		Description: "Target distribution",
	}

	if exec.FileExists("/etc/arch-release") {
		check.Status = StatusOK
		check.Message = "detected"
	} else {
		check.Status = StatusWarning
		check.Message = "/etc/arch-release not found"
	}

	return check
}

// CheckPacman checks if pacman is installed.
func CheckPacman(exec pacman.CommandExecutor) Check {
	return checkTool(
		exec,
		IDPacman,
		"pacman",
		"Arch package manager",
		[]string{"-V"},
		regexp.MustCompile(`Pacman v(\d+\.\d+\.\d+)`),
		nil, // nothing sensible to run if pacman itself is gone
	)
}

// CheckSudo checks if sudo is installed.
func CheckSudo(exec pacman.CommandExecutor) Check {
	return checkTool(
		exec,
		IDSudo,
		"sudo",
		"Privilege elevation for repo installs",
		[]string{"--version"},
		regexp.MustCompile(`Sudo version (\S+)`),
		GetFixCommand(IDSudo),
	)
}

// CheckGit checks if git is installed.
func CheckGit(exec pacman.CommandExecutor) Check {
	return checkTool(
		exec,
		IDGit,
		"git",
		"Needed to clone AUR package recipes",
		[]string{"--version"},
		regexp.MustCompile(`git version (\d+\.\d+\.\d+)`),
		GetFixCommand(IDGit),
	)
}

// CheckMakepkg checks if makepkg (base-devel) is installed.
func CheckMakepkg(exec pacman.CommandExecutor) Check {
	return checkTool(
		exec,
		IDMakepkg,
		"makepkg",
		"Builds packages from AUR recipes",
		[]string{"--version"},
		regexp.MustCompile(`makepkg \(pacman\) (\d+\.\d+\.\d+)`),
		GetFixCommand(IDMakepkg),
	)
}

// CheckAurHelper checks for an installed AUR helper. One helper is
// enough, the check reports whichever is found first.
func CheckAurHelper(exec pacman.CommandExecutor) Check {
	check := Check{
		ID:          IDAurHelper,
		Name:        "AUR helper",
		Description: "Installs and queries AUR packages",
		FixCommand:  GetFixCommand(IDAurHelper),
	}

	helper, ok := aur.Detect(exec, "")
	if !ok {
		check.Status = StatusMissing
		check.Message = "neither yay nor paru found"
		return check
	}

	output, err := exec.Run(helper.Command, "--version")
	if err != nil {
		check.Status = StatusOK
		check.Message = helper.Name
		return check
	}

	version := extractVersion(output, nil)
	if version != "" {
		check.Status = StatusOK
		check.Message = fmt.Sprintf("%s %s", helper.Name, version)
	} else {
		check.Status = StatusOK
		check.Message = helper.Name
	}

	return check
}

// CheckScriptsDir checks that the install scripts directory exists and
// contains at least one unit.
func CheckScriptsDir(dir string) Check {
	check := Check{
		ID:          IDScriptsDir,
		Name:        "Install scripts",
		Description: "Per-app install scripts discovered by acli run",
		FixCommand:  GetFixCommand(IDScriptsDir),
	}

	if dir == "" {
		check.Status = StatusWarning
		check.Message = "no scripts directory found"
		return check
	}

	units, err := runner.NewDirDiscoverer(dir).Discover()
	if err != nil {
		check.Status = StatusMissing
		check.Message = "not found: " + dir
		return check
	}

	if len(units) == 0 {
		check.Status = StatusWarning
		check.Message = "no install scripts in " + dir
		return check
	}

	check.Status = StatusOK
	check.Message = fmt.Sprintf("%d install scripts in %s", len(units), dir)
	return check
}
