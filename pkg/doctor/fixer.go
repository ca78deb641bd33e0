package doctor

import (
	"fmt"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/pacman"
)

// fixCommands defines the fix command for each check.
var fixCommands = map[string]*FixCommand{
	IDSudo: {
		Description: "Install sudo (run as root)",
		Command:     "pacman -S --noconfirm sudo",
		Sudo:        true,
	},
	IDGit: {
		Description: "Install git",
		Command:     "sudo pacman -S --noconfirm git",
		Sudo:        true,
	},
	IDMakepkg: {
		Description: "Install the base-devel group",
		Command:     "sudo pacman -S --noconfirm --needed base-devel",
		Sudo:        true,
	},
	IDAurHelper: {
		Description: "Build and install yay from the AUR",
		Command:     "sudo pacman -S --noconfirm --needed git base-devel && git clone https://aur.archlinux.org/yay.git /tmp/yay-build && (cd /tmp/yay-build && makepkg -si --noconfirm) && rm -rf /tmp/yay-build",
		Sudo:        true,
	},
	IDScriptsDir: {
		Description: "Scaffold an install scripts directory",
		Command:     "acli init",
		Sudo:        false,
	},
}

// GetFixCommand returns the fix command for a check, or nil if there is
// no automated fix.
func GetFixCommand(checkID string) *FixCommand {
	return fixCommands[checkID]
}

// Fixer provides functionality to run fix commands.
type Fixer struct {
	executor pacman.CommandExecutor
}

// NewFixer creates a new Fixer.
func NewFixer() *Fixer {
	return &Fixer{
		executor: &pacman.RealExecutor{},
	}
}

// NewFixerWithExecutor creates a new Fixer with a custom executor.
func NewFixerWithExecutor(exec pacman.CommandExecutor) *Fixer {
	return &Fixer{
		executor: exec,
	}
}

// RunFix executes a fix command.
func (f *Fixer) RunFix(fix *FixCommand) error {
	if fix == nil {
		return fmt.Errorf("no fix command available")
	}

	// Run the command through shell using the executor
	output, err := f.executor.CombinedOutput("sh", "-c", fix.Command)
	if err != nil {
		return fmt.Errorf("fix failed: %w\nOutput: %s", err, string(output))
	}

	return nil
}
