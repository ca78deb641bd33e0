// Package aur resolves and bootstraps the AUR helper used for packages
// outside the official repositories.
package aur

import (
	"github.com/jaspreet-dot-casa/arch-apps/pkg/pacman"
)

// Helper identifies an installed AUR helper.
type Helper struct {
	Name    string // display name
	Command string // executable name
}

// Known helpers. Yay is the one bootstrapped automatically when neither
// is present.
var (
	Yay  = Helper{Name: "yay", Command: "yay"}
	Paru = Helper{Name: "paru", Command: "paru"}
)

// probeOrder is the fixed priority order for detection.
var probeOrder = []Helper{Yay, Paru}

// Detect probes for an installed AUR helper, yay first, then paru.
// preferred, when non-empty, names a helper to probe ahead of the fixed
// order; unknown names are ignored.
func Detect(exec pacman.CommandExecutor, preferred string) (Helper, bool) {
	order := probeOrder
	if h, ok := byCommand(preferred); ok {
		order = append([]Helper{h}, probeOrder...)
	}

	for _, h := range order {
		if _, err := exec.LookPath(h.Command); err == nil {
			return h, true
		}
	}
	return Helper{}, false
}

func byCommand(cmd string) (Helper, bool) {
	for _, h := range probeOrder {
		if h.Command == cmd {
			return h, true
		}
	}
	return Helper{}, false
}
