package aur

import (
	"github.com/charmbracelet/huh"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/tui"
)

// Confirmer asks the user a yes/no question. Injected so automated runs
// and tests supply deterministic answers instead of reading a terminal.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a plain function to the Confirmer interface.
type ConfirmFunc func(prompt string) bool

// Confirm calls f.
func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// TerminalConfirmer prompts on the terminal.
type TerminalConfirmer struct{}

// Confirm shows a yes/no prompt and returns the answer. A form error
// counts as a decline.
func (TerminalConfirmer) Confirm(prompt string) bool {
	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(prompt).
				Affirmative("Yes, install it").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(tui.Theme())

	if err := form.Run(); err != nil {
		return false
	}
	return confirmed
}
