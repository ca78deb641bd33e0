// Package apps holds the built-in application catalog and the shared
// install-or-update flow every <app>-install wrapper delegates to.
package apps

import (
	"strings"

	"github.com/jaspreet-dot-casa/arch-apps/pkg/pacman"
)

// App describes one application acli knows how to install.
type App struct {
	Name        string // catalog name, also the wrapper identifier
	Display     string // human-readable name, defaults to Name
	Package     string // pacman/AUR package name, defaults to Name
	Description string
	Origin      pacman.Origin // empty means probe at runtime
}

// PackageName returns the pacman package backing the app.
func (a App) PackageName() string {
	if a.Package != "" {
		return a.Package
	}
	return a.Name
}

// DisplayName returns the human-readable name.
func (a App) DisplayName() string {
	if a.Display != "" {
		return a.Display
	}
	if a.Name == "" {
		return a.Name
	}
	return strings.ToUpper(a.Name[:1]) + a.Name[1:]
}

// catalog lists the applications `acli init` scaffolds wrappers for.
var catalog = []App{
	{Name: "btop", Display: "btop", Package: "btop", Description: "Terminal resource monitor", Origin: pacman.OriginRepo},
	{Name: "chrome", Display: "Google Chrome", Package: "google-chrome", Description: "Google Chrome browser", Origin: pacman.OriginAUR},
	{Name: "firefox", Display: "Firefox", Package: "firefox", Description: "Mozilla Firefox browser", Origin: pacman.OriginRepo},
	{Name: "fish", Display: "Fish", Package: "fish", Description: "Friendly interactive shell", Origin: pacman.OriginRepo},
	{Name: "ghostty", Display: "Ghostty", Package: "ghostty", Description: "Modern GPU-accelerated terminal", Origin: pacman.OriginRepo},
	{Name: "kitty", Display: "Kitty", Package: "kitty", Description: "GPU-accelerated terminal emulator", Origin: pacman.OriginRepo},
	{Name: "lazygit", Display: "Lazygit", Package: "lazygit", Description: "Terminal UI for git", Origin: pacman.OriginRepo},
	{Name: "neovim", Display: "Neovim", Package: "neovim", Description: "Hyperextensible Vim-based text editor", Origin: pacman.OriginRepo},
	{Name: "spotify", Display: "Spotify", Package: "spotify", Description: "Music streaming client", Origin: pacman.OriginAUR},
	{Name: "starship", Display: "Starship", Package: "starship", Description: "Cross-shell prompt", Origin: pacman.OriginRepo},
	{Name: "vscode", Display: "VS Code", Package: "visual-studio-code-bin", Description: "Visual Studio Code (official binaries)", Origin: pacman.OriginAUR},
}

// Catalog returns the built-in applications in scaffold order.
func Catalog() []App {
	out := make([]App, len(catalog))
	copy(out, catalog)
	return out
}

// Find returns the catalog entry for a name. Unknown names get a bare
// entry whose origin is probed at runtime.
func Find(name string) App {
	for _, app := range catalog {
		if app.Name == name {
			return app
		}
	}
	return App{Name: name, Package: name}
}
