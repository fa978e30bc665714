// Package screen declares the contract every screen in the TUI satisfies.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/ankitha/wordrow/internal/ui/layout"
)

// Screen is one view in the router's stack. View renders only the content
// area; the app model wraps it in the header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints instead of
// the app model's defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
