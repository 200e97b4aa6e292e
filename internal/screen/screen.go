package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/acampos/giftwise/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// LangChangedMsg is broadcast after the interface language toggles so
// the active screen can rebuild cached labels.
type LangChangedMsg struct{}

// EscHandler lets a screen consume the esc key before the app-level
// fallback pops the screen stack.
type EscHandler interface {
	HandleEsc() (handled bool, cmd tea.Cmd)
}
