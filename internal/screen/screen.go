package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/arnavj/mathsprint/internal/store"
	"github.com/arnavj/mathsprint/internal/ui/layout"
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

// ProfileUpdatedMsg tells the root model that an action changed the
// profile, so the header stats need a refresh. Screens emit it after
// completing lessons, losing hearts, or buying from the shop.
type ProfileUpdatedMsg struct {
	Profile *store.Profile
}

// LessonFinishedMsg is emitted when the learner leaves a lesson results
// screen. The skill map listens for it to re-derive unlock state.
type LessonFinishedMsg struct{}
