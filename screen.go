package bankview

import tea "charm.land/bubbletea/v2"

// Screen is one entry of the navigation stack.
type Screen interface {
	// Title names the screen in the footer trail
	Title() string
	// Load fetches whatever the screen displays
	Load() tea.Cmd
	// Update handles keys when on top and broadcast messages always
	Update(msg tea.Msg) (Screen, tea.Cmd)
	// Render the screen body
	Render() string
	// Capturing reports whether the screen wants q and esc for itself
	Capturing() bool
}
