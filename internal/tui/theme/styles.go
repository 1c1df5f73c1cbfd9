package theme

import "charm.land/lipgloss/v2"

// Styles contains all pre-built lipgloss styles for the TUI.
type Styles struct {
	HeaderTitle lipgloss.Style
	Label       lipgloss.Style
	Required    lipgloss.Style
	Text        lipgloss.Style
	Muted       lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
	Success     lipgloss.Style
	Selected    lipgloss.Style
	Focused     lipgloss.Style
	Section     lipgloss.Style
	Modal       lipgloss.Style
	Sidebar     lipgloss.Style
}
