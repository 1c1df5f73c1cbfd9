package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette for the TUI.
type Theme struct {
	Name   string
	IsDark bool

	// Semantic colors
	Primary   string // lipgloss.Color is a string type
	Secondary string
	Tertiary  string

	// Background hierarchy (dark→light)
	BgBase     string
	BgMantle   string
	BgSurface0 string
	BgSurface1 string

	// Foreground hierarchy (dim→bright)
	FgMuted  string
	FgSubtle string
	FgBase   string
	FgBright string

	// Status colors
	Success string
	Warning string
	Error   string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

var (
	current     *Theme
	currentOnce sync.Once
)

// Current returns the active theme.
func Current() *Theme {
	currentOnce.Do(func() {
		current = NewCatppuccinMocha()
	})
	return current
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

// buildStyles constructs the pre-built styles from theme colors.
func (t *Theme) buildStyles() *Styles {
	c := lipgloss.Color
	return &Styles{
		HeaderTitle: lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true),
		Label:       lipgloss.NewStyle().Foreground(c(t.FgSubtle)),
		Required:    lipgloss.NewStyle().Foreground(c(t.Error)),
		Text:        lipgloss.NewStyle().Foreground(c(t.FgBase)),
		Muted:       lipgloss.NewStyle().Foreground(c(t.FgMuted)),
		Error:       lipgloss.NewStyle().Foreground(c(t.Error)),
		Warning:     lipgloss.NewStyle().Foreground(c(t.Warning)),
		Success:     lipgloss.NewStyle().Foreground(c(t.Success)).Bold(true),
		Selected:    lipgloss.NewStyle().Foreground(c(t.Secondary)).Bold(true),
		Focused:     lipgloss.NewStyle().Foreground(c(t.BgBase)).Background(c(t.Secondary)).Bold(true),
		Section:     lipgloss.NewStyle().Foreground(c(t.Primary)).Bold(true).Underline(true),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(t.Secondary)).
			Padding(1, 2),
		Sidebar: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(c(t.BgSurface1)).
			Padding(0, 2, 0, 1),
	}
}
