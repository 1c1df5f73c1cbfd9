package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/chamberhq/join/internal/tui/theme"
)

// Palette and styles come from the active theme.
var (
	palette = theme.Current()

	colorPrimary       = lipgloss.Color(palette.Primary)
	colorSecondary     = lipgloss.Color(palette.Secondary)
	colorText          = lipgloss.Color(palette.FgBase)
	colorSubtext0      = lipgloss.Color(palette.FgSubtle)
	colorSubtext1      = lipgloss.Color(palette.FgBase)
	colorSurface0      = lipgloss.Color(palette.BgSurface0)
	colorSurface2      = lipgloss.Color(palette.BgSurface1)
	colorOverlay0      = lipgloss.Color(palette.FgMuted)
	colorBorderFocused = lipgloss.Color(palette.Secondary)
	colorMantle        = lipgloss.Color(palette.BgMantle)
)

// Modal styles
var (
	styleModalContainer = styles().Modal
	styleModalTitle     = styles().HeaderTitle
)

// Field styles
var (
	styleLabel        = styles().Label
	styleLabelFocused = styles().Selected
	styleRequired     = styles().Required
	styleText         = styles().Text
	styleMuted        = styles().Muted
	styleFocused      = styles().Focused

	styleInputBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorSurface2)

	styleInputBoxFocused = styleInputBox.
				BorderForeground(colorBorderFocused)

	styleIssue = styles().Warning
	styleError = styles().Error
)

// Hint bar styles
var (
	styleHintKey = styles().Text.
			Bold(true)

	styleHintDesc      = styles().Label
	styleHintSeparator = styles().Muted
)

// renderHintBar renders a hint bar with the given key-description pairs.
// Example: renderHintBar("↑↓", "navigate", "enter", "select", "esc", "back")
// Returns: "↑↓ navigate • enter select • esc back"
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString(" " + styleHintSeparator.Render("•") + " ")
		}
		b.WriteString(styleHintKey.Render(pairs[i]) + " " + styleHintDesc.Render(pairs[i+1]))
	}
	return b.String()
}

// renderIssues lists advisory problems under a form.
func renderIssues(messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, styleIssue.Render("! "+msg))
	}
	return strings.Join(lines, "\n")
}

// renderSection renders an underlined section heading.
func renderSection(title string) string {
	return styles().Section.Render(title)
}

// styles returns the active theme's pre-built styles.
func styles() *theme.Styles {
	return theme.Current().S()
}
