package wizard

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/require"
)

func TestStyles_FollowTheme(t *testing.T) {
	t.Parallel()

	s := styles()
	cases := []struct {
		name  string
		local lipgloss.Style
		theme lipgloss.Style
	}{
		{"modal", styleModalContainer, s.Modal},
		{"title", styleModalTitle, s.HeaderTitle},
		{"label", styleLabel, s.Label},
		{"label focused", styleLabelFocused, s.Selected},
		{"required", styleRequired, s.Required},
		{"text", styleText, s.Text},
		{"muted", styleMuted, s.Muted},
		{"focused", styleFocused, s.Focused},
		{"issue", styleIssue, s.Warning},
		{"error", styleError, s.Error},
	}
	for _, tc := range cases {
		require.Equal(t, tc.theme.GetForeground(), tc.local.GetForeground(), tc.name)
		require.Equal(t, tc.theme.GetBackground(), tc.local.GetBackground(), tc.name)
		require.Equal(t, tc.theme.GetBold(), tc.local.GetBold(), tc.name)
	}
	require.Equal(t, s.Modal.GetBorderTopForeground(), styleModalContainer.GetBorderTopForeground())
}

func TestStyles_PaletteFromTheme(t *testing.T) {
	t.Parallel()

	require.Equal(t, lipgloss.Color(palette.Primary), colorPrimary)
	require.Equal(t, lipgloss.Color(palette.BgMantle), colorMantle)
	require.Equal(t, lipgloss.Color(palette.Secondary), colorBorderFocused)
}
