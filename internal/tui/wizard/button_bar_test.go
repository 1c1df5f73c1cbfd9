package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/chamberhq/join/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

func labelled(label string, state ButtonState, pressed *string) Button {
	return Button{
		Label: label,
		State: state,
		Press: func(StepProps) tea.Cmd {
			*pressed = label
			return nil
		},
	}
}

func TestButtonBar_FocusSkipsDisabled(t *testing.T) {
	t.Parallel()

	var pressed string
	bar := NewButtonBar([]Button{
		labelled("Back", ButtonDisabled, &pressed),
		labelled("Skip", ButtonNormal, &pressed),
		labelled("Next", ButtonNormal, &pressed),
	})
	require.False(t, bar.Focused())

	require.True(t, bar.FocusFirst())
	btn, ok := bar.FocusedButton()
	require.True(t, ok)
	require.Equal(t, "Skip", btn.Label)

	require.True(t, bar.FocusNext())
	require.False(t, bar.FocusNext(), "no button after Next")
	btn, _ = bar.FocusedButton()
	require.Equal(t, "Next", btn.Label)

	require.True(t, bar.FocusPrev())
	require.False(t, bar.FocusPrev(), "Back is disabled")

	bar.Activate(StepProps{})
	require.Equal(t, "Skip", pressed)

	bar.Blur()
	require.False(t, bar.Focused())
	require.Nil(t, bar.Activate(StepProps{}))
}

func TestButtonBar_AllDisabled(t *testing.T) {
	t.Parallel()

	var pressed string
	bar := NewButtonBar([]Button{labelled("Next", ButtonDisabled, &pressed)})
	require.False(t, bar.FocusFirst())
	require.False(t, bar.FocusLast())
	require.False(t, bar.Focused())
}

func TestButtonBar_SetButtonsKeepsFocus(t *testing.T) {
	t.Parallel()

	var pressed string
	bar := NewButtonBar([]Button{
		labelled("Back", ButtonNormal, &pressed),
		labelled("Next", ButtonNormal, &pressed),
	})
	bar.FocusLast()

	bar.SetButtons([]Button{
		labelled("Back", ButtonNormal, &pressed),
		labelled("Next", ButtonNormal, &pressed),
	})
	btn, _ := bar.FocusedButton()
	require.Equal(t, "Next", btn.Label)

	// Focused slot became disabled: focus falls back to an enabled one.
	bar.SetButtons([]Button{
		labelled("Back", ButtonNormal, &pressed),
		labelled("Next", ButtonDisabled, &pressed),
	})
	btn, _ = bar.FocusedButton()
	require.Equal(t, "Back", btn.Label)

	bar.SetButtons(nil)
	require.False(t, bar.Focused())
}

func TestButtonBar_Render(t *testing.T) {
	t.Parallel()

	bar := NewButtonBar(CreateBackNextButtons(false, true, "Next →"))
	bar.SetWidth(40)
	out := testfixtures.Plain(bar.Render())
	require.Contains(t, out, "← Back")
	require.Contains(t, out, "Next →")

	require.Empty(t, NewButtonBar(nil).Render())
}

func TestRenderHintBar(t *testing.T) {
	t.Parallel()

	out := testfixtures.Plain(renderHintBar("tab", "next", "esc", "back"))
	require.Equal(t, "tab next • esc back", out)
	require.Empty(t, renderHintBar("odd"))
}
