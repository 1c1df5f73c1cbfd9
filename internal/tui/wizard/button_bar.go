package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ButtonState represents the visual state of a button.
type ButtonState int

const (
	ButtonNormal   ButtonState = iota // Normal state (enabled)
	ButtonDisabled                    // Disabled state (grayed out)
	ButtonFocused                     // Focused/highlighted state
)

// Button represents a single button in the button bar. Press runs when the
// button is activated while enabled.
type Button struct {
	Label string
	State ButtonState
	Press func(p StepProps) tea.Cmd
}

func (b Button) enabled() bool {
	return b.State != ButtonDisabled && b.Press != nil
}

// ButtonBar manages a set of buttons with consistent styling and a single
// keyboard focus.
type ButtonBar struct {
	buttons []Button
	focus   int // -1 when the bar does not have focus
	width   int
}

// NewButtonBar creates a new button bar with the given buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{
		buttons: buttons,
		focus:   -1,
		width:   60,
	}
}

// SetButtons swaps the buttons, keeping focus on the same slot when it is
// still enabled and moving it to the nearest enabled one otherwise.
func (b *ButtonBar) SetButtons(buttons []Button) {
	b.buttons = buttons
	if b.focus < 0 {
		return
	}
	if b.focus >= len(buttons) {
		b.focus = len(buttons) - 1
	}
	if b.focus >= 0 && b.buttons[b.focus].enabled() {
		return
	}
	if !b.FocusLast() {
		b.Blur()
	}
}

// SetWidth updates the width for the button bar.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Focused reports whether a button holds focus.
func (b *ButtonBar) Focused() bool {
	return b.focus >= 0
}

// FocusedButton returns the focused button.
func (b *ButtonBar) FocusedButton() (Button, bool) {
	if b.focus < 0 || b.focus >= len(b.buttons) {
		return Button{}, false
	}
	return b.buttons[b.focus], true
}

// FocusFirst focuses the first enabled button. Returns false if none is
// enabled.
func (b *ButtonBar) FocusFirst() bool {
	return b.seek(-1, 1)
}

// FocusLast focuses the last enabled button.
func (b *ButtonBar) FocusLast() bool {
	return b.seek(len(b.buttons), -1)
}

// FocusNext moves to the next enabled button. Returns false, leaving focus
// unchanged, when already on the last one.
func (b *ButtonBar) FocusNext() bool {
	return b.seek(b.focus, 1)
}

// FocusPrev moves to the previous enabled button.
func (b *ButtonBar) FocusPrev() bool {
	return b.seek(b.focus, -1)
}

// Blur removes focus from the bar.
func (b *ButtonBar) Blur() {
	b.focus = -1
}

func (b *ButtonBar) seek(from, dir int) bool {
	for i := from + dir; i >= 0 && i < len(b.buttons); i += dir {
		if b.buttons[i].enabled() {
			b.focus = i
			return true
		}
	}
	return false
}

// Activate presses the focused button.
func (b *ButtonBar) Activate(p StepProps) tea.Cmd {
	btn, ok := b.FocusedButton()
	if !ok || !btn.enabled() {
		return nil
	}
	return btn.Press(p)
}

// Render renders the button bar with proper spacing and styling.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	normalStyle := lipgloss.NewStyle().
		Foreground(colorText).
		Background(colorSurface0).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	disabledStyle := lipgloss.NewStyle().
		Foreground(colorOverlay0).
		Background(colorMantle).
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	focusedStyle := styleFocused.
		Padding(0, 2).
		MarginLeft(1).
		MarginRight(1)

	var rendered []string
	for i, btn := range b.buttons {
		state := btn.State
		if i == b.focus && btn.enabled() {
			state = ButtonFocused
		}
		switch state {
		case ButtonDisabled:
			rendered = append(rendered, disabledStyle.Render(btn.Label))
		case ButtonFocused:
			rendered = append(rendered, focusedStyle.Render(btn.Label))
		default:
			rendered = append(rendered, normalStyle.Render(btn.Label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

func stateFor(enabled bool) ButtonState {
	if enabled {
		return ButtonNormal
	}
	return ButtonDisabled
}

// backButton steps back one page.
func backButton(enabled bool) Button {
	return Button{
		Label: "← Back",
		State: stateFor(enabled),
		Press: func(p StepProps) tea.Cmd { return p.Back() },
	}
}

// nextButton advances one page when enabled.
func nextButton(label string, enabled bool) Button {
	return Button{
		Label: label,
		State: stateFor(enabled),
		Press: func(p StepProps) tea.Cmd { return p.Next() },
	}
}

// CreateBackNextButtons creates the standard Back/Next button set.
func CreateBackNextButtons(backEnabled, nextEnabled bool, nextLabel string) []Button {
	return []Button{backButton(backEnabled), nextButton(nextLabel, nextEnabled)}
}
