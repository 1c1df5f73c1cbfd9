package wizard

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/chamberhq/join/internal/registration"
)

// control is one focusable element of a step form.
type control interface {
	focus() tea.Cmd
	blur()
	update(msg tea.Msg, p StepProps) tea.Cmd
	view(data registration.FormData) string
	sync(data registration.FormData)
	setWidth(width int)
}

// fieldValue reads a field as its display string. Enum fields are string
// kinds so fmt prints their raw value.
func fieldValue(data registration.FormData, field registration.Field) string {
	v, err := data.Value(field)
	if err != nil || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func renderLabel(label string, required, focused bool) string {
	style := styleLabel
	if focused {
		style = styleLabelFocused
	}
	out := style.Render(label)
	if required {
		out += styleRequired.Render(" *")
	}
	return out
}

// focusRing tracks which of size elements holds focus. index is -1 when
// nothing is focused.
type focusRing struct {
	size  int
	index int
}

func newFocusRing(size int) focusRing {
	return focusRing{size: size, index: -1}
}

func (r *focusRing) first() bool {
	if r.size == 0 {
		return false
	}
	r.index = 0
	return true
}

func (r *focusRing) last() bool {
	if r.size == 0 {
		return false
	}
	r.index = r.size - 1
	return true
}

// next advances focus and reports false when already on the last element.
func (r *focusRing) next() bool {
	if r.index+1 >= r.size {
		return false
	}
	r.index++
	return true
}

// prev moves focus back and reports false when already on the first element.
func (r *focusRing) prev() bool {
	if r.index <= 0 {
		return false
	}
	r.index--
	return true
}

func (r *focusRing) clear() {
	r.index = -1
}

// form is an ordered list of controls sharing one focus ring.
type form struct {
	controls []control
	ring     focusRing
	width    int
}

func newForm(controls ...control) *form {
	return &form{
		controls: controls,
		ring:     newFocusRing(len(controls)),
		width:    60,
	}
}

func (f *form) focused() control {
	if f.ring.index < 0 || f.ring.index >= len(f.controls) {
		return nil
	}
	return f.controls[f.ring.index]
}

func (f *form) blur() {
	if c := f.focused(); c != nil {
		c.blur()
	}
	f.ring.clear()
}

func (f *form) move(step func() bool) (tea.Cmd, bool) {
	prev := f.focused()
	if !step() {
		return nil, false
	}
	if prev != nil {
		prev.blur()
	}
	return f.focused().focus(), true
}

func (f *form) focusFirst() tea.Cmd {
	f.blur()
	cmd, _ := f.move(f.ring.first)
	return cmd
}

func (f *form) focusLast() tea.Cmd {
	f.blur()
	cmd, _ := f.move(f.ring.last)
	return cmd
}

func (f *form) focusNext() (tea.Cmd, bool) {
	return f.move(f.ring.next)
}

func (f *form) focusPrev() (tea.Cmd, bool) {
	return f.move(f.ring.prev)
}

func (f *form) update(msg tea.Msg, p StepProps) tea.Cmd {
	c := f.focused()
	if c == nil {
		return nil
	}
	return c.update(msg, p)
}

func (f *form) sync(data registration.FormData) {
	for _, c := range f.controls {
		c.sync(data)
	}
}

func (f *form) setWidth(width int) {
	f.width = width
	for _, c := range f.controls {
		c.setWidth(width)
	}
}

func (f *form) view(data registration.FormData) string {
	parts := make([]string, 0, len(f.controls))
	for _, c := range f.controls {
		parts = append(parts, c.view(data))
	}
	return strings.Join(parts, "\n\n")
}

// newTextInput creates a textinput with the wizard's styles.
func newTextInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	input.SetStyles(textinput.Styles{
		Focused: textinput.StyleState{
			Text:        styleText,
			Placeholder: lipgloss.NewStyle().Foreground(colorOverlay0),
			Prompt:      lipgloss.NewStyle().Foreground(colorSecondary),
		},
		Blurred: textinput.StyleState{
			Text:        lipgloss.NewStyle().Foreground(colorSubtext0),
			Placeholder: lipgloss.NewStyle().Foreground(colorSurface2),
			Prompt:      lipgloss.NewStyle().Foreground(colorOverlay0),
		},
		Cursor: textinput.CursorStyle{
			Color: colorPrimary,
			Shape: tea.CursorBar,
			Blink: true,
		},
	})
	input.SetWidth(50)
	return input
}

// textField is a labelled single-line input bound to a string field. A
// field with an empty key is local: its value never reaches the form.
type textField struct {
	field    registration.Field
	label    string
	required bool
	input    textinput.Model
}

func newTextField(field registration.Field, placeholder string, required bool) *textField {
	return &textField{
		field:    field,
		label:    field.Label(),
		required: required,
		input:    newTextInput(placeholder),
	}
}

// newLocalField creates an input whose value stays inside the step.
func newLocalField(label, placeholder string) *textField {
	return &textField{
		label: label,
		input: newTextInput(placeholder),
	}
}

func (t *textField) focus() tea.Cmd { return t.input.Focus() }
func (t *textField) blur() { t.input.Blur() }

func (t *textField) setWidth(width int) {
	t.input.SetWidth(max(10, min(width-2, 60)))
}

// setMasked toggles password echo.
func (t *textField) setMasked(masked bool) {
	if masked {
		t.input.EchoMode = textinput.EchoPassword
		t.input.EchoCharacter = '•'
		return
	}
	t.input.EchoMode = textinput.EchoNormal
}

func (t *textField) sync(data registration.FormData) {
	if t.field == "" {
		return
	}
	if v := fieldValue(data, t.field); v != t.input.Value() {
		t.input.SetValue(v)
	}
}

func (t *textField) update(msg tea.Msg, p StepProps) tea.Cmd {
	if paste, ok := msg.(tea.PasteMsg); ok {
		paste.Content = singleLine(sanitizePaste(paste.Content))
		if paste.Content == "" {
			return nil
		}
		msg = paste
	}
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	if after := t.input.Value(); after != before && t.field != "" {
		p.Update(t.field, after)
	}
	return cmd
}

func (t *textField) view(registration.FormData) string {
	box := styleInputBox
	if t.input.Focused() {
		box = styleInputBoxFocused
	}
	return renderLabel(t.label, t.required, t.input.Focused()) + "\n" + box.Render(t.input.View())
}

// choiceLayout selects how a choiceGroup draws and reacts to keys.
type choiceLayout int

const (
	layoutList   choiceLayout = iota // one option per line, space selects
	layoutInline                     // options side by side, space selects
	layoutSelect                     // one value shown, left/right change it
	layoutTabs                       // tab strip, left/right change it
)

type choice struct {
	value  string
	label  string
	hint   string
	swatch string // hex color drawn before the label, optional
}

// choiceGroup is a radio group or a compact select bound to one field.
type choiceGroup struct {
	field    registration.Field
	label    string
	required bool
	layout   choiceLayout
	options  []choice
	cursor   int
	focused  bool
}

func newChoiceGroup(field registration.Field, layout choiceLayout, required bool, options []choice) *choiceGroup {
	return &choiceGroup{
		field:    field,
		label:    field.Label(),
		required: required,
		layout:   layout,
		options:  options,
	}
}

// stringChoices turns a plain option list into choices.
func stringChoices(values []string) []choice {
	out := make([]choice, 0, len(values))
	for _, v := range values {
		out = append(out, choice{value: v, label: v})
	}
	return out
}

func (g *choiceGroup) focus() tea.Cmd {
	g.focused = true
	return nil
}

func (g *choiceGroup) blur() { g.focused = false }
func (g *choiceGroup) setWidth(int) {}

func (g *choiceGroup) indexOf(value string) int {
	for i, o := range g.options {
		if o.value == value {
			return i
		}
	}
	return -1
}

func (g *choiceGroup) sync(data registration.FormData) {
	if i := g.indexOf(fieldValue(data, g.field)); i >= 0 {
		g.cursor = i
	}
}

func (g *choiceGroup) update(msg tea.Msg, p StepProps) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(g.options) == 0 {
		return nil
	}

	if g.layout == layoutSelect || g.layout == layoutTabs {
		selected := g.indexOf(fieldValue(p.Data, g.field))
		switch keyMsg.String() {
		case "left", "up":
			if selected < 0 {
				selected = 0
			} else {
				selected = (selected - 1 + len(g.options)) % len(g.options)
			}
		case "right", "down", "space", "enter":
			selected = (selected + 1) % len(g.options)
		default:
			return nil
		}
		g.cursor = selected
		p.Update(g.field, g.options[selected].value)
		return nil
	}

	switch keyMsg.String() {
	case "up", "left", "k":
		g.cursor = max(0, g.cursor-1)
	case "down", "right", "j":
		g.cursor = min(len(g.options)-1, g.cursor+1)
	case "space", "enter":
		p.Update(g.field, g.options[g.cursor].value)
	}
	return nil
}

func (g *choiceGroup) view(data registration.FormData) string {
	current := fieldValue(data, g.field)
	if g.layout == layoutTabs {
		return g.tabsView(current)
	}
	header := renderLabel(g.label, g.required, g.focused)

	if g.layout == layoutSelect {
		value := styleLabel.Render("Select an option")
		if i := g.indexOf(current); i >= 0 {
			value = styleText.Render(g.options[i].label)
		}
		arrows := lipgloss.NewStyle().Foreground(colorSurface2)
		if g.focused {
			arrows = arrows.Foreground(colorSecondary)
		}
		return header + "\n" + arrows.Render("‹ ") + value + arrows.Render(" ›")
	}

	items := make([]string, 0, len(g.options))
	for i, o := range g.options {
		mark := "( )"
		if o.value == current {
			mark = "(●)"
		}
		text := mark + " "
		if o.swatch != "" {
			text += lipgloss.NewStyle().Foreground(lipgloss.Color(o.swatch)).Render("██") + " "
		}
		text += o.label

		style := lipgloss.NewStyle().Foreground(colorSubtext1)
		if o.value == current {
			style = style.Foreground(colorSecondary).Bold(true)
		}
		cursor := "  "
		if g.focused && i == g.cursor {
			cursor = lipgloss.NewStyle().Foreground(colorPrimary).Render("› ")
		}
		item := cursor + style.Render(text)
		if o.hint != "" && g.layout == layoutList {
			item += "\n    " + styleLabel.Render(o.hint)
		}
		items = append(items, item)
	}

	if g.layout == layoutInline {
		return header + "\n" + strings.Join(items, "  ")
	}
	return header + "\n" + strings.Join(items, "\n")
}

func (g *choiceGroup) tabsView(current string) string {
	tabs := make([]string, 0, len(g.options))
	for _, o := range g.options {
		style := lipgloss.NewStyle().Padding(0, 2).Foreground(colorSubtext0)
		if o.value == current {
			style = style.Foreground(colorPrimary).Bold(true).Underline(true)
			if g.focused {
				style = styleFocused.Padding(0, 2)
			}
		}
		tabs = append(tabs, style.Render(o.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// selected returns the option under the cursor.
func (g *choiceGroup) selected() string {
	if g.cursor < 0 || g.cursor >= len(g.options) {
		return ""
	}
	return g.options[g.cursor].value
}

// checkbox toggles a boolean field with space.
type checkbox struct {
	field   registration.Field
	label   string
	focused bool
}

func newCheckbox(field registration.Field, label string) *checkbox {
	return &checkbox{field: field, label: label}
}

func (c *checkbox) focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *checkbox) blur() { c.focused = false }
func (c *checkbox) setWidth(int) {}
func (c *checkbox) sync(registration.FormData) {}

func (c *checkbox) update(msg tea.Msg, p StepProps) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok && keyMsg.String() == "space" {
		checked := fieldValue(p.Data, c.field) == "true"
		p.Update(c.field, !checked)
	}
	return nil
}

func (c *checkbox) view(data registration.FormData) string {
	mark := "[ ]"
	style := lipgloss.NewStyle().Foreground(colorSubtext1)
	if fieldValue(data, c.field) == "true" {
		mark = "[x]"
		style = style.Foreground(colorSecondary)
	}
	if c.focused {
		style = style.Bold(true)
		mark = lipgloss.NewStyle().Foreground(colorPrimary).Render("›") + " " + mark
	} else {
		mark = "  " + mark
	}
	return style.Render(mark + " " + c.label)
}
