package wizard

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/chamberhq/join/internal/registration"
	"github.com/chamberhq/join/internal/tui/testfixtures"
	"github.com/stretchr/testify/require"
)

// recorder builds StepProps that apply updates to a local form, the way
// the wizard applies them to its controller.
type recorder struct {
	data    registration.FormData
	updates int
	steps   []int
}

func newRecorder(data registration.FormData) *recorder {
	return &recorder{data: data}
}

func (r *recorder) props() StepProps {
	return StepProps{
		Data: r.data,
		Update: func(field registration.Field, value any) {
			d, err := r.data.With(field, value)
			if err == nil {
				r.data = d
				r.updates++
			}
		},
		Next: func() tea.Cmd { r.steps = append(r.steps, +1); return nil },
		Back: func() tea.Cmd { r.steps = append(r.steps, -1); return nil },
		GoTo: func(step int) tea.Cmd { r.steps = append(r.steps, step*100); return nil },
	}
}

// press sends keys to a single control.
func (r *recorder) press(c control, keys ...string) {
	for _, k := range keys {
		c.update(testfixtures.Key(k), r.props())
	}
}

func TestFocusRing(t *testing.T) {
	t.Parallel()

	r := newFocusRing(3)
	require.Equal(t, -1, r.index)
	require.False(t, r.prev())
	require.True(t, r.first())
	require.True(t, r.next())
	require.True(t, r.next())
	require.False(t, r.next())
	require.Equal(t, 2, r.index)
	require.True(t, r.prev())
	require.Equal(t, 1, r.index)
	r.clear()
	require.Equal(t, -1, r.index)

	empty := newFocusRing(0)
	require.False(t, empty.first())
	require.False(t, empty.last())
}

func TestTextField_UpdatesForm(t *testing.T) {
	t.Parallel()

	rec := newRecorder(registration.New())
	f := newTextField(registration.FieldCompanyName, "", true)
	f.focus()

	for _, k := range testfixtures.Type("Acme Ltd") {
		f.update(k, rec.props())
	}
	require.Equal(t, "Acme Ltd", rec.data.CompanyName)

	f.update(testfixtures.Key("backspace"), rec.props())
	require.Equal(t, "Acme Lt", rec.data.CompanyName)

	// Keys that do not change the value do not produce updates.
	n := rec.updates
	f.update(testfixtures.Key("left"), rec.props())
	require.Equal(t, n, rec.updates)
}

func TestTextField_SyncAndLocal(t *testing.T) {
	t.Parallel()

	d := registration.New()
	d.RepEmail = "a@b.example"
	f := newTextField(registration.FieldRepEmail, "", true)
	f.sync(d)
	require.Equal(t, "a@b.example", f.input.Value())

	rec := newRecorder(registration.New())
	local := newLocalField("Card number", "")
	local.focus()
	for _, k := range testfixtures.Type("4242") {
		local.update(k, rec.props())
	}
	require.Equal(t, "4242", local.input.Value())
	require.Zero(t, rec.updates, "local fields never touch the form")
	local.sync(d)
	require.Equal(t, "4242", local.input.Value())
}

func TestChoiceGroup_Radio(t *testing.T) {
	t.Parallel()

	rec := newRecorder(registration.New())
	g := newChoiceGroup(registration.FieldRepGender, layoutInline, false, []choice{
		{value: "male", label: "Male"},
		{value: "female", label: "Female"},
		{value: "other", label: "Other"},
	})
	g.focus()

	rec.press(g, "right", "right", "right")
	require.Empty(t, rec.data.RepGender, "moving the cursor does not select")
	rec.press(g, "space")
	require.Equal(t, registration.GenderOther, rec.data.RepGender)

	rec.press(g, "left", "enter")
	require.Equal(t, registration.GenderFemale, rec.data.RepGender)

	out := testfixtures.Plain(g.view(rec.data))
	require.Contains(t, out, "(●) Female")
	require.Contains(t, out, "( ) Male")
}

func TestChoiceGroup_Select(t *testing.T) {
	t.Parallel()

	rec := newRecorder(registration.New())
	g := newChoiceGroup(registration.FieldRepMaritalStatus, layoutSelect, false, stringChoices(registration.MaritalStatuses))
	g.focus()
	require.Contains(t, testfixtures.Plain(g.view(rec.data)), "Select an option")

	rec.press(g, "right")
	require.Equal(t, "Single", rec.data.RepMaritalStatus)
	rec.press(g, "right")
	require.Equal(t, "Married", rec.data.RepMaritalStatus)
	rec.press(g, "left", "left")
	require.Equal(t, "Prefer not to say", rec.data.RepMaritalStatus, "wraps around")
}

func TestCheckbox(t *testing.T) {
	t.Parallel()

	rec := newRecorder(registration.New())
	c := newCheckbox(registration.FieldTermsAgreed, "I agree")
	c.focus()

	rec.press(c, "x", "enter")
	require.False(t, rec.data.TermsAgreed)
	rec.press(c, "space")
	require.True(t, rec.data.TermsAgreed)
	require.Contains(t, testfixtures.Plain(c.view(rec.data)), "[x] I agree")
	rec.press(c, "space")
	require.False(t, rec.data.TermsAgreed)
}

func TestForm_FocusTraversal(t *testing.T) {
	t.Parallel()

	a := newTextField(registration.FieldRepName, "", true)
	b := newCheckbox(registration.FieldSameAsHead, "same")
	f := newForm(a, b)

	f.focusFirst()
	require.True(t, a.input.Focused())

	_, ok := f.focusNext()
	require.True(t, ok)
	require.False(t, a.input.Focused())
	require.True(t, b.focused)

	_, ok = f.focusNext()
	require.False(t, ok, "leaving the form is reported, not performed")
	require.True(t, b.focused)

	f.blur()
	require.False(t, b.focused)
	require.Nil(t, f.focused())

	f.focusLast()
	require.True(t, b.focused)
	_, ok = f.focusPrev()
	require.True(t, ok)
	require.True(t, a.input.Focused())
}
