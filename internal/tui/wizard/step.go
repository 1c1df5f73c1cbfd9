package wizard

import (
	tea "charm.land/bubbletea/v2"
	"github.com/chamberhq/join/internal/registration"
)

// StepProps is what a step sees of the controller. Data is a snapshot
// taken when the message arrived; Update, Next, Back and GoTo go straight
// to the controller.
type StepProps struct {
	Data   registration.FormData
	Update func(field registration.Field, value any)
	Next   func() tea.Cmd
	Back   func() tea.Cmd
	GoTo   func(step int) tea.Cmd
}

// Step is one page of the wizard. Steps keep only ephemeral UI state;
// everything the applicant enters goes through StepProps.Update.
type Step interface {
	// Init syncs inputs from data and focuses the first input.
	Init(data registration.FormData) tea.Cmd
	Update(msg tea.Msg, p StepProps) tea.Cmd
	View(data registration.FormData) string
	SetSize(width, height int)

	FocusFirst() tea.Cmd
	FocusLast() tea.Cmd
	// FocusNext and FocusPrev return false when focus would leave the
	// step, so the wizard can hand it to the button bar.
	FocusNext() (tea.Cmd, bool)
	FocusPrev() (tea.Cmd, bool)
	Blur()

	CanAdvance(data registration.FormData) bool
	Buttons(data registration.FormData) []Button
}

// modalStep is implemented by steps that sometimes need every key, such as
// an open terms viewer or the payment success screen.
type modalStep interface {
	Modal() bool
}

// hintedStep lets a step replace the default hint bar.
type hintedStep interface {
	Hints() []string
}

// stepNames are the sidebar and header titles, indexed by step-1.
var stepNames = [LastStep]string{
	"Membership",
	"Basic Info",
	"Verification",
	"Company Info",
	"Personal Info",
	"Business Info",
	"Overview",
	"Payment",
}

// StepName returns the title of step n, or "" when out of range.
func StepName(n int) string {
	if n < FirstStep || n > LastStep {
		return ""
	}
	return stepNames[n-1]
}

// formStep implements the focus half of Step for steps built from a form.
type formStep struct {
	form *form
}

func (s *formStep) FocusFirst() tea.Cmd { return s.form.focusFirst() }
func (s *formStep) FocusLast() tea.Cmd { return s.form.focusLast() }
func (s *formStep) FocusNext() (tea.Cmd, bool) { return s.form.focusNext() }
func (s *formStep) FocusPrev() (tea.Cmd, bool) { return s.form.focusPrev() }
func (s *formStep) Blur() { s.form.blur() }
func (s *formStep) SetSize(width, height int) { s.form.setWidth(width) }
func (s *formStep) CanAdvance(registration.FormData) bool { return true }

func (s *formStep) Init(data registration.FormData) tea.Cmd {
	s.form.sync(data)
	return s.form.focusFirst()
}

func (s *formStep) Update(msg tea.Msg, p StepProps) tea.Cmd {
	return s.form.update(msg, p)
}

// issueMessages runs the advisory checks for a section, hiding "is
// required" noise for fields the applicant has not reached yet.
func issueMessages(section registration.Section, data registration.FormData) []string {
	var out []string
	for _, issue := range registration.Check(section, data) {
		if issue.Tag == "required" {
			continue
		}
		out = append(out, issue.Message)
	}
	return out
}
