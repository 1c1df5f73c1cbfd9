package wizard

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/chamberhq/join/internal/registration"
)

// BasicInfoStep collects the account details and the terms agreement.
type BasicInfoStep struct {
	formStep
	password     *textField
	confirm      *textField
	showPassword bool

	showTerms     bool
	terms         viewport.Model
	termsRendered int // width the terms were last rendered at
	width         int
	height        int
}

// NewBasicInfoStep creates step 2.
func NewBasicInfoStep() *BasicInfoStep {
	password := newTextField(registration.FieldPassword, "At least 8 characters", true)
	confirm := newTextField(registration.FieldConfirmPassword, "Repeat the password", true)
	password.setMasked(true)
	confirm.setMasked(true)

	f := newForm(
		newTextField(registration.FieldCompanyName, "Registered company name", true),
		newTextField(registration.FieldRepEmail, "name@company.com", true),
		newTextField(registration.FieldRepMobile, "+8801XXXXXXXXX", true),
		password,
		confirm,
		newCheckbox(registration.FieldTermsAgreed, "I agree to the membership terms & conditions"),
	)

	terms := viewport.New(
		viewport.WithWidth(60),
		viewport.WithHeight(10),
	)
	terms.MouseWheelEnabled = true
	terms.MouseWheelDelta = 3

	return &BasicInfoStep{
		formStep: formStep{form: f},
		password: password,
		confirm:  confirm,
		terms:    terms,
		width:    60,
		height:   20,
	}
}

// SetSize updates the dimensions for the form and the terms viewer.
func (s *BasicInfoStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.form.setWidth(width)
	s.terms.SetWidth(width)
	s.terms.SetHeight(max(3, height-2))
	if s.showTerms && s.termsRendered != width {
		s.renderTerms()
	}
}

func (s *BasicInfoStep) renderTerms() {
	s.terms.SetContent(renderMarkdown(termsMarkdown, s.width))
	s.termsRendered = s.width
}

// Modal reports whether the terms viewer is open.
func (s *BasicInfoStep) Modal() bool { return s.showTerms }

// PasswordVisible reports whether passwords are shown in clear text.
func (s *BasicInfoStep) PasswordVisible() bool { return s.showPassword }

func (s *BasicInfoStep) toggleTerms() {
	s.showTerms = !s.showTerms
	if s.showTerms {
		if s.termsRendered != s.width {
			s.renderTerms()
		}
		s.terms.GotoTop()
	}
}

func (s *BasicInfoStep) Update(msg tea.Msg, p StepProps) tea.Cmd {
	if s.showTerms {
		if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
			switch keyMsg.String() {
			case "esc", "q", "ctrl+t":
				s.toggleTerms()
				return nil
			case "space":
				p.Update(registration.FieldTermsAgreed, true)
				s.toggleTerms()
				return nil
			}
		}
		var cmd tea.Cmd
		s.terms, cmd = s.terms.Update(msg)
		return cmd
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "ctrl+r":
			s.showPassword = !s.showPassword
			s.password.setMasked(!s.showPassword)
			s.confirm.setMasked(!s.showPassword)
			return nil
		case "ctrl+t":
			s.toggleTerms()
			return nil
		}
	}
	return s.form.update(msg, p)
}

// CanAdvance is gated on the terms agreement only.
func (s *BasicInfoStep) CanAdvance(data registration.FormData) bool {
	return data.TermsAgreed
}

func (s *BasicInfoStep) Buttons(data registration.FormData) []Button {
	return CreateBackNextButtons(true, s.CanAdvance(data), "Next →")
}

func (s *BasicInfoStep) Hints() []string {
	if s.showTerms {
		return []string{"↑↓", "scroll", "space", "agree & close", "esc", "close"}
	}
	return []string{"tab", "next field", "space", "toggle", "ctrl+r", "show password", "ctrl+t", "read terms", "esc", "back"}
}

func (s *BasicInfoStep) View(data registration.FormData) string {
	if s.showTerms {
		return renderSection("Terms & Conditions") + "\n\n" + s.terms.View()
	}

	out := s.form.view(data)
	if !data.TermsAgreed {
		out += "\n" + styleLabel.Render("    Press ctrl+t to read the terms before agreeing.")
	}
	if issues := renderIssues(issueMessages(registration.SectionBasicInfo, data)); issues != "" {
		out += "\n\n" + issues
	}
	return out
}

var _ Step = (*BasicInfoStep)(nil)
