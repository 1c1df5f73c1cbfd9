package wizard

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/chamberhq/join/internal/registration"
)

// otpInput edits the six verification code boxes.
type otpInput struct {
	index   int
	focused bool
}

func (o *otpInput) focus() tea.Cmd {
	o.focused = true
	return nil
}

func (o *otpInput) blur() { o.focused = false }
func (o *otpInput) setWidth(int) {}
func (o *otpInput) sync(registration.FormData) {}

func (o *otpInput) update(msg tea.Msg, p StepProps) tea.Cmd {
	switch msg := msg.(type) {
	case tea.PasteMsg:
		o.paste(msg.Content, p)
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left":
			o.index = max(0, o.index-1)
		case "right":
			o.index = min(registration.OTPLength-1, o.index+1)
		case "backspace":
			o.erase(p)
		default:
			o.typeDigit(msg.Text, p)
		}
	}
	return nil
}

func (o *otpInput) typeDigit(s string, p StepProps) {
	if !registration.IsDigit(s) {
		return
	}
	otp, ok := p.Data.OTP.Set(o.index, s)
	if !ok {
		return
	}
	p.Update(registration.FieldOTP, otp)
	if o.index < registration.OTPLength-1 {
		o.index++
	}
}

func (o *otpInput) erase(p StepProps) {
	otp := p.Data.OTP
	if otp[o.index] == "" && o.index > 0 {
		o.index--
	}
	if otp[o.index] == "" {
		return
	}
	otp[o.index] = ""
	p.Update(registration.FieldOTP, otp)
}

// paste fills boxes from the focused one onward. Once terminal escapes
// are stripped, anything other than a run of digits is ignored.
func (o *otpInput) paste(content string, p StepProps) {
	content = strings.TrimSpace(sanitizePaste(content))
	if content == "" {
		return
	}
	for _, r := range content {
		if !registration.IsDigit(string(r)) {
			return
		}
	}

	otp := p.Data.OTP
	i := o.index
	for _, r := range content {
		if i >= registration.OTPLength {
			break
		}
		otp[i] = string(r)
		i++
	}
	p.Update(registration.FieldOTP, otp)
	o.index = min(i, registration.OTPLength-1)
}

func (o *otpInput) view(data registration.FormData) string {
	boxes := make([]string, 0, registration.OTPLength)
	for i, digit := range data.OTP {
		border := colorSurface2
		if o.focused && i == o.index {
			border = colorBorderFocused
		}
		if digit == "" {
			digit = " "
		}
		boxes = append(boxes, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(colorText).
			Bold(true).
			Padding(0, 1).
			MarginRight(1).
			Render(digit))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// VerificationStep asks for the code sent to the representative's phone.
// No code is actually sent or checked.
type VerificationStep struct {
	formStep
	otp *otpInput
}

// NewVerificationStep creates step 3.
func NewVerificationStep() *VerificationStep {
	otp := &otpInput{}
	return &VerificationStep{
		formStep: formStep{form: newForm(otp)},
		otp:      otp,
	}
}

// Init focuses the first empty box.
func (s *VerificationStep) Init(data registration.FormData) tea.Cmd {
	s.otp.index = 0
	for i, digit := range data.OTP {
		if digit == "" {
			s.otp.index = i
			break
		}
	}
	return s.form.focusFirst()
}

// FocusIndex returns the focused box.
func (s *VerificationStep) FocusIndex() int { return s.otp.index }

// CanAdvance requires all six digits.
func (s *VerificationStep) CanAdvance(data registration.FormData) bool {
	return data.OTP.Complete()
}

func (s *VerificationStep) Buttons(data registration.FormData) []Button {
	return []Button{
		backButton(true),
		{
			Label: "Skip to payment",
			State: ButtonNormal,
			Press: func(p StepProps) tea.Cmd { return p.GoTo(LastStep) },
		},
		nextButton("Verify", s.CanAdvance(data)),
	}
}

func (s *VerificationStep) Hints() []string {
	return []string{"0-9", "enter digit", "←→", "move", "backspace", "clear", "tab", "buttons", "esc", "back"}
}

func (s *VerificationStep) View(data registration.FormData) string {
	target := data.RepMobile
	if target == "" {
		target = "your mobile number"
	}
	var b strings.Builder
	b.WriteString(styleLabel.Render("Enter the 6-digit code sent to " + target + "."))
	b.WriteString("\n\n")
	b.WriteString(s.otp.view(data))
	b.WriteString("\n\n")
	if data.OTP.Complete() {
		b.WriteString(styles().Success.Render("Code complete. Press Verify to continue."))
	} else {
		b.WriteString(styleLabel.Render("Didn't get a code? You can skip to payment and verify later."))
	}
	return b.String()
}

var _ Step = (*VerificationStep)(nil)
