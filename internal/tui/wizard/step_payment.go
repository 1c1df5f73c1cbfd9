package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/chamberhq/join/internal/registration"
)

// ConfirmFunc turns the confirmed form into an application and returns the
// command that submits it.
type ConfirmFunc func(data registration.FormData) (registration.Application, tea.Cmd)

// PaymentStep picks a payment method and confirms payment. Confirmation
// always succeeds; after it only a reload is possible.
type PaymentStep struct {
	formStep
	tabs     *choiceGroup
	subforms map[registration.PaymentMethod][]control
	method   registration.PaymentMethod

	showSuccess bool
	receipt     registration.Application
	width       int

	onConfirm ConfirmFunc
	onReload  func() tea.Cmd
}

// NewPaymentStep creates step 8. onConfirm runs when Confirm & Pay is
// pressed and onReload when the applicant starts over.
func NewPaymentStep(onConfirm ConfirmFunc, onReload func() tea.Cmd) *PaymentStep {
	methods := make([]choice, 0, len(registration.PaymentMethods))
	for _, m := range registration.PaymentMethods {
		methods = append(methods, choice{value: string(m), label: m.Label()})
	}

	s := &PaymentStep{
		tabs: newChoiceGroup(registration.FieldPaymentMethod, layoutTabs, true, methods),
		subforms: map[registration.PaymentMethod][]control{
			registration.PaymentCard: {
				newLocalField("Card number", "XXXX XXXX XXXX XXXX"),
				newLocalField("Name on card", "As printed on the card"),
				newLocalField("Expiry", "MM/YY"),
				newLocalField("CVC", "3 digits"),
			},
			registration.PaymentMFS: {
				newLocalField("Wallet number", "+8801XXXXXXXXX"),
				newLocalField("Transaction ID", "From the bKash / Nagad / Rocket receipt"),
			},
		},
		width:     60,
		onConfirm: onConfirm,
		onReload:  onReload,
	}
	s.switchTo(registration.PaymentCard)
	return s
}

// switchTo rebuilds the form for method, keeping the tab strip first.
func (s *PaymentStep) switchTo(method registration.PaymentMethod) {
	s.method = method
	controls := append([]control{s.tabs}, s.subforms[method]...)
	focused := s.form != nil && s.form.focused() == control(s.tabs)
	s.form = newForm(controls...)
	s.form.setWidth(s.width)
	if focused {
		s.form.ring.index = 0
		s.tabs.focus()
	}
}

func (s *PaymentStep) Init(data registration.FormData) tea.Cmd {
	s.tabs.sync(data)
	if data.PaymentMethod != s.method {
		s.switchTo(data.PaymentMethod)
	}
	return s.form.focusFirst()
}

func (s *PaymentStep) SetSize(width, _ int) {
	s.width = width
	s.form.setWidth(width)
}

// Modal reports whether the success screen is showing.
func (s *PaymentStep) Modal() bool { return s.showSuccess }

// Succeeded reports whether payment was confirmed.
func (s *PaymentStep) Succeeded() bool { return s.showSuccess }

// Method returns the payment method whose sub-form is showing.
func (s *PaymentStep) Method() registration.PaymentMethod { return s.method }

func (s *PaymentStep) confirm(p StepProps) tea.Cmd {
	s.showSuccess = true
	s.form.blur()
	if s.onConfirm == nil {
		return nil
	}
	app, cmd := s.onConfirm(p.Data)
	s.receipt = app
	return cmd
}

func (s *PaymentStep) reload() tea.Cmd {
	if s.onReload == nil {
		return nil
	}
	return s.onReload()
}

func (s *PaymentStep) Update(msg tea.Msg, p StepProps) tea.Cmd {
	if s.showSuccess {
		if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
			switch keyMsg.String() {
			case "r", "enter":
				return s.reload()
			}
		}
		return nil
	}

	cmd := s.form.update(msg, p)
	if m := registration.PaymentMethod(s.tabs.selected()); s.form.focused() == control(s.tabs) && m != s.method {
		s.switchTo(m)
	}
	return cmd
}

func (s *PaymentStep) FocusFirst() tea.Cmd {
	if s.showSuccess {
		return nil
	}
	return s.form.focusFirst()
}

func (s *PaymentStep) FocusLast() tea.Cmd {
	if s.showSuccess {
		return nil
	}
	return s.form.focusLast()
}

func (s *PaymentStep) CanAdvance(registration.FormData) bool { return !s.showSuccess }

func (s *PaymentStep) Buttons(registration.FormData) []Button {
	if s.showSuccess {
		return []Button{{
			Label: "Start a new application",
			State: ButtonNormal,
			Press: func(StepProps) tea.Cmd { return s.reload() },
		}}
	}
	return []Button{
		backButton(true),
		{
			Label: "Confirm & Pay",
			State: ButtonNormal,
			Press: s.confirm,
		},
	}
}

func (s *PaymentStep) Hints() []string {
	if s.showSuccess {
		return []string{"r", "start a new application", "ctrl+c", "quit"}
	}
	return []string{"←→", "payment method", "tab", "next field", "esc", "back"}
}

func (s *PaymentStep) View(data registration.FormData) string {
	if s.showSuccess {
		return s.successView(data)
	}

	var b strings.Builder
	b.WriteString(s.tabs.view(data))
	b.WriteString("\n\n")

	if data.MembershipType == "" {
		b.WriteString(styleError.Render("No membership selected. Go back to step 1 to see the fee."))
	} else {
		b.WriteString(styleLabel.Render("Amount due  "))
		b.WriteString(styleModalTitle.Render(registration.FormatFee(data.MembershipType.Fee())))
		b.WriteString(styleLabel.Render("  (" + data.MembershipType.Label() + ")"))
	}
	b.WriteString("\n\n")

	switch s.method {
	case registration.PaymentBank:
		b.WriteString(renderSection("Bank transfer details") + "\n")
		b.WriteString(styleLabel.Render(strings.Join([]string{
			"Account name    Chamber of Commerce & Industry",
			"Account number  0123 4567 8901",
			"Bank            Sonali Bank PLC, Motijheel Branch",
			"Routing number  200271234",
			"Use your company name as the payment reference.",
		}, "\n")))
	case registration.PaymentCash:
		b.WriteString(renderSection("Pay at the front desk") + "\n")
		b.WriteString(styleLabel.Render("Pay in cash at the chamber office, Sunday to Thursday, 10am to 4pm.\nYour membership is activated once the receipt is issued."))
	default:
		controls := s.subforms[s.method]
		parts := make([]string, 0, len(controls))
		for _, c := range controls {
			parts = append(parts, c.view(data))
		}
		b.WriteString(strings.Join(parts, "\n\n"))
	}
	return b.String()
}

func (s *PaymentStep) successView(data registration.FormData) string {
	name := data.CompanyName
	if strings.TrimSpace(name) == "" {
		name = "applicant"
	}
	lines := []string{
		styles().Success.Render("✓ Payment confirmed"),
		"",
		styleText.Render(fmt.Sprintf("Thank you, %s. Your application has been received.", name)),
	}
	if s.receipt.Reference != "" {
		lines = append(lines, styleLabel.Render(fmt.Sprintf("Reference  %s", s.receipt.Reference)))
		lines = append(lines, styleLabel.Render(fmt.Sprintf("Amount     %s via %s",
			registration.FormatFee(s.receipt.Fee), s.receipt.Form.PaymentMethod.Label())))
	}
	lines = append(lines, "", styleLabel.Render("Press r to start a new application."))
	return lipgloss.NewStyle().Width(s.width).Align(lipgloss.Center).Render(strings.Join(lines, "\n"))
}

var _ Step = (*PaymentStep)(nil)
