package wizard

import "github.com/chamberhq/join/internal/registration"

// MembershipStep asks which membership tier the applicant wants.
type MembershipStep struct {
	formStep
	list *choiceGroup
}

// NewMembershipStep creates step 1.
func NewMembershipStep() *MembershipStep {
	options := make([]choice, 0, len(registration.MembershipTypes))
	for _, m := range registration.MembershipTypes {
		options = append(options, choice{
			value: string(m),
			label: m.Label(),
			hint:  m.Description() + " · " + registration.FormatFee(m.Fee()),
		})
	}
	list := newChoiceGroup(registration.FieldMembershipType, layoutList, true, options)
	return &MembershipStep{
		formStep: formStep{form: newForm(list)},
		list:     list,
	}
}

// CanAdvance requires a selected tier.
func (s *MembershipStep) CanAdvance(data registration.FormData) bool {
	return data.MembershipType != ""
}

func (s *MembershipStep) Buttons(data registration.FormData) []Button {
	return CreateBackNextButtons(false, s.CanAdvance(data), "Next →")
}

func (s *MembershipStep) Hints() []string {
	return []string{"↑↓", "navigate", "enter", "select", "tab", "buttons", "esc", "cancel"}
}

func (s *MembershipStep) View(data registration.FormData) string {
	return styleLabel.Render("Choose the membership that fits your organization.") +
		"\n\n" + s.form.view(data)
}

var _ Step = (*MembershipStep)(nil)

