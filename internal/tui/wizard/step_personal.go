package wizard

import "github.com/chamberhq/join/internal/registration"

// PersonalStep collects the representative's profile. The "same as
// organization head" box is recorded as given; it does not copy anything.
type PersonalStep struct {
	formStep
}

// NewPersonalStep creates step 5.
func NewPersonalStep() *PersonalStep {
	genders := make([]choice, 0, len(registration.Genders))
	for _, g := range registration.Genders {
		genders = append(genders, choice{value: string(g), label: g.Label()})
	}

	return &PersonalStep{formStep: formStep{form: newForm(
		newCheckbox(registration.FieldSameAsHead, "Representative is the organization head"),
		newTextField(registration.FieldRepName, "Full name as on NID", true),
		newTextField(registration.FieldRepDesignation, "e.g. Managing Director", true),
		newChoiceGroup(registration.FieldRepGender, layoutInline, false, genders),
		newTextField(registration.FieldRepDob, "YYYY-MM-DD", false),
		newTextField(registration.FieldRepPersonalEmail, "name@mail.com", false),
		newTextField(registration.FieldRepPersonalMobile, "+8801XXXXXXXXX", false),
		newTextField(registration.FieldRepPersonalWebsite, "https://", false),
		newChoiceGroup(registration.FieldRepMaritalStatus, layoutSelect, false, stringChoices(registration.MaritalStatuses)),
	)}}
}

func (s *PersonalStep) Buttons(registration.FormData) []Button {
	return CreateBackNextButtons(true, true, "Next →")
}

func (s *PersonalStep) View(data registration.FormData) string {
	out := s.form.view(data)
	if issues := renderIssues(issueMessages(registration.SectionPersonalInfo, data)); issues != "" {
		out += "\n\n" + issues
	}
	return out
}

var _ Step = (*PersonalStep)(nil)
