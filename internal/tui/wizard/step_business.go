package wizard

import "github.com/chamberhq/join/internal/registration"

// BusinessStep collects the line of business.
type BusinessStep struct {
	formStep
}

// NewBusinessStep creates step 6.
func NewBusinessStep() *BusinessStep {
	segments := make([]choice, 0, len(registration.BusinessSegments))
	for _, seg := range registration.BusinessSegments {
		segments = append(segments, choice{value: string(seg), label: seg.Label()})
	}
	exports := make([]choice, 0, len(registration.ExportOptions))
	for _, e := range registration.ExportOptions {
		exports = append(exports, choice{value: string(e), label: e.Label()})
	}

	return &BusinessStep{formStep: formStep{form: newForm(
		newChoiceGroup(registration.FieldBusinessSegment, layoutList, true, segments),
		newChoiceGroup(registration.FieldProductCategory, layoutSelect, false, stringChoices(registration.ProductCategories)),
		newChoiceGroup(registration.FieldExportEnabled, layoutInline, false, exports),
	)}}
}

func (s *BusinessStep) Buttons(registration.FormData) []Button {
	return CreateBackNextButtons(true, true, "Review →")
}

func (s *BusinessStep) Hints() []string {
	return []string{"↑↓", "choose", "space", "select", "←→", "change category", "tab", "next", "esc", "back"}
}

func (s *BusinessStep) View(data registration.FormData) string {
	return s.form.view(data)
}

var _ Step = (*BusinessStep)(nil)
