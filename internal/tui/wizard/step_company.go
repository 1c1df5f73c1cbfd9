package wizard

import (
	"charm.land/lipgloss/v2"
	"github.com/chamberhq/join/internal/registration"
)

// CompanyStep collects the company profile.
type CompanyStep struct {
	formStep
}

// NewCompanyStep creates step 4.
func NewCompanyStep() *CompanyStep {
	swatches := make([]choice, 0, len(registration.CoverColors))
	for _, c := range registration.CoverColors {
		swatches = append(swatches, choice{value: string(c), label: c.Label(), swatch: c.Hex()})
	}

	return &CompanyStep{formStep: formStep{form: newForm(
		newTextField(registration.FieldEstablishmentDate, "YYYY-MM-DD", false),
		newTextField(registration.FieldCompanyEmail, "info@company.com", true),
		newTextField(registration.FieldCompanyContactMobile, "+8802XXXXXXXX", true),
		newTextField(registration.FieldCompanyWhatsapp, "+8801XXXXXXXXX", false),
		newTextField(registration.FieldCompanyWebsite, "https://company.com", false),
		newChoiceGroup(registration.FieldCoverColor, layoutInline, false, swatches),
	)}}
}

func (s *CompanyStep) Buttons(registration.FormData) []Button {
	return CreateBackNextButtons(true, true, "Next →")
}

// logoDropZone is drawn for parity with the web form; files cannot be
// attached from the terminal.
func logoDropZone(data registration.FormData, width int) string {
	text := "Company logo\nUploads are not available at the kiosk.\nBring a PNG or SVG to the front desk."
	if data.CompanyLogo != "" {
		text = "Company logo\n" + data.CompanyLogo
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(data.CoverColor.Hex())).
		Foreground(colorSubtext0).
		Align(lipgloss.Center).
		Width(max(20, min(width, 60))).
		Render(text)
}

func (s *CompanyStep) View(data registration.FormData) string {
	out := logoDropZone(data, s.form.width) + "\n\n" + s.form.view(data)
	if issues := renderIssues(issueMessages(registration.SectionCompanyInfo, data)); issues != "" {
		out += "\n\n" + issues
	}
	return out
}

var _ Step = (*CompanyStep)(nil)
