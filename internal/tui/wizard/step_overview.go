package wizard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/chamberhq/join/internal/registration"
)

// overviewSection is one block of the summary and the step its Edit
// button returns to.
type overviewSection struct {
	title  string
	target int
	fields []registration.Field
}

var overviewSections = []overviewSection{
	{
		title:  "Membership",
		target: 1,
		fields: []registration.Field{registration.FieldMembershipType},
	},
	{
		title:  "Basic Info",
		target: 2,
		fields: []registration.Field{
			registration.FieldCompanyName,
			registration.FieldRepEmail,
			registration.FieldRepMobile,
			registration.FieldTermsAgreed,
		},
	},
	{
		title:  "Company",
		target: 4,
		fields: []registration.Field{
			registration.FieldEstablishmentDate,
			registration.FieldCompanyEmail,
			registration.FieldCompanyContactMobile,
			registration.FieldCompanyWhatsapp,
			registration.FieldCompanyWebsite,
			registration.FieldCoverColor,
		},
	},
	{
		title:  "Representative",
		target: 5,
		fields: []registration.Field{
			registration.FieldRepName,
			registration.FieldRepDesignation,
			registration.FieldRepGender,
			registration.FieldRepDob,
			registration.FieldRepPersonalEmail,
			registration.FieldRepPersonalMobile,
			registration.FieldRepPersonalWebsite,
			registration.FieldRepMaritalStatus,
		},
	},
	{
		title:  "Business",
		target: 6,
		fields: []registration.Field{
			registration.FieldBusinessSegment,
			registration.FieldProductCategory,
			registration.FieldExportEnabled,
		},
	},
}

// OverviewStep shows everything entered so far, read-only, with a way back
// to each section.
type OverviewStep struct {
	ring  focusRing
	width int
}

// NewOverviewStep creates step 7.
func NewOverviewStep() *OverviewStep {
	return &OverviewStep{
		ring:  newFocusRing(len(overviewSections)),
		width: 60,
	}
}

func (s *OverviewStep) Init(registration.FormData) tea.Cmd {
	s.ring.first()
	return nil
}

func (s *OverviewStep) SetSize(width, _ int) { s.width = width }

func (s *OverviewStep) FocusFirst() tea.Cmd {
	s.ring.first()
	return nil
}

func (s *OverviewStep) FocusLast() tea.Cmd {
	s.ring.last()
	return nil
}

func (s *OverviewStep) FocusNext() (tea.Cmd, bool) { return nil, s.ring.next() }
func (s *OverviewStep) FocusPrev() (tea.Cmd, bool) { return nil, s.ring.prev() }
func (s *OverviewStep) Blur() { s.ring.clear() }

// Focus moves the Edit focus to section i.
func (s *OverviewStep) Focus(i int) {
	if i >= 0 && i < len(overviewSections) {
		s.ring.index = i
	}
}

// EditTargets maps section titles to the step their Edit button opens.
func EditTargets() map[string]int {
	out := make(map[string]int, len(overviewSections))
	for _, sec := range overviewSections {
		out[sec.title] = sec.target
	}
	return out
}

func (s *OverviewStep) Update(msg tea.Msg, p StepProps) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		s.ring.prev()
	case "down", "j":
		s.ring.next()
	case "enter", "e":
		if s.ring.index >= 0 {
			return p.GoTo(overviewSections[s.ring.index].target)
		}
	}
	return nil
}

func (s *OverviewStep) CanAdvance(registration.FormData) bool { return true }

func (s *OverviewStep) Buttons(registration.FormData) []Button {
	return CreateBackNextButtons(true, true, "Proceed to payment →")
}

func (s *OverviewStep) Hints() []string {
	return []string{"↑↓", "section", "enter", "edit", "tab", "buttons", "esc", "back"}
}

// displayValue formats a field for the summary.
func displayValue(data registration.FormData, field registration.Field) string {
	switch field {
	case registration.FieldMembershipType:
		return data.MembershipType.Label()
	case registration.FieldTermsAgreed:
		if data.TermsAgreed {
			return "Yes"
		}
		return "No"
	case registration.FieldCoverColor:
		return data.CoverColor.Label()
	case registration.FieldRepGender:
		return data.RepGender.Label()
	case registration.FieldBusinessSegment:
		return data.BusinessSegment.Label()
	case registration.FieldExportEnabled:
		return data.ExportEnabled.Label()
	}
	return fieldValue(data, field)
}

// missingRequired lists labels of required fields left empty.
func missingRequired(data registration.FormData) []string {
	var out []string
	if data.MembershipType == "" {
		out = append(out, registration.FieldMembershipType.Label())
	}
	for _, section := range []registration.Section{
		registration.SectionBasicInfo,
		registration.SectionCompanyInfo,
		registration.SectionPersonalInfo,
	} {
		for _, issue := range registration.Check(section, data) {
			if issue.Tag == "required" {
				out = append(out, issue.Field.Label())
			}
		}
	}
	if data.BusinessSegment == "" {
		out = append(out, registration.FieldBusinessSegment.Label())
	}
	return out
}

func (s *OverviewStep) View(data registration.FormData) string {
	labelWidth := 0
	for _, sec := range overviewSections {
		for _, f := range sec.fields {
			labelWidth = max(labelWidth, lipgloss.Width(f.Label()))
		}
	}
	labelStyle := styleLabel.Width(labelWidth + 2)
	valueStyle := styleText
	emptyStyle := styleMuted

	blocks := make([]string, 0, len(overviewSections)+1)
	for i, sec := range overviewSections {
		edit := styleMuted.Render("[ Edit ]")
		if i == s.ring.index {
			edit = styleFocused.Render("[ Edit ]")
		}

		var b strings.Builder
		b.WriteString(renderSection(sec.title) + "  " + edit)
		for _, f := range sec.fields {
			value := displayValue(data, f)
			rendered := valueStyle.Render(value)
			if value == "" {
				rendered = emptyStyle.Render("—")
			}
			b.WriteString("\n" + labelStyle.Render(f.Label()) + rendered)
		}
		blocks = append(blocks, b.String())
	}

	if missing := missingRequired(data); len(missing) > 0 {
		blocks = append(blocks, styleIssue.Render(fmt.Sprintf(
			"%d required field(s) still empty: %s", len(missing), strings.Join(missing, ", "))))
	}
	return strings.Join(blocks, "\n\n")
}

var _ Step = (*OverviewStep)(nil)
