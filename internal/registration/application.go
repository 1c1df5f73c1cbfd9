package registration

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Application is a completed form ready to hand off after payment
// confirmation. Credentials and the verification code are never included
// (see the json tags on FormData).
type Application struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	SubmittedAt time.Time `json:"submitted_at"`
	Fee         int       `json:"fee"`
	Form        FormData  `json:"form"`
}

// NewApplication snapshots d into an Application.
func NewApplication(d FormData, now time.Time) Application {
	d.Password = ""
	d.ConfirmPassword = ""
	d.OTP = OTP{}
	return Application{
		ID:          uuid.NewString(),
		Reference:   Reference(d.CompanyName),
		SubmittedAt: now.UTC(),
		Fee:         d.MembershipType.Fee(),
		Form:        d,
	}
}

// Reference derives a subject-safe reference from the company name.
func Reference(companyName string) string {
	ref := slug.Make(companyName)
	if ref == "" {
		return "unnamed-applicant"
	}
	return ref
}

// Markdown renders a short human summary of the application.
func (a Application) Markdown() string {
	f := a.Form
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", orDash(f.CompanyName))
	fmt.Fprintf(&b, "_%s_ · reference `%s` · %s\n\n", a.ID, a.Reference, a.SubmittedAt.Format(time.RFC1123))

	row := func(field Field, value string) {
		fmt.Fprintf(&b, "- **%s:** %s\n", field.Label(), orDash(value))
	}

	b.WriteString("## Membership\n\n")
	row(FieldMembershipType, f.MembershipType.Label())
	fmt.Fprintf(&b, "- **Fee:** %s\n", FormatFee(a.Fee))
	row(FieldPaymentMethod, f.PaymentMethod.Label())

	b.WriteString("\n## Company\n\n")
	row(FieldCompanyEmail, f.CompanyEmail)
	row(FieldCompanyContactMobile, f.CompanyContactMobile)
	row(FieldCompanyWebsite, f.CompanyWebsite)
	row(FieldEstablishmentDate, f.EstablishmentDate)

	b.WriteString("\n## Representative\n\n")
	row(FieldRepName, f.RepName)
	row(FieldRepDesignation, f.RepDesignation)
	row(FieldRepEmail, f.RepEmail)
	row(FieldRepMobile, f.RepMobile)

	b.WriteString("\n## Business\n\n")
	row(FieldBusinessSegment, f.BusinessSegment.Label())
	row(FieldProductCategory, f.ProductCategory)
	row(FieldExportEnabled, f.ExportEnabled.Label())

	return b.String()
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
