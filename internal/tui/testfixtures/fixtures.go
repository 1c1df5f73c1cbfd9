package testfixtures

import (
	"time"

	"github.com/chamberhq/join/internal/registration"
)

// Fixed test values for consistent output
const (
	FixedCompanyName = "Acme Trading Ltd"
	FixedRepEmail    = "rahim@acme.example"
	FixedRepMobile   = "+8801711000000"
	FixedPassword    = "correct-horse"
)

var (
	FixedTime = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)
	FixedOTP  = registration.OTP{"1", "2", "3", "4", "5", "6"}
)

// EmptyForm returns a freshly created form with defaults applied.
func EmptyForm() registration.FormData {
	return registration.New()
}

// BasicInfoForm returns a form filled through the basic info step.
func BasicInfoForm() registration.FormData {
	d := registration.New()
	d.MembershipType = registration.MembershipCorporate
	d.CompanyName = FixedCompanyName
	d.RepEmail = FixedRepEmail
	d.RepMobile = FixedRepMobile
	d.Password = FixedPassword
	d.ConfirmPassword = FixedPassword
	d.TermsAgreed = true
	return d
}

// FilledForm returns a form with every step answered.
func FilledForm() registration.FormData {
	d := BasicInfoForm()
	d.OTP = FixedOTP

	d.CoverColor = registration.CoverEmerald
	d.EstablishmentDate = "2009-04-01"
	d.CompanyEmail = "info@acme.example"
	d.CompanyContactMobile = "+8802955000000"
	d.CompanyWhatsapp = "+8801711000001"
	d.CompanyWebsite = "https://acme.example"

	d.RepName = "Rahim Uddin"
	d.RepDesignation = "Managing Director"
	d.RepGender = registration.GenderMale
	d.RepDob = "1980-02-29"
	d.RepPersonalEmail = "rahim.uddin@mail.example"
	d.RepPersonalMobile = "+8801911000000"
	d.RepMaritalStatus = "Married"

	d.BusinessSegment = registration.SegmentService
	d.ProductCategory = "Logistics & Shipping"
	d.ExportEnabled = registration.ExportYes

	d.PaymentMethod = registration.PaymentBank
	return d
}

// FilledApplication snapshots FilledForm at FixedTime.
func FilledApplication() registration.Application {
	return registration.NewApplication(FilledForm(), FixedTime)
}
