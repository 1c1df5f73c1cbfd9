// Package registration holds the membership application record collected by
// the join wizard, its option catalogs and advisory field checks.
package registration

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownField is returned when a field key does not exist.
	ErrUnknownField = errors.New("unknown field")
	// ErrInvalidValue is returned when a value has the wrong type for its
	// field or lies outside the field's option list.
	ErrInvalidValue = errors.New("invalid value")
)

// Field names a single FormData entry.
type Field string

const (
	FieldMembershipType  Field = "membershipType"
	FieldCompanyName     Field = "companyName"
	FieldRepEmail        Field = "repEmail"
	FieldRepMobile       Field = "repMobile"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
	FieldTermsAgreed     Field = "termsAgreed"
	FieldOTP             Field = "otp"

	FieldCompanyLogo          Field = "companyLogo"
	FieldCoverColor           Field = "coverColor"
	FieldEstablishmentDate    Field = "establishmentDate"
	FieldCompanyEmail         Field = "companyEmail"
	FieldCompanyContactMobile Field = "companyContactMobile"
	FieldCompanyWhatsapp      Field = "companyWhatsapp"
	FieldCompanyWebsite       Field = "companyWebsite"

	FieldSameAsHead         Field = "sameAsHead"
	FieldRepName            Field = "repName"
	FieldRepDesignation     Field = "repDesignation"
	FieldRepGender          Field = "repGender"
	FieldRepDob             Field = "repDob"
	FieldRepPersonalEmail   Field = "repPersonalEmail"
	FieldRepPersonalMobile  Field = "repPersonalMobile"
	FieldRepPersonalWebsite Field = "repPersonalWebsite"
	FieldRepMaritalStatus   Field = "repMaritalStatus"

	FieldBusinessSegment Field = "businessSegment"
	FieldProductCategory Field = "productCategory"
	FieldExportEnabled   Field = "exportEnabled"

	FieldPaymentMethod Field = "paymentMethod"
)

// FormData is every field collected across the wizard steps. It is a value
// type: With returns a modified copy and never touches the receiver.
type FormData struct {
	// Membership and account (steps 1-3)
	MembershipType  MembershipType `json:"membershipType"`
	CompanyName     string         `json:"companyName"`
	RepEmail        string         `json:"repEmail"`
	RepMobile       string         `json:"repMobile"`
	Password        string         `json:"-"`
	ConfirmPassword string         `json:"-"`
	TermsAgreed     bool           `json:"termsAgreed"`
	OTP             OTP            `json:"-"`

	// Company profile (step 4)
	CompanyLogo          string     `json:"companyLogo,omitempty"`
	CoverColor           CoverColor `json:"coverColor"`
	EstablishmentDate    string     `json:"establishmentDate"`
	CompanyEmail         string     `json:"companyEmail"`
	CompanyContactMobile string     `json:"companyContactMobile"`
	CompanyWhatsapp      string     `json:"companyWhatsapp"`
	CompanyWebsite       string     `json:"companyWebsite"`

	// Representative profile (step 5)
	SameAsHead         bool   `json:"sameAsHead"`
	RepName            string `json:"repName"`
	RepDesignation     string `json:"repDesignation"`
	RepGender          Gender `json:"repGender"`
	RepDob             string `json:"repDob"`
	RepPersonalEmail   string `json:"repPersonalEmail"`
	RepPersonalMobile  string `json:"repPersonalMobile"`
	RepPersonalWebsite string `json:"repPersonalWebsite"`
	RepMaritalStatus   string `json:"repMaritalStatus"`

	// Business profile (step 6)
	BusinessSegment BusinessSegment `json:"businessSegment"`
	ProductCategory string          `json:"productCategory"`
	ExportEnabled   ExportOption    `json:"exportEnabled"`

	// Payment (step 8)
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

// New returns an empty form with the preset defaults applied.
func New() FormData {
	return FormData{
		CoverColor:    CoverIndigo,
		PaymentMethod: PaymentCard,
	}
}

// With returns a copy of d with field set to value. Only the Go type of
// value is checked; business rules belong to the steps.
func (d FormData) With(field Field, value any) (FormData, error) {
	orig := d
	var ok bool
	switch field {
	case FieldMembershipType:
		d.MembershipType, ok = asEnum(value, MembershipTypes, true)
	case FieldCompanyName:
		d.CompanyName, ok = value.(string)
	case FieldRepEmail:
		d.RepEmail, ok = value.(string)
	case FieldRepMobile:
		d.RepMobile, ok = value.(string)
	case FieldPassword:
		d.Password, ok = value.(string)
	case FieldConfirmPassword:
		d.ConfirmPassword, ok = value.(string)
	case FieldTermsAgreed:
		d.TermsAgreed, ok = value.(bool)
	case FieldOTP:
		var otp OTP
		otp, ok = value.(OTP)
		if ok && !otp.Valid() {
			return orig, fmt.Errorf("%w: otp must hold single digits", ErrInvalidValue)
		}
		d.OTP = otp
	case FieldCompanyLogo:
		d.CompanyLogo, ok = value.(string)
	case FieldCoverColor:
		d.CoverColor, ok = asEnum(value, CoverColors, false)
	case FieldEstablishmentDate:
		d.EstablishmentDate, ok = value.(string)
	case FieldCompanyEmail:
		d.CompanyEmail, ok = value.(string)
	case FieldCompanyContactMobile:
		d.CompanyContactMobile, ok = value.(string)
	case FieldCompanyWhatsapp:
		d.CompanyWhatsapp, ok = value.(string)
	case FieldCompanyWebsite:
		d.CompanyWebsite, ok = value.(string)
	case FieldSameAsHead:
		d.SameAsHead, ok = value.(bool)
	case FieldRepName:
		d.RepName, ok = value.(string)
	case FieldRepDesignation:
		d.RepDesignation, ok = value.(string)
	case FieldRepGender:
		d.RepGender, ok = asEnum(value, Genders, true)
	case FieldRepDob:
		d.RepDob, ok = value.(string)
	case FieldRepPersonalEmail:
		d.RepPersonalEmail, ok = value.(string)
	case FieldRepPersonalMobile:
		d.RepPersonalMobile, ok = value.(string)
	case FieldRepPersonalWebsite:
		d.RepPersonalWebsite, ok = value.(string)
	case FieldRepMaritalStatus:
		d.RepMaritalStatus, ok = value.(string)
	case FieldBusinessSegment:
		d.BusinessSegment, ok = asEnum(value, BusinessSegments, true)
	case FieldProductCategory:
		d.ProductCategory, ok = value.(string)
	case FieldExportEnabled:
		d.ExportEnabled, ok = asEnum(value, ExportOptions, true)
	case FieldPaymentMethod:
		d.PaymentMethod, ok = asEnum(value, PaymentMethods, false)
	default:
		return orig, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	if !ok {
		return orig, fmt.Errorf("%w: %#v for %s", ErrInvalidValue, value, field)
	}
	return d, nil
}

// Value reads a field by key.
func (d FormData) Value(field Field) (any, error) {
	switch field {
	case FieldMembershipType:
		return d.MembershipType, nil
	case FieldCompanyName:
		return d.CompanyName, nil
	case FieldRepEmail:
		return d.RepEmail, nil
	case FieldRepMobile:
		return d.RepMobile, nil
	case FieldPassword:
		return d.Password, nil
	case FieldConfirmPassword:
		return d.ConfirmPassword, nil
	case FieldTermsAgreed:
		return d.TermsAgreed, nil
	case FieldOTP:
		return d.OTP, nil
	case FieldCompanyLogo:
		return d.CompanyLogo, nil
	case FieldCoverColor:
		return d.CoverColor, nil
	case FieldEstablishmentDate:
		return d.EstablishmentDate, nil
	case FieldCompanyEmail:
		return d.CompanyEmail, nil
	case FieldCompanyContactMobile:
		return d.CompanyContactMobile, nil
	case FieldCompanyWhatsapp:
		return d.CompanyWhatsapp, nil
	case FieldCompanyWebsite:
		return d.CompanyWebsite, nil
	case FieldSameAsHead:
		return d.SameAsHead, nil
	case FieldRepName:
		return d.RepName, nil
	case FieldRepDesignation:
		return d.RepDesignation, nil
	case FieldRepGender:
		return d.RepGender, nil
	case FieldRepDob:
		return d.RepDob, nil
	case FieldRepPersonalEmail:
		return d.RepPersonalEmail, nil
	case FieldRepPersonalMobile:
		return d.RepPersonalMobile, nil
	case FieldRepPersonalWebsite:
		return d.RepPersonalWebsite, nil
	case FieldRepMaritalStatus:
		return d.RepMaritalStatus, nil
	case FieldBusinessSegment:
		return d.BusinessSegment, nil
	case FieldProductCategory:
		return d.ProductCategory, nil
	case FieldExportEnabled:
		return d.ExportEnabled, nil
	case FieldPaymentMethod:
		return d.PaymentMethod, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// asEnum accepts either the enum type itself or its plain string form.
// The value must be one of allowed, or empty when emptyOK is set.
func asEnum[T ~string](value any, allowed []T, emptyOK bool) (T, bool) {
	var v T
	switch x := value.(type) {
	case T:
		v = x
	case string:
		v = T(x)
	default:
		return "", false
	}
	if v == "" {
		return v, emptyOK
	}
	return v, slices.Contains(allowed, v)
}
