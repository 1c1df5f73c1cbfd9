package registration

// labels maps field keys to the captions shown next to inputs and in the
// overview.
var labels = map[Field]string{
	FieldMembershipType:  "Membership type",
	FieldCompanyName:     "Company name",
	FieldRepEmail:        "Representative email",
	FieldRepMobile:       "Representative mobile",
	FieldPassword:        "Password",
	FieldConfirmPassword: "Confirm password",
	FieldTermsAgreed:     "Terms accepted",
	FieldOTP:             "Verification code",

	FieldCompanyLogo:          "Company logo",
	FieldCoverColor:           "Cover color",
	FieldEstablishmentDate:    "Establishment date",
	FieldCompanyEmail:         "Company email",
	FieldCompanyContactMobile: "Contact mobile",
	FieldCompanyWhatsapp:      "WhatsApp",
	FieldCompanyWebsite:       "Website",

	FieldSameAsHead:         "Same as organization head",
	FieldRepName:            "Full name",
	FieldRepDesignation:     "Designation",
	FieldRepGender:          "Gender",
	FieldRepDob:             "Date of birth",
	FieldRepPersonalEmail:   "Personal email",
	FieldRepPersonalMobile:  "Personal mobile",
	FieldRepPersonalWebsite: "Personal website",
	FieldRepMaritalStatus:   "Marital status",

	FieldBusinessSegment: "Business segment",
	FieldProductCategory: "Product category",
	FieldExportEnabled:   "Exports",

	FieldPaymentMethod: "Payment method",
}

// Label returns the human caption of a field, or the raw key if unknown.
func (f Field) Label() string {
	if l, ok := labels[f]; ok {
		return l
	}
	return string(f)
}
