package registration

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Section selects which group of fields Check inspects.
type Section int

const (
	SectionBasicInfo Section = iota
	SectionCompanyInfo
	SectionPersonalInfo
)

// Issue is a single advisory problem with a field.
type Issue struct {
	Field   Field
	Tag     string // validator tag that failed, e.g. "required", "email"
	Message string
}

// Section views carry the validation rules. Tag names resolve to the json
// key so failures map back onto Field values.
type basicInfo struct {
	CompanyName     string `json:"companyName" validate:"required,max=120"`
	RepEmail        string `json:"repEmail" validate:"required,email"`
	RepMobile       string `json:"repMobile" validate:"required,mobile"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type companyInfo struct {
	EstablishmentDate    string `json:"establishmentDate" validate:"omitempty,datetime=2006-01-02"`
	CompanyEmail         string `json:"companyEmail" validate:"required,email"`
	CompanyContactMobile string `json:"companyContactMobile" validate:"required,mobile"`
	CompanyWhatsapp      string `json:"companyWhatsapp" validate:"omitempty,mobile"`
	CompanyWebsite       string `json:"companyWebsite" validate:"omitempty,url"`
}

type personalInfo struct {
	RepName            string `json:"repName" validate:"required,max=120"`
	RepDesignation     string `json:"repDesignation" validate:"required"`
	RepDob             string `json:"repDob" validate:"omitempty,datetime=2006-01-02"`
	RepPersonalEmail   string `json:"repPersonalEmail" validate:"omitempty,email"`
	RepPersonalMobile  string `json:"repPersonalMobile" validate:"omitempty,mobile"`
	RepPersonalWebsite string `json:"repPersonalWebsite" validate:"omitempty,url"`
}

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func checker() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		})
		// Registration only fails for empty tags or nil funcs.
		_ = v.RegisterValidation("mobile", func(fl validator.FieldLevel) bool {
			return mobilePattern.MatchString(strings.ReplaceAll(fl.Field().String(), " ", ""))
		})
		validate = v
	})
	return validate
}

// Check returns the advisory issues of one section of the form. It never
// blocks navigation; the caller decides how to present the result.
func Check(section Section, d FormData) []Issue {
	var view any
	switch section {
	case SectionBasicInfo:
		view = basicInfo{
			CompanyName:     strings.TrimSpace(d.CompanyName),
			RepEmail:        strings.TrimSpace(d.RepEmail),
			RepMobile:       strings.TrimSpace(d.RepMobile),
			Password:        d.Password,
			ConfirmPassword: d.ConfirmPassword,
		}
	case SectionCompanyInfo:
		view = companyInfo{
			EstablishmentDate:    strings.TrimSpace(d.EstablishmentDate),
			CompanyEmail:         strings.TrimSpace(d.CompanyEmail),
			CompanyContactMobile: strings.TrimSpace(d.CompanyContactMobile),
			CompanyWhatsapp:      strings.TrimSpace(d.CompanyWhatsapp),
			CompanyWebsite:       strings.TrimSpace(d.CompanyWebsite),
		}
	case SectionPersonalInfo:
		view = personalInfo{
			RepName:            strings.TrimSpace(d.RepName),
			RepDesignation:     strings.TrimSpace(d.RepDesignation),
			RepDob:             strings.TrimSpace(d.RepDob),
			RepPersonalEmail:   strings.TrimSpace(d.RepPersonalEmail),
			RepPersonalMobile:  strings.TrimSpace(d.RepPersonalMobile),
			RepPersonalWebsite: strings.TrimSpace(d.RepPersonalWebsite),
		}
	default:
		return nil
	}

	err := checker().Struct(view)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Issue{{Message: err.Error()}}
	}

	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		field := Field(fe.Field())
		issues = append(issues, Issue{
			Field:   field,
			Tag:     fe.Tag(),
			Message: issueMessage(field.Label(), fe.Tag(), fe.Param()),
		})
	}
	return issues
}

func issueMessage(label, tag, param string) string {
	switch tag {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "url":
		return label + " must be a full URL (https://...)"
	case "datetime":
		return label + " must be a date (YYYY-MM-DD)"
	case "mobile":
		return label + " must be a phone number (10-15 digits)"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, param)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, tag)
	}
}
