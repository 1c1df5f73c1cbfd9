package registration

import "fmt"

// MembershipType is the tier a company applies for.
type MembershipType string

const (
	MembershipGeneral   MembershipType = "general"
	MembershipCorporate MembershipType = "corporate"
	MembershipAssociate MembershipType = "associate"
	MembershipLife      MembershipType = "life"
)

// MembershipTypes lists the selectable tiers in display order.
var MembershipTypes = []MembershipType{
	MembershipGeneral,
	MembershipCorporate,
	MembershipAssociate,
	MembershipLife,
}

// Label returns the display name, e.g. "Corporate Member".
func (m MembershipType) Label() string {
	switch m {
	case MembershipGeneral:
		return "General Member"
	case MembershipCorporate:
		return "Corporate Member"
	case MembershipAssociate:
		return "Associate Member"
	case MembershipLife:
		return "Life Member"
	default:
		return ""
	}
}

// Description is the one-line blurb shown under each tier.
func (m MembershipType) Description() string {
	switch m {
	case MembershipGeneral:
		return "Sole proprietors and small traders"
	case MembershipCorporate:
		return "Registered limited companies and groups"
	case MembershipAssociate:
		return "Associations, chambers and non-profits"
	case MembershipLife:
		return "One-time fee, lifetime membership"
	default:
		return ""
	}
}

// Fee is the annual (or one-time, for life members) fee in BDT.
func (m MembershipType) Fee() int {
	switch m {
	case MembershipGeneral:
		return 5000
	case MembershipCorporate:
		return 25000
	case MembershipAssociate:
		return 10000
	case MembershipLife:
		return 100000
	default:
		return 0
	}
}

// FormatFee renders an amount as "BDT 25,000".
func FormatFee(amount int) string {
	s := fmt.Sprintf("%d", amount)
	var out []byte
	for i := range len(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return "BDT " + string(out)
}

// CoverColor is one of the preset profile cover colors.
type CoverColor string

const (
	CoverIndigo  CoverColor = "indigo"
	CoverEmerald CoverColor = "emerald"
	CoverAmber   CoverColor = "amber"
	CoverRose    CoverColor = "rose"
	CoverSlate   CoverColor = "slate"
)

// CoverColors lists the five swatches in display order.
var CoverColors = []CoverColor{CoverIndigo, CoverEmerald, CoverAmber, CoverRose, CoverSlate}

// Label returns the capitalized swatch name.
func (c CoverColor) Label() string {
	switch c {
	case CoverIndigo:
		return "Indigo"
	case CoverEmerald:
		return "Emerald"
	case CoverAmber:
		return "Amber"
	case CoverRose:
		return "Rose"
	case CoverSlate:
		return "Slate"
	default:
		return ""
	}
}

// Hex returns the swatch color.
func (c CoverColor) Hex() string {
	switch c {
	case CoverIndigo:
		return "#6366f1"
	case CoverEmerald:
		return "#10b981"
	case CoverAmber:
		return "#f59e0b"
	case CoverRose:
		return "#f43f5e"
	case CoverSlate:
		return "#64748b"
	default:
		return "#ffffff"
	}
}

// Gender of the representative.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

func (g Gender) Label() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	case GenderOther:
		return "Other"
	default:
		return ""
	}
}

// BusinessSegment classifies the applicant's line of business.
type BusinessSegment string

const (
	SegmentTrading       BusinessSegment = "trading"
	SegmentManufacturing BusinessSegment = "manufacturing"
	SegmentConsultancy   BusinessSegment = "consultancy"
	SegmentService       BusinessSegment = "service"
	SegmentOther         BusinessSegment = "other"
)

var BusinessSegments = []BusinessSegment{
	SegmentTrading,
	SegmentManufacturing,
	SegmentConsultancy,
	SegmentService,
	SegmentOther,
}

func (s BusinessSegment) Label() string {
	switch s {
	case SegmentTrading:
		return "Trading"
	case SegmentManufacturing:
		return "Manufacturing"
	case SegmentConsultancy:
		return "Consultancy"
	case SegmentService:
		return "Service"
	case SegmentOther:
		return "Other"
	default:
		return ""
	}
}

// ExportOption answers "does the company export?".
type ExportOption string

const (
	ExportYes ExportOption = "yes"
	ExportNo  ExportOption = "no"
)

var ExportOptions = []ExportOption{ExportYes, ExportNo}

func (e ExportOption) Label() string {
	switch e {
	case ExportYes:
		return "Yes"
	case ExportNo:
		return "No"
	default:
		return ""
	}
}

// PaymentMethod selects the payment sub-form.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentBank PaymentMethod = "bank"
	PaymentMFS  PaymentMethod = "mfs"
	PaymentCash PaymentMethod = "cash"
)

var PaymentMethods = []PaymentMethod{PaymentCard, PaymentBank, PaymentMFS, PaymentCash}

func (p PaymentMethod) Label() string {
	switch p {
	case PaymentCard:
		return "Card"
	case PaymentBank:
		return "Bank Transfer"
	case PaymentMFS:
		return "Mobile Banking"
	case PaymentCash:
		return "Cash"
	default:
		return ""
	}
}

// MaritalStatuses are the options of the marital status select.
var MaritalStatuses = []string{"Single", "Married", "Divorced", "Widowed", "Prefer not to say"}

// ProductCategories are the options of the product category select.
var ProductCategories = []string{
	"Agro & Food Processing",
	"Apparel & Textiles",
	"Chemicals & Plastics",
	"Construction & Real Estate",
	"Electronics & ICT",
	"Healthcare & Pharmaceuticals",
	"Leather & Footwear",
	"Logistics & Shipping",
	"Other",
}
