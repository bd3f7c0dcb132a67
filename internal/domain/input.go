package domain

import (
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FlexDecimal is a decimal that tolerates untrusted input. Lead forms send
// numbers as strings, empty strings, or junk; anything that does not parse as
// a non-negative number becomes zero rather than failing the submission.
type FlexDecimal struct {
	decimal.Decimal
}

// NewFlexDecimal wraps a decimal value.
func NewFlexDecimal(d decimal.Decimal) FlexDecimal {
	return FlexDecimal{Decimal: d}
}

// FlexFromFloat is a convenience constructor for tests and defaults.
func FlexFromFloat(f float64) FlexDecimal {
	return FlexDecimal{Decimal: decimal.NewFromFloat(f)}
}

// UnmarshalYAML accepts numeric or string scalars; non-numeric or negative
// values coerce to zero. It never returns an error.
func (f *FlexDecimal) UnmarshalYAML(value *yaml.Node) error {
	raw := strings.TrimSpace(value.Value)
	if raw == "" {
		f.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		f.Decimal = decimal.Zero
		return nil
	}
	f.Decimal = d
	return nil
}

// MarshalYAML emits the plain numeric form.
func (f FlexDecimal) MarshalYAML() (interface{}, error) {
	return f.Decimal.String(), nil
}

// EmploymentCategory is the closed set of employment situations captured by
// the lead form. It drives both the employment pillar points and the state
// benefit the household would fall back on.
type EmploymentCategory string

const (
	EmploymentPAYE12     EmploymentCategory = "paye-12"    // PAYE, 12+ months with employer
	EmploymentPAYEUnder  EmploymentCategory = "paye-under" // PAYE, under 12 months
	EmploymentContractor EmploymentCategory = "contractor" // day-rate / fixed-term contractor
	EmploymentSelf2      EmploymentCategory = "self-2"     // self-employed, 2+ years of accounts
	EmploymentSelfUnder  EmploymentCategory = "self-under" // self-employed, under 2 years
	EmploymentIrregular  EmploymentCategory = "irregular"  // zero-hours / irregular income
)

// Valid reports whether the category is one of the known form values.
func (c EmploymentCategory) Valid() bool {
	switch c {
	case EmploymentPAYE12, EmploymentPAYEUnder, EmploymentContractor,
		EmploymentSelf2, EmploymentSelfUnder, EmploymentIrregular:
		return true
	}
	return false
}

// CreditCategory is the self-reported credit history band.
type CreditCategory string

const (
	CreditExcellent CreditCategory = "excellent"
	CreditGood      CreditCategory = "good"
	CreditFair      CreditCategory = "fair"
	CreditPoor      CreditCategory = "poor"
)

func (c CreditCategory) Valid() bool {
	switch c {
	case CreditExcellent, CreditGood, CreditFair, CreditPoor:
		return true
	}
	return false
}

// SurplusCategory is the self-reported monthly surplus band after essentials.
type SurplusCategory string

const (
	Surplus500Plus  SurplusCategory = "500-plus"
	Surplus250To500 SurplusCategory = "250-500"
	Surplus100To250 SurplusCategory = "100-250"
	SurplusUnder100 SurplusCategory = "under-100"
	SurplusNone     SurplusCategory = "none"
)

func (c SurplusCategory) Valid() bool {
	switch c {
	case Surplus500Plus, Surplus250To500, Surplus100To250, SurplusUnder100, SurplusNone:
		return true
	}
	return false
}

// EmergencyFundCategory is the legacy dropdown for emergency savings, kept
// for submissions that predate the savings/essentials fields. When accessible
// savings and monthly essentials are both present the simulated runway takes
// precedence and this field is ignored.
type EmergencyFundCategory string

const (
	EmergencySixPlus    EmergencyFundCategory = "6-plus"
	EmergencyThreeToSix EmergencyFundCategory = "3-6"
	EmergencyOneToThree EmergencyFundCategory = "1-3"
	EmergencyNone       EmergencyFundCategory = "none"
)

func (c EmergencyFundCategory) Valid() bool {
	switch c {
	case EmergencySixPlus, EmergencyThreeToSix, EmergencyOneToThree, EmergencyNone:
		return true
	}
	return false
}

// ProtectionLevel is the cover level for each of the three protection lines
// (life, income protection, critical illness).
type ProtectionLevel string

const (
	ProtectionFull    ProtectionLevel = "full"
	ProtectionPartial ProtectionLevel = "partial"
	ProtectionNone    ProtectionLevel = "none"
)

func (p ProtectionLevel) Valid() bool {
	switch p {
	case ProtectionFull, ProtectionPartial, ProtectionNone:
		return true
	}
	return false
}

// WellnessInput is one household's self-reported submission. All monetary
// fields arrive untrusted and pass through FlexDecimal coercion; categorical
// fields are validated by Engine.Validate before scoring.
type WellnessInput struct {
	Employment EmploymentCategory `yaml:"employment" json:"employment"`
	Credit     CreditCategory     `yaml:"credit" json:"credit"`

	PropertyValue FlexDecimal `yaml:"property_value" json:"property_value"`
	Deposit       FlexDecimal `yaml:"deposit" json:"deposit"`

	MonthlySurplus SurplusCategory       `yaml:"monthly_surplus" json:"monthly_surplus"`
	EmergencyFund  EmergencyFundCategory `yaml:"emergency_fund,omitempty" json:"emergency_fund,omitempty"`

	LifeCover     ProtectionLevel `yaml:"life_cover" json:"life_cover"`
	IncomeCover   ProtectionLevel `yaml:"income_cover" json:"income_cover"`
	CriticalCover ProtectionLevel `yaml:"critical_cover" json:"critical_cover"`

	Age    int  `yaml:"age" json:"age"`
	Smoker bool `yaml:"smoker" json:"smoker"`

	// Net monthly incomes, used for the waterfall and as the fallback for
	// estimating gross annual income when it is not given explicitly.
	MonthlyIncome        FlexDecimal `yaml:"monthly_income" json:"monthly_income"`
	PartnerMonthlyIncome FlexDecimal `yaml:"partner_monthly_income,omitempty" json:"partner_monthly_income,omitempty"`

	AccessibleSavings FlexDecimal `yaml:"accessible_savings" json:"accessible_savings"`
	MonthlyEssentials FlexDecimal `yaml:"monthly_essentials" json:"monthly_essentials"`

	// How long the user believes their savings would last, in months.
	PerceivedRunwayMonths FlexDecimal `yaml:"perceived_runway_months,omitempty" json:"perceived_runway_months,omitempty"`

	EmployerSickPay        bool `yaml:"employer_sick_pay" json:"employer_sick_pay"`
	EmployerSickPayMonths  int  `yaml:"employer_sick_pay_months,omitempty" json:"employer_sick_pay_months,omitempty"`
	EmployerDeathInService bool `yaml:"employer_death_in_service" json:"employer_death_in_service"`

	IPMonthlyBenefit      FlexDecimal `yaml:"ip_monthly_benefit,omitempty" json:"ip_monthly_benefit,omitempty"`
	IPDeferralMonths      int         `yaml:"ip_deferral_months,omitempty" json:"ip_deferral_months,omitempty"`
	IPBenefitPeriodMonths int         `yaml:"ip_benefit_period_months,omitempty" json:"ip_benefit_period_months,omitempty"`

	// Optional mortgage metrics for the LTI/DTI pillar.
	GrossAnnualIncome        FlexDecimal `yaml:"gross_annual_income,omitempty" json:"gross_annual_income,omitempty"`
	PartnerGrossAnnualIncome FlexDecimal `yaml:"partner_gross_annual_income,omitempty" json:"partner_gross_annual_income,omitempty"`
	MonthlyCommitments       FlexDecimal `yaml:"monthly_commitments,omitempty" json:"monthly_commitments,omitempty"`
	MortgageTermYears        int         `yaml:"mortgage_term_years,omitempty" json:"mortgage_term_years,omitempty"`
	InterestRate             FlexDecimal `yaml:"interest_rate,omitempty" json:"interest_rate,omitempty"` // annual, percent
	MortgageAmount           FlexDecimal `yaml:"mortgage_amount,omitempty" json:"mortgage_amount,omitempty"`
}

// HasIncomeProtection reports whether an income protection policy with a
// positive monthly benefit was declared.
func (in *WellnessInput) HasIncomeProtection() bool {
	return in.IPMonthlyBenefit.IsPositive()
}

// ValidationResult is the outcome of Engine.Validate. Errors are
// human-readable and surfaced verbatim to the caller.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}
