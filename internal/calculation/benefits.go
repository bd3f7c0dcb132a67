package calculation

import (
	"github.com/brightpath-mortgages/wellness/internal/domain"
)

// ResolveStateBenefit maps an employment category to the state benefit the
// household would fall back on if income stopped. PAYE employees and
// contractors on a payroll qualify for Statutory Sick Pay; the self-employed
// fall through to contribution-based ESA. Unknown categories also resolve to
// ESA as the conservative default, flagged with an eligibility caveat.
// Deterministic function of the category and the injected benchmark rates.
func ResolveStateBenefit(category domain.EmploymentCategory, benchmarks domain.UKBenchmarks) domain.StateBenefit {
	switch category {
	case domain.EmploymentPAYE12, domain.EmploymentPAYEUnder, domain.EmploymentContractor:
		maxWeeks := benchmarks.SSPMaxWeeks
		return domain.StateBenefit{
			Type:             domain.BenefitSSP,
			Label:            "Statutory Sick Pay",
			WeeklyRate:       benchmarks.SSPWeekly,
			MonthlyAmount:    benchmarks.SSPMonthly,
			MaxDurationWeeks: &maxWeeks,
			EligibilityNote:  "Paid by the employer for up to 28 weeks of incapacity",
		}
	case domain.EmploymentSelf2, domain.EmploymentSelfUnder:
		return domain.StateBenefit{
			Type:            domain.BenefitESA,
			Label:           "Employment and Support Allowance",
			WeeklyRate:      benchmarks.ESAWeekly,
			MonthlyAmount:   benchmarks.ESAMonthly,
			EligibilityNote: "Contribution-based ESA, subject to sufficient National Insurance contributions",
		}
	default:
		return domain.StateBenefit{
			Type:            domain.BenefitESA,
			Label:           "Employment and Support Allowance",
			WeeklyRate:      benchmarks.ESAWeekly,
			MonthlyAmount:   benchmarks.ESAMonthly,
			EligibilityNote: "Eligibility uncertain for irregular work patterns; assumed ESA as the conservative default",
		}
	}
}
