package calculation

import (
	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
)

// waterfallMonths is the fixed projection horizon. The waterfall is a
// bounded illustration, unlike the open-ended runway simulation.
const waterfallMonths = 6

// WaterfallInputs are the resolved figures for the income-replacement
// projection. MonthlyIncome is the applicant's own pre-incapacity net monthly
// income, which employer sick pay replaces in full while it lasts.
type WaterfallInputs struct {
	MonthlyIncome     decimal.Decimal
	MonthlyEssentials decimal.Decimal
	EmployerSickPay   bool
	SickPayMonths     int
	StateBenefit      domain.StateBenefit
	IPMonthlyBenefit  decimal.Decimal
	IPDeferralMonths  int
}

// ProjectWaterfall produces the six-month income-replacement projection.
// Months on employer sick pay carry full income; afterwards income drops to
// the state benefit, topped up by income protection once past its deferral.
// Always returns exactly six entries, months 1..6 in order, with a
// monotonically non-decreasing cumulative shortfall.
func ProjectWaterfall(in WaterfallInputs) []domain.WaterfallEntry {
	hasIP := in.IPMonthlyBenefit.IsPositive()
	entries := make([]domain.WaterfallEntry, 0, waterfallMonths)
	cumulative := decimal.Zero

	for month := 1; month <= waterfallMonths; month++ {
		var income decimal.Decimal
		var source string

		if in.EmployerSickPay && month <= in.SickPayMonths {
			income = in.MonthlyIncome
			source = "Employer sick pay"
		} else {
			income = in.StateBenefit.MonthlyAmount
			source = in.StateBenefit.Label
			if hasIP && month > in.IPDeferralMonths {
				income = income.Add(in.IPMonthlyBenefit)
				source += " + Income Protection"
			}
		}

		shortfall := in.MonthlyEssentials.Sub(income)
		if shortfall.IsNegative() {
			shortfall = decimal.Zero
		}
		cumulative = cumulative.Add(shortfall)

		entries = append(entries, domain.WaterfallEntry{
			Month:               month,
			Income:              income.Round(2),
			IncomeSource:        source,
			Shortfall:           shortfall.Round(2),
			CumulativeShortfall: cumulative.Round(2),
		})
	}

	return entries
}
