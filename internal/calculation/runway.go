package calculation

import (
	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
)

// maxSimulationMonths caps the depletion loop at 10 years. The cap exists
// only to guarantee termination on pathological inputs; a runway beyond it is
// already deep into "strong" territory.
const maxSimulationMonths = 120

// daysPerMonth is the mean Gregorian month length used everywhere months are
// converted to days.
var daysPerMonth = decimal.NewFromFloat(30.44)

// Runway status cutoffs in days. Fixed, not configuration.
const (
	runwayCriticalBelowDays = 30
	runwayModerateBelowDays = 60
	runwayGoodBelowDays     = 90
)

// RunwayInputs are the resolved figures the depletion simulation runs on.
type RunwayInputs struct {
	AccessibleSavings decimal.Decimal
	MonthlyEssentials decimal.Decimal
	StateBenefit      domain.StateBenefit
	IPMonthlyBenefit  decimal.Decimal
	IPDeferralMonths  int
}

// SimulateRunway burns accessible savings month by month against essential
// outgoings net of replacement income (state benefit, plus income protection
// once its deferral period has passed).
//
// If replacement income ever covers essentials the simulation stops
// immediately with the 999-day sentinel: savings are never drawn down and no
// more precise "infinite" value is sought. Otherwise whole months are
// consumed while savings cover the month's shortfall, and the terminal month
// contributes the fraction of it that savings can still fund. Missing savings
// or essentials skip the simulation entirely.
func SimulateRunway(in RunwayInputs, benchmarks domain.UKBenchmarks) domain.RunwayResult {
	if in.AccessibleSavings.LessThanOrEqual(decimal.Zero) || in.MonthlyEssentials.LessThanOrEqual(decimal.Zero) {
		return domain.RunwayResult{
			Months: decimal.Zero,
			Status: domain.RunwayUnavailable,
		}
	}

	hasIP := in.IPMonthlyBenefit.IsPositive()
	remaining := in.AccessibleSavings
	monthsPassed := 0
	totalMonths := decimal.Zero

	for monthsPassed < maxSimulationMonths {
		income := in.StateBenefit.MonthlyAmount
		if hasIP && monthsPassed >= in.IPDeferralMonths {
			income = income.Add(in.IPMonthlyBenefit)
		}

		shortfall := in.MonthlyEssentials.Sub(income)
		if shortfall.LessThanOrEqual(decimal.Zero) {
			// Income covers essentials: terminal "strong" state.
			return sentinelRunway(benchmarks)
		}

		if remaining.LessThan(shortfall) {
			totalMonths = totalMonths.Add(remaining.Div(shortfall))
			break
		}

		remaining = remaining.Sub(shortfall)
		monthsPassed++
		totalMonths = decimal.NewFromInt(int64(monthsPassed))
	}

	days := int(totalMonths.Mul(daysPerMonth).Round(0).IntPart())
	return domain.RunwayResult{
		Days:          days,
		Months:        totalMonths.Round(1),
		Status:        runwayStatus(days),
		VsAverageDays: days - benchmarks.AverageRunwayDays,
		VsTargetDays:  days - benchmarks.TargetRunwayDays,
	}
}

func sentinelRunway(benchmarks domain.UKBenchmarks) domain.RunwayResult {
	return domain.RunwayResult{
		Days:          domain.RunwaySentinelDays,
		Months:        domain.RunwaySentinelMonths,
		Status:        domain.RunwayStrong,
		VsAverageDays: domain.RunwaySentinelDays - benchmarks.AverageRunwayDays,
		VsTargetDays:  domain.RunwaySentinelDays - benchmarks.TargetRunwayDays,
	}
}

func runwayStatus(days int) domain.RunwayStatus {
	switch {
	case days < runwayCriticalBelowDays:
		return domain.RunwayCritical
	case days < runwayModerateBelowDays:
		return domain.RunwayModerate
	case days < runwayGoodBelowDays:
		return domain.RunwayGood
	default:
		return domain.RunwayStrong
	}
}
