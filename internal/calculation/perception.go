package calculation

import (
	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
)

// perceptionToleranceDays is the band within which the user's estimate is
// treated as matching reality.
var perceptionToleranceDays = decimal.NewFromInt(30)

// AnalyzePerception compares the user's subjective runway estimate against
// the simulated value. A positive gap means the real runway is longer than
// the user believed.
func AnalyzePerception(estimatedMonths decimal.Decimal, actualDays int) domain.PerceptionGap {
	estimatedDays := estimatedMonths.Mul(daysPerMonth)
	actual := decimal.NewFromInt(int64(actualDays))
	gap := actual.Sub(estimatedDays)

	ratio := decimal.Zero
	if estimatedDays.IsPositive() {
		ratio = actual.Div(estimatedDays).Round(2)
	}

	var message string
	switch {
	case gap.GreaterThan(perceptionToleranceDays):
		message = "Your financial position is better than you thought"
	case gap.LessThan(perceptionToleranceDays.Neg()):
		message = "Your savings would run out sooner than you thought"
	default:
		message = "Your estimate is close to reality"
	}

	return domain.PerceptionGap{
		EstimatedDays:  estimatedDays.Round(0),
		ActualDays:     actualDays,
		GapDays:        gap.Round(0),
		Ratio:          ratio,
		Underestimated: gap.IsPositive(),
		Message:        message,
	}
}
