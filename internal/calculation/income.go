package calculation

import (
	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
)

// grossUpMultiplier converts net monthly income to an estimated gross annual
// figure. 1.3 is deliberately conservative: overstating gross income would
// flatter the LTI ratio, so the uplift biases the ratio toward the worse
// outcome.
var grossUpMultiplier = decimal.NewFromFloat(1.3)

var twelve = decimal.NewFromInt(12)

// ResolveIncome normalizes one applicant's gross annual income. An explicit
// gross annual figure wins; otherwise net monthly income is grossed up and
// annualized; with neither the result is unavailable. It never fails.
func ResolveIncome(grossAnnual, netMonthly decimal.Decimal) domain.IncomeResolution {
	if grossAnnual.IsPositive() {
		return domain.IncomeResolution{
			GrossAnnual: grossAnnual,
			Source:      domain.IncomeSourceProvided,
		}
	}
	if netMonthly.IsPositive() {
		return domain.IncomeResolution{
			GrossAnnual: netMonthly.Mul(twelve).Mul(grossUpMultiplier).Round(0),
			Source:      domain.IncomeSourceEstimated,
			IsEstimated: true,
		}
	}
	return domain.IncomeResolution{
		GrossAnnual: decimal.Zero,
		Source:      domain.IncomeSourceUnavailable,
	}
}
