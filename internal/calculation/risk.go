package calculation

import (
	"fmt"

	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
)

// LookupRisk selects the age bracket for the applicant and returns the
// smoker-split death and critical illness probabilities plus the
// bracket-level long-term-absence probability, each classified against the
// table's per-type severity thresholds. Ages outside the table clamp to the
// nearest bracket.
func LookupRisk(age int, smoker bool, table domain.RiskTable) domain.RiskProfile {
	bracket := selectBracket(age, table.Brackets)

	death := bracket.Death.NonSmoker
	critical := bracket.CriticalIllness.NonSmoker
	if smoker {
		death = bracket.Death.Smoker
		critical = bracket.CriticalIllness.Smoker
	}

	return domain.RiskProfile{
		Bracket:         bracket.Label,
		Smoker:          smoker,
		Death:           riskFigure(death, table.Thresholds.Death),
		CriticalIllness: riskFigure(critical, table.Thresholds.CriticalIllness),
		LongTermAbsence: riskFigure(bracket.LongTermAbsence, table.Thresholds.LongTermAbsence),
	}
}

func selectBracket(age int, brackets []domain.RiskBracket) domain.RiskBracket {
	for _, b := range brackets {
		if b.Contains(age) {
			return b
		}
	}
	if age < brackets[0].MinAge {
		return brackets[0]
	}
	return brackets[len(brackets)-1]
}

func riskFigure(probability decimal.Decimal, bands domain.SeverityBands) domain.RiskFigure {
	return domain.RiskFigure{
		Probability: probability,
		Display:     formatProbability(probability),
		Severity:    classifySeverity(probability, bands),
	}
}

// formatProbability keeps one decimal place below 10% and whole percents
// above, matching how the figures are quoted on the site.
func formatProbability(p decimal.Decimal) string {
	if p.LessThan(decimal.NewFromInt(10)) {
		return fmt.Sprintf("%s%%", p.StringFixed(1))
	}
	return fmt.Sprintf("%s%%", p.Round(0).String())
}

func classifySeverity(p decimal.Decimal, bands domain.SeverityBands) domain.RiskSeverity {
	switch {
	case p.GreaterThanOrEqual(bands.VeryHigh):
		return domain.SeverityVeryHigh
	case p.GreaterThanOrEqual(bands.High):
		return domain.SeverityHigh
	case p.GreaterThanOrEqual(bands.Medium):
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
