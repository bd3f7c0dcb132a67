package domain

import (
	"github.com/shopspring/decimal"
)

// UKBenchmarks is the static UK constant set the engine computes against:
// statutory benefit rates and the runway comparison points. It is pure
// configuration, constructed once and injected into the engine; rates change
// every April so the table carries its data year and a review-by date and is
// overridable from YAML.
type UKBenchmarks struct {
	DataYear int    `yaml:"data_year" json:"data_year"`
	ReviewBy string `yaml:"review_by" json:"review_by"`

	SSPWeekly   decimal.Decimal `yaml:"ssp_weekly" json:"ssp_weekly"`
	SSPMonthly  decimal.Decimal `yaml:"ssp_monthly" json:"ssp_monthly"`
	SSPMaxWeeks int             `yaml:"ssp_max_weeks" json:"ssp_max_weeks"`

	ESAWeekly  decimal.Decimal `yaml:"esa_weekly" json:"esa_weekly"`
	ESAMonthly decimal.Decimal `yaml:"esa_monthly" json:"esa_monthly"`

	UCStandardAllowance decimal.Decimal `yaml:"uc_standard_allowance" json:"uc_standard_allowance"`

	AverageRunwayDays int `yaml:"average_runway_days" json:"average_runway_days"`
	TargetRunwayDays  int `yaml:"target_runway_days" json:"target_runway_days"`
}

// DefaultUKBenchmarks returns the embedded 2025/26 rates.
func DefaultUKBenchmarks() UKBenchmarks {
	return UKBenchmarks{
		DataYear: 2025,
		ReviewBy: "2026-02-01",

		SSPWeekly:   decimal.NewFromFloat(123.47),
		SSPMonthly:  decimal.NewFromFloat(535.05),
		SSPMaxWeeks: 28,

		ESAWeekly:  decimal.NewFromFloat(138.20),
		ESAMonthly: decimal.NewFromFloat(598.87),

		UCStandardAllowance: decimal.NewFromFloat(400.14),

		AverageRunwayDays: 60,
		TargetRunwayDays:  90,
	}
}
