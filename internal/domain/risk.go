package domain

import (
	"github.com/shopspring/decimal"
)

// SplitProbability is a percentage split by smoker status.
type SplitProbability struct {
	NonSmoker decimal.Decimal `yaml:"non_smoker" json:"non_smoker"`
	Smoker    decimal.Decimal `yaml:"smoker" json:"smoker"`
}

// RiskBracket is one age band of the actuarial table. Death and critical
// illness are smoker-split; long-term absence is bracket-level only.
type RiskBracket struct {
	Label           string           `yaml:"label" json:"label"`
	MinAge          int              `yaml:"min_age" json:"min_age"`
	MaxAge          int              `yaml:"max_age" json:"max_age"`
	Death           SplitProbability `yaml:"death" json:"death"`
	CriticalIllness SplitProbability `yaml:"critical_illness" json:"critical_illness"`
	LongTermAbsence decimal.Decimal  `yaml:"long_term_absence" json:"long_term_absence"`
}

// Contains reports whether an age falls inside the bracket.
func (b RiskBracket) Contains(age int) bool {
	return age >= b.MinAge && age <= b.MaxAge
}

// SeverityBands holds the ascending cutoffs for classifying one risk type.
// Probabilities below Medium are low severity.
type SeverityBands struct {
	Medium   decimal.Decimal `yaml:"medium" json:"medium"`
	High     decimal.Decimal `yaml:"high" json:"high"`
	VeryHigh decimal.Decimal `yaml:"very_high" json:"very_high"`
}

// RiskThresholds carries per-risk-type severity bands. The cutoffs live here
// rather than in the lookup logic so an actuary can retune them without a
// code change.
type RiskThresholds struct {
	Death           SeverityBands `yaml:"death" json:"death"`
	CriticalIllness SeverityBands `yaml:"critical_illness" json:"critical_illness"`
	LongTermAbsence SeverityBands `yaml:"long_term_absence" json:"long_term_absence"`
}

// RiskTable is the externally supplied actuarial lookup table. Brackets must
// be ordered by ascending age; ages below the first bracket use the first and
// ages above the last use the last.
type RiskTable struct {
	DataYear   int            `yaml:"data_year" json:"data_year"`
	Source     string         `yaml:"source" json:"source"`
	Brackets   []RiskBracket  `yaml:"brackets" json:"brackets"`
	Thresholds RiskThresholds `yaml:"thresholds" json:"thresholds"`
}

// DefaultRiskTable returns the embedded table used when the caller supplies
// none. Figures are 10-year incidence percentages.
func DefaultRiskTable() RiskTable {
	return RiskTable{
		DataYear: 2025,
		Source:   "aggregated insurer incidence tables",
		Brackets: []RiskBracket{
			{
				Label: "18-29", MinAge: 18, MaxAge: 29,
				Death:           SplitProbability{NonSmoker: decimal.NewFromFloat(0.4), Smoker: decimal.NewFromFloat(0.9)},
				CriticalIllness: SplitProbability{NonSmoker: decimal.NewFromFloat(1.1), Smoker: decimal.NewFromFloat(2.1)},
				LongTermAbsence: decimal.NewFromInt(6),
			},
			{
				Label: "30-39", MinAge: 30, MaxAge: 39,
				Death:           SplitProbability{NonSmoker: decimal.NewFromFloat(0.9), Smoker: decimal.NewFromFloat(2.0)},
				CriticalIllness: SplitProbability{NonSmoker: decimal.NewFromFloat(2.4), Smoker: decimal.NewFromFloat(4.6)},
				LongTermAbsence: decimal.NewFromInt(9),
			},
			{
				Label: "40-49", MinAge: 40, MaxAge: 49,
				Death:           SplitProbability{NonSmoker: decimal.NewFromFloat(2.1), Smoker: decimal.NewFromFloat(4.8)},
				CriticalIllness: SplitProbability{NonSmoker: decimal.NewFromFloat(5.6), Smoker: decimal.NewFromFloat(10.2)},
				LongTermAbsence: decimal.NewFromInt(13),
			},
			{
				Label: "50-59", MinAge: 50, MaxAge: 59,
				Death:           SplitProbability{NonSmoker: decimal.NewFromFloat(4.9), Smoker: decimal.NewFromFloat(10.8)},
				CriticalIllness: SplitProbability{NonSmoker: decimal.NewFromFloat(12.4), Smoker: decimal.NewFromFloat(21.0)},
				LongTermAbsence: decimal.NewFromInt(19),
			},
			{
				Label: "60-70", MinAge: 60, MaxAge: 70,
				Death:           SplitProbability{NonSmoker: decimal.NewFromFloat(10.2), Smoker: decimal.NewFromFloat(20.5)},
				CriticalIllness: SplitProbability{NonSmoker: decimal.NewFromFloat(24.0), Smoker: decimal.NewFromFloat(38.5)},
				LongTermAbsence: decimal.NewFromInt(26),
			},
		},
		Thresholds: RiskThresholds{
			Death: SeverityBands{
				Medium:   decimal.NewFromInt(2),
				High:     decimal.NewFromInt(6),
				VeryHigh: decimal.NewFromInt(12),
			},
			CriticalIllness: SeverityBands{
				Medium:   decimal.NewFromInt(5),
				High:     decimal.NewFromInt(12),
				VeryHigh: decimal.NewFromInt(25),
			},
			LongTermAbsence: SeverityBands{
				Medium:   decimal.NewFromInt(8),
				High:     decimal.NewFromInt(15),
				VeryHigh: decimal.NewFromInt(25),
			},
		},
	}
}
