package domain

import (
	"github.com/shopspring/decimal"
)

// IncomeSource records where a resolved gross annual income came from.
type IncomeSource string

const (
	IncomeSourceProvided    IncomeSource = "provided"
	IncomeSourceEstimated   IncomeSource = "estimated"
	IncomeSourceUnavailable IncomeSource = "unavailable"
)

// IncomeResolution is the normalized gross annual income for one applicant.
// When only a net monthly figure is available, gross annual is estimated with
// a conservative 1.3x uplift so the derived ratios err toward the worse
// outcome.
type IncomeResolution struct {
	GrossAnnual decimal.Decimal `json:"gross_annual"`
	Source      IncomeSource    `json:"source"`
	IsEstimated bool            `json:"is_estimated"`
}

// RatioTier classifies an affordability ratio. LTI uses
// excellent/good/acceptable/stretched/difficult; DTI uses
// excellent/good/stretched/high. Unavailable is shared.
type RatioTier string

const (
	TierExcellent   RatioTier = "excellent"
	TierGood        RatioTier = "good"
	TierAcceptable  RatioTier = "acceptable"
	TierStretched   RatioTier = "stretched"
	TierDifficult   RatioTier = "difficult"
	TierHigh        RatioTier = "high"
	TierUnavailable RatioTier = "unavailable"
)

// RatioResult is one evaluated affordability ratio. Ratio and Score are nil
// exactly when the required inputs were missing, in which case Tier is
// unavailable and the pillar maximum is reduced by MaxScore.
type RatioResult struct {
	Ratio       *decimal.Decimal `json:"ratio"`
	Score       *int             `json:"score"`
	Tier        RatioTier        `json:"tier"`
	Description string           `json:"description"`
	MaxScore    int              `json:"max_score"`
	Display     string           `json:"display"`
}

// Available reports whether the ratio could be computed.
func (r RatioResult) Available() bool {
	return r.Ratio != nil
}

// ScoreValue returns the score, or zero when unavailable.
func (r RatioResult) ScoreValue() int {
	if r.Score == nil {
		return 0
	}
	return *r.Score
}

// DTIResult carries the debt-to-income evaluation plus the payment figures
// behind it. StressPayment is the same mortgage payment at the regulatory
// stress rate; it is disclosed but never scored.
type DTIResult struct {
	RatioResult     `json:",inline"`
	MortgagePayment decimal.Decimal `json:"mortgage_payment"`
	StressPayment   decimal.Decimal `json:"stress_payment"`
}

// BenefitType discriminates the applicable state benefit.
type BenefitType string

const (
	BenefitSSP BenefitType = "SSP"
	BenefitESA BenefitType = "ESA"
)

// StateBenefit is the fallback state income for an employment category.
type StateBenefit struct {
	Type             BenefitType     `json:"type"`
	Label            string          `json:"label"`
	WeeklyRate       decimal.Decimal `json:"weekly_rate"`
	MonthlyAmount    decimal.Decimal `json:"monthly_amount"`
	MaxDurationWeeks *int            `json:"max_duration_weeks,omitempty"`
	EligibilityNote  string          `json:"eligibility_note,omitempty"`
}

// RunwayStatus buckets the simulated runway against fixed 30/60/90 day
// cutoffs. Unavailable is returned only when savings or essentials were
// missing and no simulation ran.
type RunwayStatus string

const (
	RunwayCritical    RunwayStatus = "critical"
	RunwayModerate    RunwayStatus = "moderate"
	RunwayGood        RunwayStatus = "good"
	RunwayStrong      RunwayStatus = "strong"
	RunwayUnavailable RunwayStatus = "unavailable"
)

// RunwaySentinelDays marks a runway where replacement income covers
// essentials outright, so savings are never drawn down.
const RunwaySentinelDays = 999

// RunwaySentinelMonths is the months counterpart of RunwaySentinelDays.
var RunwaySentinelMonths = decimal.NewFromFloat(99.9)

// RunwayResult is the outcome of the savings depletion simulation.
type RunwayResult struct {
	Days          int             `json:"days"`
	Months        decimal.Decimal `json:"months"` // one decimal place
	Status        RunwayStatus    `json:"status"`
	VsAverageDays int             `json:"vs_average_days"`
	VsTargetDays  int             `json:"vs_target_days"`
}

// IndefinitelyCovered reports the sentinel "income covers essentials" case.
func (r RunwayResult) IndefinitelyCovered() bool {
	return r.Days == RunwaySentinelDays
}

// WaterfallEntry is one month of the fixed six-month income-replacement
// projection. CumulativeShortfall is non-decreasing across the sequence.
type WaterfallEntry struct {
	Month               int             `json:"month"` // 1..6
	Income              decimal.Decimal `json:"income"`
	IncomeSource        string          `json:"income_source"`
	Shortfall           decimal.Decimal `json:"shortfall"`
	CumulativeShortfall decimal.Decimal `json:"cumulative_shortfall"`
}

// PerceptionGap compares the user's runway estimate to the simulated value.
type PerceptionGap struct {
	EstimatedDays  decimal.Decimal `json:"estimated_days"`
	ActualDays     int             `json:"actual_days"`
	GapDays        decimal.Decimal `json:"gap_days"`
	Ratio          decimal.Decimal `json:"ratio"`
	Underestimated bool            `json:"underestimated"`
	Message        string          `json:"message"`
}

// RiskSeverity classifies a probability against its risk-type thresholds.
type RiskSeverity string

const (
	SeverityLow      RiskSeverity = "low"
	SeverityMedium   RiskSeverity = "medium"
	SeverityHigh     RiskSeverity = "high"
	SeverityVeryHigh RiskSeverity = "very-high"
)

// RiskFigure is one probability from the actuarial table, formatted for
// display and classified for severity.
type RiskFigure struct {
	Probability decimal.Decimal `json:"probability"` // percent
	Display     string          `json:"display"`
	Severity    RiskSeverity    `json:"severity"`
}

// RiskProfile is the age/smoking-bracketed lookup result.
type RiskProfile struct {
	Bracket         string     `json:"bracket"`
	Smoker          bool       `json:"smoker"`
	Death           RiskFigure `json:"death"`
	CriticalIllness RiskFigure `json:"critical_illness"`
	LongTermAbsence RiskFigure `json:"long_term_absence"`
}

// PillarScore is one pillar's accumulated points against its maximum. The
// mortgage eligibility maximum shrinks when LTI and/or DTI are unavailable.
type PillarScore struct {
	Score int `json:"score"`
	Max   int `json:"max"`
}

// Breakdown holds the four pillar accumulators. The sum of the four scores
// equals ScoringResult.RawScore exactly, and the sum of the four maxima
// equals MaxPossibleScore, so the final percentage is always measured against
// the answerable maximum rather than a fixed 90.
type Breakdown struct {
	MortgageEligibility PillarScore `json:"mortgage_eligibility"`
	AffordabilityBudget PillarScore `json:"affordability_budget"`
	FinancialResilience PillarScore `json:"financial_resilience"`
	ProtectionReadiness PillarScore `json:"protection_readiness"`
}

// Total returns the raw score across all pillars.
func (b Breakdown) Total() int {
	return b.MortgageEligibility.Score + b.AffordabilityBudget.Score +
		b.FinancialResilience.Score + b.ProtectionReadiness.Score
}

// MaxTotal returns the combined pillar maxima.
func (b Breakdown) MaxTotal() int {
	return b.MortgageEligibility.Max + b.AffordabilityBudget.Max +
		b.FinancialResilience.Max + b.ProtectionReadiness.Max
}

// HouseholdSummary aggregates the resolved household figures used throughout
// the computation.
type HouseholdSummary struct {
	Applicant         IncomeResolution `json:"applicant"`
	Partner           IncomeResolution `json:"partner"`
	GrossAnnualIncome decimal.Decimal  `json:"gross_annual_income"`
	MonthlyIncome     decimal.Decimal  `json:"monthly_income"` // net, self + partner
	MonthlyEssentials decimal.Decimal  `json:"monthly_essentials"`
	MonthlySurplus    decimal.Decimal  `json:"monthly_surplus"`
	LoanAmount        decimal.Decimal  `json:"loan_amount"`
	LTV               *decimal.Decimal `json:"ltv,omitempty"` // percent
}

// EmployerBenefitSummary echoes the declared employer and policy benefits.
type EmployerBenefitSummary struct {
	SickPay               bool            `json:"sick_pay"`
	SickPayMonths         int             `json:"sick_pay_months"`
	DeathInService        bool            `json:"death_in_service"`
	IncomeProtection      bool            `json:"income_protection"`
	IPMonthlyBenefit      decimal.Decimal `json:"ip_monthly_benefit"`
	IPDeferralMonths      int             `json:"ip_deferral_months"`
	IPBenefitPeriodMonths int             `json:"ip_benefit_period_months"`
}

// ScoringResult is the full engine output for one submission. It is built
// once per request and never mutated afterwards.
type ScoringResult struct {
	Score            int    `json:"score"` // 0..100
	RawScore         int    `json:"raw_score"`
	MaxPossibleScore int    `json:"max_possible_score"`
	Category         string `json:"category"`
	Interpretation   string `json:"interpretation"`

	Breakdown Breakdown `json:"breakdown"`

	LTI RatioResult `json:"lti"`
	DTI DTIResult   `json:"dti"`

	StateBenefit StateBenefit     `json:"state_benefit"`
	Runway       RunwayResult     `json:"runway"`
	Waterfall    []WaterfallEntry `json:"waterfall"`
	Perception   PerceptionGap    `json:"perception"`
	Risk         RiskProfile      `json:"risk"`

	Household        HouseholdSummary       `json:"household"`
	EmployerBenefits EmployerBenefitSummary `json:"employer_benefits"`

	Strengths    []string `json:"strengths"`    // capped at 4
	Improvements []string `json:"improvements"` // capped at 4

	Benchmarks UKBenchmarks `json:"benchmarks"`
}
