package calculation

import (
	"fmt"

	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// LTIMaxScore and DTIMaxScore are the pillar points each ratio can
	// contribute; the pillar maximum drops by the same amount when the
	// ratio cannot be computed.
	LTIMaxScore = 10
	DTIMaxScore = 8

	// DefaultMortgageTermYears applies when the submission omits a term.
	DefaultMortgageTermYears = 25
)

var (
	// DefaultAnnualRate is the assumed mortgage rate (percent) when none
	// is supplied.
	DefaultAnnualRate = decimal.NewFromFloat(4.5)

	// StressAnnualRate is the fixed regulatory stress-test rate (percent).
	// The stress payment is disclosed alongside the DTI but never scored.
	StressAnnualRate = decimal.NewFromFloat(6.5)
)

var hundred = decimal.NewFromInt(100)

// EvaluateLTI computes the loan-to-income ratio. Unavailable when either the
// loan amount or the gross annual income is missing. Band edges are
// half-open: a ratio of exactly 3.5 falls in the good band, not excellent.
func EvaluateLTI(loanAmount, grossAnnualIncome decimal.Decimal) domain.RatioResult {
	if loanAmount.LessThanOrEqual(decimal.Zero) || grossAnnualIncome.LessThanOrEqual(decimal.Zero) {
		return unavailableRatio(LTIMaxScore, "Loan-to-income could not be assessed from the details given")
	}

	ratio := loanAmount.Div(grossAnnualIncome)

	var score int
	var tier domain.RatioTier
	var desc string
	switch {
	case ratio.LessThan(decimal.NewFromFloat(3.5)):
		score, tier, desc = 10, domain.TierExcellent, "Comfortably within standard lending multiples"
	case ratio.LessThan(decimal.NewFromFloat(4.0)):
		score, tier, desc = 8, domain.TierGood, "Within standard lending multiples"
	case ratio.LessThan(decimal.NewFromFloat(4.5)):
		score, tier, desc = 6, domain.TierAcceptable, "Close to the regulatory 4.5x cap but acceptable to most lenders"
	case ratio.LessThan(decimal.NewFromFloat(5.0)):
		score, tier, desc = 3, domain.TierStretched, "Above the 4.5x cap; only specialist lenders are likely to consider this"
	default:
		score, tier, desc = 1, domain.TierDifficult, "Borrowing this high relative to income is very difficult to place"
	}

	return domain.RatioResult{
		Ratio:       &ratio,
		Score:       &score,
		Tier:        tier,
		Description: desc,
		MaxScore:    LTIMaxScore,
		Display:     fmt.Sprintf("%sx income", ratio.StringFixed(2)),
	}
}

// EvaluateDTI computes the debt-to-income ratio as a percentage of gross
// monthly income consumed by the projected mortgage payment plus declared
// commitments. It requires a positive gross monthly income and at least one
// of loan amount or commitments. annualRatePct and termYears fall back to the
// defaults when non-positive.
func EvaluateDTI(loanAmount, grossMonthlyIncome, monthlyCommitments, annualRatePct decimal.Decimal, termYears int) domain.DTIResult {
	if grossMonthlyIncome.LessThanOrEqual(decimal.Zero) ||
		(loanAmount.LessThanOrEqual(decimal.Zero) && monthlyCommitments.LessThanOrEqual(decimal.Zero)) {
		return domain.DTIResult{
			RatioResult: unavailableRatio(DTIMaxScore, "Debt-to-income could not be assessed from the details given"),
		}
	}

	if annualRatePct.LessThanOrEqual(decimal.Zero) {
		annualRatePct = DefaultAnnualRate
	}
	if termYears <= 0 {
		termYears = DefaultMortgageTermYears
	}
	termMonths := termYears * 12

	var payment, stress decimal.Decimal
	if loanAmount.IsPositive() {
		payment = MonthlyPayment(loanAmount, annualRatePct, termMonths)
		stress = MonthlyPayment(loanAmount, StressAnnualRate, termMonths)
	}

	ratio := payment.Add(monthlyCommitments).Div(grossMonthlyIncome).Mul(hundred)

	var score int
	var tier domain.RatioTier
	var desc string
	switch {
	case ratio.LessThan(decimal.NewFromInt(25)):
		score, tier, desc = 8, domain.TierExcellent, "Repayments leave plenty of headroom each month"
	case ratio.LessThan(decimal.NewFromInt(35)):
		score, tier, desc = 6, domain.TierGood, "Repayments are a manageable share of income"
	case ratio.LessThan(decimal.NewFromInt(45)):
		score, tier, desc = 3, domain.TierStretched, "Repayments take a large share of income"
	default:
		score, tier, desc = 1, domain.TierHigh, "Repayments would dominate monthly income"
	}

	return domain.DTIResult{
		RatioResult: domain.RatioResult{
			Ratio:       &ratio,
			Score:       &score,
			Tier:        tier,
			Description: desc,
			MaxScore:    DTIMaxScore,
			Display:     fmt.Sprintf("%s%% of gross monthly income", ratio.StringFixed(1)),
		},
		MortgagePayment: payment.Round(2),
		StressPayment:   stress.Round(2),
	}
}

// MonthlyPayment is the standard fixed-rate amortizing payment
// L*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate derived from the annual
// percentage and n the term in months. The annuity formula is undefined at a
// zero rate, so rates under 0.01% annual use the straight-line L/n payment.
func MonthlyPayment(loanAmount, annualRatePct decimal.Decimal, termMonths int) decimal.Decimal {
	if termMonths <= 0 {
		return decimal.Zero
	}
	n := decimal.NewFromInt(int64(termMonths))
	if annualRatePct.LessThan(decimal.NewFromFloat(0.01)) {
		return loanAmount.Div(n)
	}

	r := annualRatePct.Div(hundred).Div(twelve)
	factor := decimal.NewFromInt(1).Add(r).Pow(n)
	return loanAmount.Mul(r).Mul(factor).Div(factor.Sub(decimal.NewFromInt(1)))
}

func unavailableRatio(maxScore int, desc string) domain.RatioResult {
	return domain.RatioResult{
		Tier:        domain.TierUnavailable,
		Description: desc,
		MaxScore:    maxScore,
		Display:     "Not enough information",
	}
}
