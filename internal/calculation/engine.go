package calculation

import (
	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
)

// Pillar maxima. The conceptual weights are 35/30/10/15 for a 90-point
// maximum; mortgage eligibility shrinks when LTI and/or DTI cannot be
// computed, and the final percentage is taken against the reduced maximum.
const (
	employmentMaxScore = 10
	creditMaxScore     = 7
	depositMaxScore    = 10
	surplusMaxScore    = 20
	emergencyMaxScore  = 10
	protectionMaxScore = 15

	maxAdviceEntries = 4
)

// Engine composes the calculators into the two operations exposed to the API
// layer: Validate and Calculate. It holds only immutable injected
// configuration, performs no I/O, and is safe for concurrent use.
type Engine struct {
	Benchmarks domain.UKBenchmarks
	RiskTable  domain.RiskTable
}

// NewEngine creates an engine over the given benchmark constants and
// actuarial risk table.
func NewEngine(benchmarks domain.UKBenchmarks, riskTable domain.RiskTable) *Engine {
	return &Engine{Benchmarks: benchmarks, RiskTable: riskTable}
}

// Validate checks the presence of the required categorical fields and the
// numeric sanity of property value and deposit. Errors are collected, never
// thrown; whatever passes here, Calculate will still degrade gracefully on.
func (e *Engine) Validate(in *domain.WellnessInput) domain.ValidationResult {
	var errs []string

	if in.Employment == "" {
		errs = append(errs, "employment status is required")
	} else if !in.Employment.Valid() {
		errs = append(errs, "employment status is not a recognised option")
	}
	if in.Credit == "" {
		errs = append(errs, "credit history is required")
	} else if !in.Credit.Valid() {
		errs = append(errs, "credit history is not a recognised option")
	}
	if in.MonthlySurplus == "" {
		errs = append(errs, "monthly surplus is required")
	} else if !in.MonthlySurplus.Valid() {
		errs = append(errs, "monthly surplus is not a recognised option")
	}
	if in.LifeCover == "" {
		errs = append(errs, "life cover level is required")
	} else if !in.LifeCover.Valid() {
		errs = append(errs, "life cover level is not a recognised option")
	}
	if in.IncomeCover == "" {
		errs = append(errs, "income protection level is required")
	} else if !in.IncomeCover.Valid() {
		errs = append(errs, "income protection level is not a recognised option")
	}
	if in.CriticalCover == "" {
		errs = append(errs, "critical illness cover level is required")
	} else if !in.CriticalCover.Valid() {
		errs = append(errs, "critical illness cover level is not a recognised option")
	}
	if in.EmergencyFund != "" && !in.EmergencyFund.Valid() {
		errs = append(errs, "emergency fund is not a recognised option")
	}
	if in.Deposit.GreaterThan(in.PropertyValue.Decimal) {
		errs = append(errs, "deposit cannot exceed the property value")
	}

	return domain.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// Calculate runs the full scoring pipeline. It assumes Validate has passed
// but does not depend on it: every numeric input has already been coerced to
// a non-negative value, and missing data degrades the relevant pillar rather
// than failing the computation.
func (e *Engine) Calculate(in *domain.WellnessInput) *domain.ScoringResult {
	advice := newAdviceCollector()

	// Household income.
	applicant := ResolveIncome(in.GrossAnnualIncome.Decimal, in.MonthlyIncome.Decimal)
	partner := ResolveIncome(in.PartnerGrossAnnualIncome.Decimal, in.PartnerMonthlyIncome.Decimal)
	grossAnnual := applicant.GrossAnnual.Add(partner.GrossAnnual)
	grossMonthly := decimal.Zero
	if grossAnnual.IsPositive() {
		grossMonthly = grossAnnual.Div(twelve)
	}

	// Loan amount: an explicit mortgage figure wins over the derived one.
	loanAmount := in.MortgageAmount.Decimal
	if !loanAmount.IsPositive() {
		loanAmount = decimal.Max(decimal.Zero, in.PropertyValue.Sub(in.Deposit.Decimal))
	}

	// Affordability ratios, reducing the answerable maximum when missing.
	lti := EvaluateLTI(loanAmount, grossAnnual)
	dti := EvaluateDTI(loanAmount, grossMonthly, in.MonthlyCommitments.Decimal, in.InterestRate.Decimal, in.MortgageTermYears)

	mortgageMax := employmentMaxScore + creditMaxScore + LTIMaxScore + DTIMaxScore
	if !lti.Available() {
		mortgageMax -= LTIMaxScore
	}
	if !dti.Available() {
		mortgageMax -= DTIMaxScore
	}
	adviceForRatio(advice, lti, "Borrowing sits comfortably within income multiples", "Borrowing is high relative to income; a larger deposit or higher income would help")
	adviceForRatio(advice, dti.RatioResult, "Monthly repayments leave healthy headroom", "Existing commitments plus the mortgage would strain monthly income")

	employmentScore := scoreEmployment(in.Employment, advice)
	creditScore := scoreCredit(in.Credit, advice)
	depositScore, ltv := scoreDeposit(in.PropertyValue.Decimal, in.Deposit.Decimal, advice)
	surplusScore := scoreSurplus(in.MonthlySurplus, advice)

	// Resilience simulations.
	benefit := ResolveStateBenefit(in.Employment, e.Benchmarks)
	runway := SimulateRunway(RunwayInputs{
		AccessibleSavings: in.AccessibleSavings.Decimal,
		MonthlyEssentials: in.MonthlyEssentials.Decimal,
		StateBenefit:      benefit,
		IPMonthlyBenefit:  in.IPMonthlyBenefit.Decimal,
		IPDeferralMonths:  in.IPDeferralMonths,
	}, e.Benchmarks)

	householdMonthly := in.MonthlyIncome.Add(in.PartnerMonthlyIncome.Decimal)
	waterfall := ProjectWaterfall(WaterfallInputs{
		MonthlyIncome:     in.MonthlyIncome.Decimal,
		MonthlyEssentials: in.MonthlyEssentials.Decimal,
		EmployerSickPay:   in.EmployerSickPay,
		SickPayMonths:     in.EmployerSickPayMonths,
		StateBenefit:      benefit,
		IPMonthlyBenefit:  in.IPMonthlyBenefit.Decimal,
		IPDeferralMonths:  in.IPDeferralMonths,
	})

	perception := AnalyzePerception(in.PerceivedRunwayMonths.Decimal, runway.Days)
	risk := LookupRisk(in.Age, in.Smoker, e.RiskTable)

	emergencyScore := scoreResilience(in, runway, advice)
	protectionScore := scoreProtection(in, advice)

	breakdown := domain.Breakdown{
		MortgageEligibility: domain.PillarScore{
			Score: employmentScore + creditScore + lti.ScoreValue() + dti.ScoreValue(),
			Max:   mortgageMax,
		},
		AffordabilityBudget: domain.PillarScore{
			Score: surplusScore + depositScore,
			Max:   surplusMaxScore + depositMaxScore,
		},
		FinancialResilience: domain.PillarScore{
			Score: emergencyScore,
			Max:   emergencyMaxScore,
		},
		ProtectionReadiness: domain.PillarScore{
			Score: protectionScore,
			Max:   protectionMaxScore,
		},
	}

	rawScore := breakdown.Total()
	maxPossible := breakdown.MaxTotal()
	finalScore := finalPercentage(rawScore, maxPossible)
	category, interpretation := interpretScore(finalScore)

	return &domain.ScoringResult{
		Score:            finalScore,
		RawScore:         rawScore,
		MaxPossibleScore: maxPossible,
		Category:         category,
		Interpretation:   interpretation,
		Breakdown:        breakdown,
		LTI:              lti,
		DTI:              dti,
		StateBenefit:     benefit,
		Runway:           runway,
		Waterfall:        waterfall,
		Perception:       perception,
		Risk:             risk,
		Household: domain.HouseholdSummary{
			Applicant:         applicant,
			Partner:           partner,
			GrossAnnualIncome: grossAnnual,
			MonthlyIncome:     householdMonthly,
			MonthlyEssentials: in.MonthlyEssentials.Decimal,
			MonthlySurplus:    householdMonthly.Sub(in.MonthlyEssentials.Decimal),
			LoanAmount:        loanAmount,
			LTV:               ltv,
		},
		EmployerBenefits: domain.EmployerBenefitSummary{
			SickPay:               in.EmployerSickPay,
			SickPayMonths:         in.EmployerSickPayMonths,
			DeathInService:        in.EmployerDeathInService,
			IncomeProtection:      in.HasIncomeProtection(),
			IPMonthlyBenefit:      in.IPMonthlyBenefit.Decimal,
			IPDeferralMonths:      in.IPDeferralMonths,
			IPBenefitPeriodMonths: in.IPBenefitPeriodMonths,
		},
		Strengths:    advice.strengths(),
		Improvements: advice.improvements(),
		Benchmarks:   e.Benchmarks,
	}
}

// finalPercentage converts the raw points into the 0..100 score against the
// answerable maximum.
func finalPercentage(rawScore, maxPossible int) int {
	if maxPossible <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(rawScore)).
		Div(decimal.NewFromInt(int64(maxPossible))).
		Mul(hundred)
	if pct.GreaterThan(hundred) {
		pct = hundred
	}
	return int(pct.Round(0).IntPart())
}

func interpretScore(score int) (category, interpretation string) {
	switch {
	case score >= 80:
		return "Mortgage ready",
			"Your finances look in strong shape for a mortgage application. A broker can help you secure the most competitive rates."
	case score >= 65:
		return "Nearly there",
			"You are close to a strong application. Addressing one or two of the areas below would widen your lender options."
	case score >= 50:
		return "Building",
			"You have solid foundations but a few areas need attention before most mainstream lenders would offer their best terms."
	default:
		return "Early days",
			"There is meaningful work to do before a mortgage application is likely to succeed. The improvement areas below are the place to start."
	}
}

func scoreEmployment(category domain.EmploymentCategory, advice *adviceCollector) int {
	var score int
	switch category {
	case domain.EmploymentPAYE12:
		score = 10
	case domain.EmploymentSelf2:
		score = 8
	case domain.EmploymentPAYEUnder:
		score = 7
	case domain.EmploymentContractor:
		score = 6
	case domain.EmploymentSelfUnder:
		score = 5
	case domain.EmploymentIrregular:
		score = 3
	default:
		score = 0
	}

	if score >= 8 {
		advice.addStrength("A stable employment track record that lenders like to see")
	} else if score <= 5 {
		advice.addImprovement("A longer employment or trading history would widen your lender options")
	}
	return score
}

func scoreCredit(category domain.CreditCategory, advice *adviceCollector) int {
	var score int
	switch category {
	case domain.CreditExcellent:
		score = 7
	case domain.CreditGood:
		score = 5
	case domain.CreditFair:
		score = 3
	case domain.CreditPoor:
		score = 1
	default:
		score = 0
	}

	if score == creditMaxScore {
		advice.addStrength("An excellent credit history")
	} else if score <= 3 {
		advice.addImprovement("Improving your credit file would unlock better rates")
	}
	return score
}

// scoreDeposit bands the loan-to-value at 75/85/90 percent. Returns the LTV
// alongside the score so the household summary can disclose it; nil when the
// property value is missing.
func scoreDeposit(propertyValue, deposit decimal.Decimal, advice *adviceCollector) (int, *decimal.Decimal) {
	if !propertyValue.IsPositive() {
		return 0, nil
	}

	ltv := propertyValue.Sub(deposit).Div(propertyValue).Mul(hundred)
	if ltv.IsNegative() {
		ltv = decimal.Zero
	}

	var score int
	switch {
	case ltv.LessThanOrEqual(decimal.NewFromInt(75)):
		score = 10
	case ltv.LessThanOrEqual(decimal.NewFromInt(85)):
		score = 8
	case ltv.LessThanOrEqual(decimal.NewFromInt(90)):
		score = 6
	default:
		score = 3
	}

	if score == depositMaxScore {
		advice.addStrength("A strong deposit relative to the property value")
	} else if score == 3 {
		advice.addImprovement("A larger deposit would bring you under the 90% LTV threshold most lenders prefer")
	}
	return score, &ltv
}

func scoreSurplus(category domain.SurplusCategory, advice *adviceCollector) int {
	var score int
	switch category {
	case domain.Surplus500Plus:
		score = 20
	case domain.Surplus250To500:
		score = 15
	case domain.Surplus100To250:
		score = 10
	case domain.SurplusUnder100:
		score = 5
	case domain.SurplusNone:
		score = 0
	default:
		score = 0
	}

	if score >= 15 {
		advice.addStrength("A healthy monthly surplus after essentials")
	} else if score <= 5 {
		advice.addImprovement("Freeing up more monthly surplus would strengthen affordability checks")
	}
	return score
}

// scoreResilience prefers the simulated runway whenever both accessible
// savings and monthly essentials were given; the legacy emergency-fund
// dropdown is consulted only when the simulation had nothing to run on.
func scoreResilience(in *domain.WellnessInput, runway domain.RunwayResult, advice *adviceCollector) int {
	var score int
	if runway.Status != domain.RunwayUnavailable {
		switch {
		case runway.Months.GreaterThanOrEqual(decimal.NewFromInt(6)):
			score = 10
		case runway.Months.GreaterThanOrEqual(decimal.NewFromInt(3)):
			score = 7
		case runway.Months.GreaterThanOrEqual(decimal.NewFromInt(1)):
			score = 4
		default:
			score = 0
		}
	} else {
		switch in.EmergencyFund {
		case domain.EmergencySixPlus:
			score = 10
		case domain.EmergencyThreeToSix:
			score = 7
		case domain.EmergencyOneToThree:
			score = 4
		default:
			score = 0
		}
	}

	if score >= 7 {
		advice.addStrength("Emergency savings that would carry you through a loss of income")
	} else if score <= 4 {
		advice.addImprovement("Building accessible emergency savings would extend your financial runway")
	}
	return score
}

func scoreProtection(in *domain.WellnessInput, advice *adviceCollector) int {
	total := protectionPoints(in.LifeCover) +
		protectionPoints(in.IncomeCover) +
		protectionPoints(in.CriticalCover)

	if total >= 12 {
		advice.addStrength("Comprehensive protection if the unexpected happens")
	} else if total <= 5 {
		advice.addImprovement("Little or no protection in place if your income stopped")
	}
	return total
}

func protectionPoints(level domain.ProtectionLevel) int {
	switch level {
	case domain.ProtectionFull:
		return 5
	case domain.ProtectionPartial:
		return 3
	default:
		return 0
	}
}

func adviceForRatio(advice *adviceCollector, r domain.RatioResult, strength, improvement string) {
	if !r.Available() {
		return
	}
	if r.ScoreValue() >= r.MaxScore-2 {
		advice.addStrength(strength)
	} else if r.ScoreValue() <= 3 {
		advice.addImprovement(improvement)
	}
}

// adviceCollector gathers strengths and improvements opportunistically as
// each scoring step runs, then truncates to the display cap.
type adviceCollector struct {
	strengthList    []string
	improvementList []string
}

func newAdviceCollector() *adviceCollector {
	return &adviceCollector{}
}

func (a *adviceCollector) addStrength(s string)    { a.strengthList = append(a.strengthList, s) }
func (a *adviceCollector) addImprovement(s string) { a.improvementList = append(a.improvementList, s) }

func (a *adviceCollector) strengths() []string {
	return capEntries(a.strengthList)
}

func (a *adviceCollector) improvements() []string {
	return capEntries(a.improvementList)
}

func capEntries(entries []string) []string {
	if len(entries) > maxAdviceEntries {
		return entries[:maxAdviceEntries]
	}
	return entries
}
