package calculation

import (
	"testing"

	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateLTI_Bands(t *testing.T) {
	income := decimal.NewFromInt(100000)

	tests := []struct {
		name          string
		loan          decimal.Decimal
		expectedScore int
		expectedTier  domain.RatioTier
	}{
		{"well under 3.5x", decimal.NewFromInt(300000), 10, domain.TierExcellent},
		{"just under 3.5x", decimal.NewFromInt(349999), 10, domain.TierExcellent},
		{"exactly 3.5x falls into good", decimal.NewFromInt(350000), 8, domain.TierGood},
		{"exactly 4.0x falls into acceptable", decimal.NewFromInt(400000), 6, domain.TierAcceptable},
		{"exactly 4.5x falls into stretched", decimal.NewFromInt(450000), 3, domain.TierStretched},
		{"5x and above is difficult", decimal.NewFromInt(500000), 1, domain.TierDifficult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateLTI(tt.loan, income)
			require.True(t, result.Available())
			assert.Equal(t, tt.expectedScore, result.ScoreValue())
			assert.Equal(t, tt.expectedTier, result.Tier)
			assert.Equal(t, LTIMaxScore, result.MaxScore)
		})
	}
}

func TestEvaluateLTI_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		loan   decimal.Decimal
		income decimal.Decimal
	}{
		{"no income", decimal.NewFromInt(200000), decimal.Zero},
		{"no loan", decimal.Zero, decimal.NewFromInt(50000)},
		{"neither", decimal.Zero, decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateLTI(tt.loan, tt.income)
			assert.False(t, result.Available())
			assert.Nil(t, result.Ratio)
			assert.Nil(t, result.Score)
			assert.Equal(t, domain.TierUnavailable, result.Tier)
			assert.Equal(t, 0, result.ScoreValue())
		})
	}
}

func TestMonthlyPayment(t *testing.T) {
	// 200k over 25 years at 4.5% is a well-known ~1111.67/month.
	payment := MonthlyPayment(decimal.NewFromInt(200000), decimal.NewFromFloat(4.5), 300)
	assert.InDelta(t, 1111.67, payment.InexactFloat64(), 0.5)
}

func TestMonthlyPayment_ZeroRateStraightLine(t *testing.T) {
	// The annuity formula divides by zero at 0%; near-zero rates fall back
	// to straight-line repayment.
	payment := MonthlyPayment(decimal.NewFromInt(120000), decimal.Zero, 300)
	assert.True(t, payment.Equal(decimal.NewFromInt(400)), "got %s", payment)

	payment = MonthlyPayment(decimal.NewFromInt(120000), decimal.NewFromFloat(0.005), 300)
	assert.True(t, payment.Equal(decimal.NewFromInt(400)), "got %s", payment)
}

func TestEvaluateDTI_Bands(t *testing.T) {
	// Commitments-only DTI keeps the payment out of the picture so the
	// band edges can be pinned exactly.
	income := decimal.NewFromInt(4000)

	tests := []struct {
		name          string
		commitments   decimal.Decimal
		expectedScore int
		expectedTier  domain.RatioTier
	}{
		{"under 25 percent", decimal.NewFromInt(900), 8, domain.TierExcellent},
		{"exactly 25 percent falls into good", decimal.NewFromInt(1000), 6, domain.TierGood},
		{"exactly 35 percent falls into stretched", decimal.NewFromInt(1400), 3, domain.TierStretched},
		{"45 percent and above is high", decimal.NewFromInt(1800), 1, domain.TierHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateDTI(decimal.Zero, income, tt.commitments, decimal.Zero, 0)
			require.True(t, result.Available())
			assert.Equal(t, tt.expectedScore, result.ScoreValue())
			assert.Equal(t, tt.expectedTier, result.Tier)
			assert.True(t, result.MortgagePayment.IsZero())
		})
	}
}

func TestEvaluateDTI_WithMortgagePayment(t *testing.T) {
	// 270k at the default 4.5%/25y is ~1500.75/month; on 5000 gross
	// monthly that's ~30%, the good band.
	result := EvaluateDTI(decimal.NewFromInt(270000), decimal.NewFromInt(5000), decimal.Zero, decimal.Zero, 0)

	require.True(t, result.Available())
	assert.Equal(t, 6, result.ScoreValue())
	assert.Equal(t, domain.TierGood, result.Tier)
	assert.InDelta(t, 1500.75, result.MortgagePayment.InexactFloat64(), 1.0)
	assert.InDelta(t, 30.0, result.Ratio.InexactFloat64(), 0.2)

	// The stress payment at 6.5% must exceed the scored payment.
	assert.True(t, result.StressPayment.GreaterThan(result.MortgagePayment),
		"stress %s should exceed payment %s", result.StressPayment, result.MortgagePayment)
}

func TestEvaluateDTI_Unavailable(t *testing.T) {
	tests := []struct {
		name        string
		loan        decimal.Decimal
		income      decimal.Decimal
		commitments decimal.Decimal
	}{
		{"no income", decimal.NewFromInt(200000), decimal.Zero, decimal.NewFromInt(300)},
		{"no loan and no commitments", decimal.Zero, decimal.NewFromInt(4000), decimal.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EvaluateDTI(tt.loan, tt.income, tt.commitments, decimal.Zero, 0)
			assert.False(t, result.Available())
			assert.Nil(t, result.Score)
			assert.Equal(t, domain.TierUnavailable, result.Tier)
			assert.Equal(t, DTIMaxScore, result.MaxScore)
		})
	}
}
