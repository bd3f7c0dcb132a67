package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzePerception(t *testing.T) {
	tests := []struct {
		name            string
		estimatedMonths decimal.Decimal
		actualDays      int
		expectedMessage string
		underestimated  bool
	}{
		{
			name:            "underestimated by more than 30 days",
			estimatedMonths: decimal.NewFromInt(3), // 91.32 days
			actualDays:      158,
			expectedMessage: "Your financial position is better than you thought",
			underestimated:  true,
		},
		{
			name:            "overestimated by more than 30 days",
			estimatedMonths: decimal.NewFromInt(12), // 365.28 days
			actualDays:      158,
			expectedMessage: "Your savings would run out sooner than you thought",
		},
		{
			name:            "close to reality",
			estimatedMonths: decimal.NewFromInt(5), // 152.2 days
			actualDays:      158,
			expectedMessage: "Your estimate is close to reality",
			underestimated:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gap := AnalyzePerception(tt.estimatedMonths, tt.actualDays)
			assert.Equal(t, tt.expectedMessage, gap.Message)
			assert.Equal(t, tt.underestimated, gap.Underestimated)
			assert.Equal(t, tt.actualDays, gap.ActualDays)
		})
	}
}

func TestAnalyzePerception_Ratio(t *testing.T) {
	gap := AnalyzePerception(decimal.NewFromInt(3), 158)
	// 158 / 91.32 ≈ 1.73
	assert.InDelta(t, 1.73, gap.Ratio.InexactFloat64(), 0.01)
}

func TestAnalyzePerception_ZeroEstimate(t *testing.T) {
	gap := AnalyzePerception(decimal.Zero, 120)

	assert.True(t, gap.Ratio.IsZero())
	assert.True(t, gap.EstimatedDays.IsZero())
	assert.True(t, gap.Underestimated)
	assert.Equal(t, "Your financial position is better than you thought", gap.Message)
}
