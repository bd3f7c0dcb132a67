package calculation

import (
	"testing"

	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveStateBenefit(t *testing.T) {
	benchmarks := domain.DefaultUKBenchmarks()

	tests := []struct {
		name         string
		category     domain.EmploymentCategory
		expectedType domain.BenefitType
	}{
		{"PAYE 12+ months gets SSP", domain.EmploymentPAYE12, domain.BenefitSSP},
		{"PAYE under 12 months gets SSP", domain.EmploymentPAYEUnder, domain.BenefitSSP},
		{"contractor gets SSP", domain.EmploymentContractor, domain.BenefitSSP},
		{"self-employed 2+ years gets ESA", domain.EmploymentSelf2, domain.BenefitESA},
		{"self-employed under 2 years gets ESA", domain.EmploymentSelfUnder, domain.BenefitESA},
		{"irregular gets ESA", domain.EmploymentIrregular, domain.BenefitESA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			benefit := ResolveStateBenefit(tt.category, benchmarks)
			assert.Equal(t, tt.expectedType, benefit.Type)
			assert.True(t, benefit.MonthlyAmount.IsPositive())
			assert.True(t, benefit.WeeklyRate.IsPositive())
		})
	}
}

func TestResolveStateBenefit_SSPCarriesMaxDuration(t *testing.T) {
	benefit := ResolveStateBenefit(domain.EmploymentPAYE12, domain.DefaultUKBenchmarks())

	require.NotNil(t, benefit.MaxDurationWeeks)
	assert.Equal(t, 28, *benefit.MaxDurationWeeks)
	assert.True(t, benefit.MonthlyAmount.Equal(domain.DefaultUKBenchmarks().SSPMonthly))
}

func TestResolveStateBenefit_UnknownCategoryDefaultsToESAWithCaveat(t *testing.T) {
	benefit := ResolveStateBenefit(domain.EmploymentCategory("gig-economy"), domain.DefaultUKBenchmarks())

	assert.Equal(t, domain.BenefitESA, benefit.Type)
	assert.Nil(t, benefit.MaxDurationWeeks)
	assert.Contains(t, benefit.EligibilityNote, "uncertain")
}
