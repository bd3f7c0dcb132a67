package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSubmission(t *testing.T) {
	parser := NewInputParser()

	t.Run("valid submission", func(t *testing.T) {
		path := writeTempYAML(t, `
employment: paye-12
credit: excellent
property_value: 300000
deposit: 30000
monthly_surplus: 500-plus
life_cover: full
income_cover: none
critical_cover: partial
age: 34
monthly_income: 3000
accessible_savings: 5000
monthly_essentials: 1500
gross_annual_income: 60000
`)
		input, err := parser.LoadSubmission(path)
		require.NoError(t, err)

		assert.Equal(t, domain.EmploymentPAYE12, input.Employment)
		assert.Equal(t, domain.CreditExcellent, input.Credit)
		assert.True(t, input.PropertyValue.Equal(decimal.NewFromInt(300000)))
		assert.Equal(t, 34, input.Age)
	})

	t.Run("quoted numbers are coerced", func(t *testing.T) {
		path := writeTempYAML(t, `
employment: paye-12
accessible_savings: "5000"
monthly_essentials: "1,500"
`)
		input, err := parser.LoadSubmission(path)
		require.NoError(t, err)

		assert.True(t, input.AccessibleSavings.Equal(decimal.NewFromInt(5000)))
		// Junk like a thousands separator coerces to zero, never an error.
		assert.True(t, input.MonthlyEssentials.IsZero())
	})

	t.Run("negative amounts coerce to zero", func(t *testing.T) {
		path := writeTempYAML(t, `
employment: paye-12
deposit: -20000
`)
		input, err := parser.LoadSubmission(path)
		require.NoError(t, err)
		assert.True(t, input.Deposit.IsZero())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.LoadSubmission("/nonexistent/submission.yaml")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTempYAML(t, "employment: [unclosed")
		_, err := parser.LoadSubmission(path)
		assert.Error(t, err)
	})
}

func TestLoadBenchmarks(t *testing.T) {
	parser := NewInputParser()

	t.Run("partial override keeps defaults", func(t *testing.T) {
		path := writeTempYAML(t, `
ssp_monthly: 560.00
data_year: 2026
`)
		benchmarks, err := parser.LoadBenchmarks(path)
		require.NoError(t, err)

		assert.Equal(t, 2026, benchmarks.DataYear)
		assert.True(t, benchmarks.SSPMonthly.Equal(decimal.RequireFromString("560.00")))
		// Untouched fields fall back to the embedded rates.
		assert.True(t, benchmarks.ESAMonthly.Equal(decimal.RequireFromString("598.87")))
		assert.Equal(t, 90, benchmarks.TargetRunwayDays)
	})

	t.Run("zero rate is rejected", func(t *testing.T) {
		path := writeTempYAML(t, "ssp_monthly: 0")
		_, err := parser.LoadBenchmarks(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ssp_monthly must be positive")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := parser.LoadBenchmarks("/nonexistent/benchmarks.yaml")
		assert.Error(t, err)
	})
}

func TestLoadRiskTable(t *testing.T) {
	parser := NewInputParser()

	validTable := `
data_year: 2025
source: test tables
brackets:
  - label: 18-39
    min_age: 18
    max_age: 39
    death: {non_smoker: 0.5, smoker: 1.2}
    critical_illness: {non_smoker: 1.5, smoker: 3.0}
    long_term_absence: 7
  - label: 40-70
    min_age: 40
    max_age: 70
    death: {non_smoker: 3.5, smoker: 8.0}
    critical_illness: {non_smoker: 9.0, smoker: 16.0}
    long_term_absence: 18
thresholds:
  death: {medium: 2, high: 6, very_high: 12}
  critical_illness: {medium: 5, high: 12, very_high: 25}
  long_term_absence: {medium: 8, high: 15, very_high: 25}
`

	t.Run("valid table", func(t *testing.T) {
		table, err := parser.LoadRiskTable(writeTempYAML(t, validTable))
		require.NoError(t, err)

		require.Len(t, table.Brackets, 2)
		assert.Equal(t, "18-39", table.Brackets[0].Label)
		assert.True(t, table.Brackets[1].Death.Smoker.Equal(decimal.NewFromInt(8)))
		assert.True(t, table.Thresholds.Death.High.Equal(decimal.NewFromInt(6)))
	})

	t.Run("overlapping brackets are rejected", func(t *testing.T) {
		path := writeTempYAML(t, `
brackets:
  - label: 18-40
    min_age: 18
    max_age: 40
    death: {non_smoker: 0.5, smoker: 1.2}
    critical_illness: {non_smoker: 1.5, smoker: 3.0}
    long_term_absence: 7
  - label: 40-70
    min_age: 40
    max_age: 70
    death: {non_smoker: 3.5, smoker: 8.0}
    critical_illness: {non_smoker: 9.0, smoker: 16.0}
    long_term_absence: 18
thresholds:
  death: {medium: 2, high: 6, very_high: 12}
  critical_illness: {medium: 5, high: 12, very_high: 25}
  long_term_absence: {medium: 8, high: 15, very_high: 25}
`)
		_, err := parser.LoadRiskTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "overlaps previous bracket")
	})

	t.Run("empty table is rejected", func(t *testing.T) {
		_, err := parser.LoadRiskTable(writeTempYAML(t, "data_year: 2025"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one age bracket")
	})

	t.Run("descending thresholds are rejected", func(t *testing.T) {
		path := writeTempYAML(t, `
brackets:
  - label: 18-70
    min_age: 18
    max_age: 70
    death: {non_smoker: 0.5, smoker: 1.2}
    critical_illness: {non_smoker: 1.5, smoker: 3.0}
    long_term_absence: 7
thresholds:
  death: {medium: 6, high: 2, very_high: 12}
  critical_illness: {medium: 5, high: 12, very_high: 25}
  long_term_absence: {medium: 8, high: 15, very_high: 25}
`)
		_, err := parser.LoadRiskTable(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be ascending")
	})
}
