package config

import (
	"fmt"
	"os"

	"github.com/brightpath-mortgages/wellness/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser loads submissions and configuration artifacts from YAML files.
// Engine-level validation of submission content belongs to Engine.Validate;
// the parser only guards the configuration it hands to the engine.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadSubmission loads a household wellness submission from a YAML file.
// Numeric fields are coerced defensively, so a malformed number never fails
// the load.
func (ip *InputParser) LoadSubmission(filename string) (*domain.WellnessInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var input domain.WellnessInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &input, nil
}

// LoadBenchmarks loads a UK benchmark override file. Fields left unset fall
// back to the embedded defaults so a partial override stays usable.
func (ip *InputParser) LoadBenchmarks(filename string) (domain.UKBenchmarks, error) {
	benchmarks := domain.DefaultUKBenchmarks()

	data, err := os.ReadFile(filename)
	if err != nil {
		return benchmarks, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &benchmarks); err != nil {
		return benchmarks, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateBenchmarks(benchmarks); err != nil {
		return benchmarks, fmt.Errorf("benchmark validation failed: %w", err)
	}

	return benchmarks, nil
}

// LoadRiskTable loads an actuarial risk table from a YAML file.
func (ip *InputParser) LoadRiskTable(filename string) (domain.RiskTable, error) {
	var table domain.RiskTable

	data, err := os.ReadFile(filename)
	if err != nil {
		return table, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, &table); err != nil {
		return table, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateRiskTable(&table); err != nil {
		return table, fmt.Errorf("risk table validation failed: %w", err)
	}

	return table, nil
}

func validateBenchmarks(b domain.UKBenchmarks) error {
	if !b.SSPMonthly.IsPositive() {
		return fmt.Errorf("ssp_monthly must be positive")
	}
	if !b.ESAMonthly.IsPositive() {
		return fmt.Errorf("esa_monthly must be positive")
	}
	if b.TargetRunwayDays <= 0 {
		return fmt.Errorf("target_runway_days must be positive")
	}
	if b.AverageRunwayDays <= 0 {
		return fmt.Errorf("average_runway_days must be positive")
	}
	return nil
}

func validateRiskTable(t *domain.RiskTable) error {
	if len(t.Brackets) == 0 {
		return fmt.Errorf("at least one age bracket is required")
	}
	for i, b := range t.Brackets {
		if b.MinAge > b.MaxAge {
			return fmt.Errorf("bracket %d (%s): min_age exceeds max_age", i, b.Label)
		}
		if i > 0 && b.MinAge <= t.Brackets[i-1].MaxAge {
			return fmt.Errorf("bracket %d (%s): overlaps previous bracket", i, b.Label)
		}
	}
	for name, bands := range map[string]domain.SeverityBands{
		"death":             t.Thresholds.Death,
		"critical_illness":  t.Thresholds.CriticalIllness,
		"long_term_absence": t.Thresholds.LongTermAbsence,
	} {
		if bands.Medium.GreaterThan(bands.High) || bands.High.GreaterThan(bands.VeryHigh) {
			return fmt.Errorf("thresholds for %s must be ascending", name)
		}
	}
	return nil
}
