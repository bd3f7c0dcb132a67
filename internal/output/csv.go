package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/brightpath-mortgages/wellness/internal/domain"
)

// CSVFormatter emits a one-row summary followed by the six waterfall rows,
// for dropping into a spreadsheet.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.ScoringResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Score", "RawScore", "MaxPossibleScore", "Category",
		"MortgageEligibility", "AffordabilityBudget", "FinancialResilience", "ProtectionReadiness",
		"RunwayDays", "RunwayMonths", "RunwayStatus",
		"LTITier", "DTITier", "StateBenefit",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		strconv.Itoa(result.Score),
		strconv.Itoa(result.RawScore),
		strconv.Itoa(result.MaxPossibleScore),
		result.Category,
		pillarCell(result.Breakdown.MortgageEligibility),
		pillarCell(result.Breakdown.AffordabilityBudget),
		pillarCell(result.Breakdown.FinancialResilience),
		pillarCell(result.Breakdown.ProtectionReadiness),
		strconv.Itoa(result.Runway.Days),
		result.Runway.Months.StringFixed(1),
		string(result.Runway.Status),
		string(result.LTI.Tier),
		string(result.DTI.Tier),
		string(result.StateBenefit.Type),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"Month", "Income", "IncomeSource", "Shortfall", "CumulativeShortfall"}); err != nil {
		return nil, err
	}
	for _, entry := range result.Waterfall {
		if err := w.Write([]string{
			strconv.Itoa(entry.Month),
			entry.Income.StringFixed(2),
			entry.IncomeSource,
			entry.Shortfall.StringFixed(2),
			entry.CumulativeShortfall.StringFixed(2),
		}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func pillarCell(p domain.PillarScore) string {
	return strconv.Itoa(p.Score) + "/" + strconv.Itoa(p.Max)
}
