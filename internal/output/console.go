package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	scoreStyle    = lipgloss.NewStyle().Bold(true)
	strengthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	improveStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// ConsoleFormatter renders the human-readable report brokers read during a
// call.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.ScoringResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, titleStyle.Render("FINANCIAL WELLNESS REPORT"))
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "%s  %s\n",
		scoreStyle.Render(fmt.Sprintf("Score: %d/100", result.Score)),
		result.Category)
	fmt.Fprintln(&buf, result.Interpretation)
	fmt.Fprintf(&buf, "%s\n\n", mutedStyle.Render(
		fmt.Sprintf("(%d of %d available points)", result.RawScore, result.MaxPossibleScore)))

	fmt.Fprintln(&buf, sectionStyle.Render("PILLAR BREAKDOWN"))
	writePillar(&buf, "Mortgage Eligibility", result.Breakdown.MortgageEligibility)
	writePillar(&buf, "Affordability & Budget", result.Breakdown.AffordabilityBudget)
	writePillar(&buf, "Financial Resilience", result.Breakdown.FinancialResilience)
	writePillar(&buf, "Protection Readiness", result.Breakdown.ProtectionReadiness)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("AFFORDABILITY RATIOS"))
	fmt.Fprintf(&buf, "  Loan-to-income:  %-28s %s\n", result.LTI.Display, mutedStyle.Render(string(result.LTI.Tier)))
	fmt.Fprintf(&buf, "  Debt-to-income:  %-28s %s\n", result.DTI.Display, mutedStyle.Render(string(result.DTI.Tier)))
	if result.DTI.Available() {
		fmt.Fprintf(&buf, "  Projected payment: %s (stress-tested: %s)\n",
			FormatCurrency(result.DTI.MortgagePayment), FormatCurrency(result.DTI.StressPayment))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render("FINANCIAL RUNWAY"))
	if result.Runway.Status == domain.RunwayUnavailable {
		fmt.Fprintln(&buf, "  Not enough information to simulate a runway.")
	} else if result.Runway.IndefinitelyCovered() {
		fmt.Fprintf(&buf, "  Replacement income covers essentials indefinitely (%s).\n", result.StateBenefit.Label)
	} else {
		fmt.Fprintf(&buf, "  %d days (%s months), status %s\n",
			result.Runway.Days, result.Runway.Months.StringFixed(1), result.Runway.Status)
		fmt.Fprintf(&buf, "  vs UK average: %+d days, vs target: %+d days\n",
			result.Runway.VsAverageDays, result.Runway.VsTargetDays)
	}
	fmt.Fprintf(&buf, "  %s\n\n", mutedStyle.Render(result.Perception.Message))

	fmt.Fprintln(&buf, sectionStyle.Render("SIX-MONTH INCOME PROJECTION"))
	fmt.Fprintf(&buf, "  %-6s %-12s %-40s %-12s %s\n", "Month", "Income", "Source", "Shortfall", "Cumulative")
	for _, entry := range result.Waterfall {
		fmt.Fprintf(&buf, "  %-6d %-12s %-40s %-12s %s\n",
			entry.Month,
			FormatCurrency(entry.Income),
			entry.IncomeSource,
			FormatCurrency(entry.Shortfall),
			FormatCurrency(entry.CumulativeShortfall))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, sectionStyle.Render(fmt.Sprintf("RISK OUTLOOK (age bracket %s)", result.Risk.Bracket)))
	fmt.Fprintf(&buf, "  Death:             %-8s %s\n", result.Risk.Death.Display, mutedStyle.Render(string(result.Risk.Death.Severity)))
	fmt.Fprintf(&buf, "  Critical illness:  %-8s %s\n", result.Risk.CriticalIllness.Display, mutedStyle.Render(string(result.Risk.CriticalIllness.Severity)))
	fmt.Fprintf(&buf, "  Long-term absence: %-8s %s\n", result.Risk.LongTermAbsence.Display, mutedStyle.Render(string(result.Risk.LongTermAbsence.Severity)))
	fmt.Fprintln(&buf)

	if len(result.Strengths) > 0 {
		fmt.Fprintln(&buf, sectionStyle.Render("STRENGTHS"))
		for _, s := range result.Strengths {
			fmt.Fprintf(&buf, "  %s\n", strengthStyle.Render("+ "+s))
		}
		fmt.Fprintln(&buf)
	}
	if len(result.Improvements) > 0 {
		fmt.Fprintln(&buf, sectionStyle.Render("AREAS TO IMPROVE"))
		for _, s := range result.Improvements {
			fmt.Fprintf(&buf, "  %s\n", improveStyle.Render("- "+s))
		}
		fmt.Fprintln(&buf)
	}

	fmt.Fprintln(&buf, mutedStyle.Render(fmt.Sprintf(
		"Benchmark data year %d, review by %s.", result.Benchmarks.DataYear, result.Benchmarks.ReviewBy)))

	return buf.Bytes(), nil
}

func writePillar(buf *bytes.Buffer, label string, p domain.PillarScore) {
	bar := renderBar(p.Score, p.Max, 20)
	fmt.Fprintf(buf, "  %-24s %s %d/%d\n", label, bar, p.Score, p.Max)
}

func renderBar(score, max, width int) string {
	if max <= 0 {
		return strings.Repeat("░", width)
	}
	filled := score * width / max
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
