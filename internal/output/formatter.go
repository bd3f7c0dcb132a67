package output

import (
	"fmt"

	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/shopspring/decimal"
)

// Formatter renders a scoring result into a byte stream for one output
// format.
type Formatter interface {
	Name() string
	Format(result *domain.ScoringResult) ([]byte, error)
}

// GetFormatterByName returns the formatter registered under the given name,
// or nil when the name is unknown.
func GetFormatterByName(name string) Formatter {
	switch name {
	case "console":
		return ConsoleFormatter{}
	case "json":
		return JSONFormatter{Pretty: true}
	case "json-compact":
		return JSONFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// FormatterNames lists the registered formatter names for CLI help text.
func FormatterNames() []string {
	return []string{"console", "json", "json-compact", "csv"}
}

// FormatCurrency renders a decimal as a pound amount with two decimals.
func FormatCurrency(d decimal.Decimal) string {
	return fmt.Sprintf("£%s", d.StringFixed(2))
}
