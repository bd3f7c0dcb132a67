package output

import (
	"github.com/brightpath-mortgages/wellness/internal/domain"
	"github.com/goccy/go-json"
)

// JSONFormatter renders the full scoring result as JSON, the shape the site's
// API layer returns to the front end.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

func (jf JSONFormatter) Name() string {
	if jf.Pretty {
		return "json"
	}
	return "json-compact"
}

func (jf JSONFormatter) Format(result *domain.ScoringResult) ([]byte, error) {
	if jf.Pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}
