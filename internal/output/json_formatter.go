package output

import (
	json "github.com/goccy/go-json"

	"github.com/nltax/income-calculator/internal/domain"
)

// JSONFormatter renders the summary as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(summary *domain.TaxSummary) ([]byte, error) {
	return json.MarshalIndent(summary, "", "  ")
}
