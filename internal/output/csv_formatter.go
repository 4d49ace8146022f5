package output

import (
	"fmt"
	"strings"

	"github.com/nltax/income-calculator/internal/domain"
)

// CSVFormatter renders the breakdown as description,amount lines.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(summary *domain.TaxSummary) ([]byte, error) {
	var b strings.Builder
	b.WriteString("description,amount\n")
	if summary.Err != "" {
		fmt.Fprintf(&b, "error,%q\n", summary.Err)
		return []byte(b.String()), nil
	}
	for _, row := range summary.Breakdown {
		fmt.Fprintf(&b, "%q,%s\n", row.Description, row.Amount.StringFixed(2))
	}
	return []byte(b.String()), nil
}
