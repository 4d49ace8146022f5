package output

import (
	"fmt"
	"strings"

	"github.com/nltax/income-calculator/internal/domain"
	"github.com/nltax/income-calculator/pkg/money"
)

// ConsoleFormatter renders the summary as an aligned text table.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(summary *domain.TaxSummary) ([]byte, error) {
	var b strings.Builder

	if summary.Err != "" {
		fmt.Fprintf(&b, "error: %s\n", summary.Err)
		return []byte(b.String()), nil
	}

	for _, row := range summary.Breakdown {
		fmt.Fprintf(&b, "%-34s %16s\n", row.Description, money.FormatDecimal(row.Amount))
	}

	if d := summary.Details; d != nil {
		b.WriteString(strings.Repeat("-", 51) + "\n")
		fmt.Fprintf(&b, "%-34s %16s\n", "Net per month", money.FormatDecimal(d.NetMonth))
		fmt.Fprintf(&b, "%-34s %16s\n", "Net per week", money.FormatDecimal(d.NetWeek))
		fmt.Fprintf(&b, "%-34s %16s\n", "Net per day", money.FormatDecimal(d.NetDay))
		if d.NetHour.IsPositive() {
			fmt.Fprintf(&b, "%-34s %16s\n", "Net per hour", money.FormatDecimal(d.NetHour))
		}
		if d.TaxFreePercent.IsPositive() {
			fmt.Fprintf(&b, "%-34s %16s\n", "Tax-free share", money.FormatPercent(d.TaxFreePercent))
		}
	}

	return []byte(b.String()), nil
}
