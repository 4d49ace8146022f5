package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nltax/income-calculator/internal/domain"
)

// annualMultipliers converts a periodic income figure to an annual one.
// Hourly input has no fixed multiplier; it depends on the weekly hours.
var annualMultipliers = map[domain.Period]int64{
	domain.PeriodYear:  1,
	domain.PeriodMonth: 12,
	domain.PeriodWeek:  52,
	domain.PeriodDay:   260,
}

var weeksPerYear = decimal.NewFromInt(52)

// AnnualIncome converts a user-entered income/period/hours tuple into an
// annual income. Non-positive income yields zero; an unknown period falls
// back to yearly.
func AnnualIncome(income decimal.Decimal, period domain.Period, hoursPerWeek decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	if period == domain.PeriodHour {
		return income.Mul(hoursPerWeek).Mul(weeksPerYear)
	}
	mult, ok := annualMultipliers[period]
	if !ok {
		mult = 1
	}
	return income.Mul(decimal.NewFromInt(mult))
}
