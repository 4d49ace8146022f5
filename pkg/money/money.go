// Package money wraps shopspring/decimal with euro formatting and the period
// conversions used throughout the calculator.
package money

import (
	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	weeksPerYear  = decimal.NewFromInt(52)
	daysPerYear   = decimal.NewFromInt(260)
)

// Money represents a monetary amount with proper financial precision.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal creates a Money from a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromString creates a Money from a string.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds to whole cents.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// PerMonth converts an annual amount to a monthly one.
func (m Money) PerMonth() Money {
	return Money{m.Decimal.Div(monthsPerYear)}
}

// PerWeek converts an annual amount to a weekly one.
func (m Money) PerWeek() Money {
	return Money{m.Decimal.Div(weeksPerYear)}
}

// PerDay converts an annual amount to a daily one, assuming a five-day week.
func (m Money) PerDay() Money {
	return Money{m.Decimal.Div(daysPerYear)}
}

// PerHour converts an annual amount to an hourly one for the given weekly
// hours. Zero or negative hours yield zero.
func (m Money) PerHour(hoursPerWeek decimal.Decimal) Money {
	if !hoursPerWeek.IsPositive() {
		return Zero()
	}
	return Money{m.Decimal.Div(weeksPerYear.Mul(hoursPerWeek))}
}

// Add adds another amount.
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another amount.
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// IsZero checks if the amount is zero.
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsPositive checks if the amount is positive.
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// String returns the amount with two decimals.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as euros.
func (m Money) Format() string {
	return "€ " + m.String()
}

// FormatDecimal formats a plain decimal as euros.
func FormatDecimal(d decimal.Decimal) string {
	return FromDecimal(d).Format()
}

// FormatPercent formats a decimal as a percentage with two decimals.
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}
