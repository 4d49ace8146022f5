package domain

import (
	"github.com/shopspring/decimal"
)

// Figures is the full set of named amounts a payroll calculation produces.
// Every field defaults to zero; a calculator that leaves a figure unset still
// yields a usable result.
type Figures struct {
	GrossYear      decimal.Decimal `json:"grossYear"`
	GrossMonth     decimal.Decimal `json:"grossMonth"`
	GrossWeek      decimal.Decimal `json:"grossWeek"`
	GrossDay       decimal.Decimal `json:"grossDay"`
	GrossHour      decimal.Decimal `json:"grossHour"`
	GrossAllowance decimal.Decimal `json:"grossAllowance"`

	TaxFreeYear    decimal.Decimal `json:"taxFreeYear"`
	TaxFreePercent decimal.Decimal `json:"taxFreePercent"`
	TaxableYear    decimal.Decimal `json:"taxableYear"`

	PayrollTax       decimal.Decimal `json:"payrollTax"`
	SocialTax        decimal.Decimal `json:"socialTax"`
	TaxWithoutCredit decimal.Decimal `json:"taxWithoutCredit"`
	GeneralCredit    decimal.Decimal `json:"generalCredit"`
	LabourCredit     decimal.Decimal `json:"labourCredit"`
	IncomeTax        decimal.Decimal `json:"incomeTax"`

	NetYear      decimal.Decimal `json:"netYear"`
	NetAllowance decimal.Decimal `json:"netAllowance"`
	NetMonth     decimal.Decimal `json:"netMonth"`
	NetWeek      decimal.Decimal `json:"netWeek"`
	NetDay       decimal.Decimal `json:"netDay"`
	NetHour      decimal.Decimal `json:"netHour"`
}

// BreakdownRow is one display line of the summary.
type BreakdownRow struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// TaxSummary is the display-ready result of one calculation. It is derived,
// never mutated in place; a failed calculation yields the empty summary with
// Err set.
type TaxSummary struct {
	TaxableBase  decimal.Decimal `json:"taxableBase"`
	EstimatedTax decimal.Decimal `json:"estimatedTax"`
	NetIncome    decimal.Decimal `json:"netIncome"`
	Breakdown    []BreakdownRow  `json:"breakdown"`
	Details      *Figures        `json:"details"`
	Err          string          `json:"error,omitempty"`
}

// EmptyTaxSummary is the canonical all-zero result used for non-positive
// income and for absorbed calculation failures.
func EmptyTaxSummary() TaxSummary {
	return TaxSummary{
		TaxableBase:  decimal.Zero,
		EstimatedTax: decimal.Zero,
		NetIncome:    decimal.Zero,
		Breakdown:    []BreakdownRow{},
		Details:      nil,
	}
}
