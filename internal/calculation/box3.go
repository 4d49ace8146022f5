package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nltax/income-calculator/internal/domain"
)

// Box3Note is a rough savings-tax estimate: tax on a notional return over
// assets above the tax-free allowance. It is a note alongside the Box 1
// summary, never part of its breakdown.
type Box3Note struct {
	TaxableBase    decimal.Decimal `json:"taxableBase"`
	NotionalReturn decimal.Decimal `json:"notionalReturn"`
	EstimatedTax   decimal.Decimal `json:"estimatedTax"`
}

// Box3Estimate estimates Box 3 savings tax for a year. Fiscal partners share
// a doubled allowance. Debts reduce the asset base; a base at or below the
// allowance owes nothing.
func Box3Estimate(assets, debts decimal.Decimal, fiscalPartner bool, year int) (*Box3Note, error) {
	rules, err := domain.Rules(year)
	if err != nil {
		return nil, err
	}
	allowance := rules.Box3.Allowance
	if fiscalPartner {
		allowance = allowance.Mul(decimal.NewFromInt(2))
	}
	base := assets.Sub(debts).Sub(allowance)
	if base.IsNegative() {
		base = decimal.Zero
	}
	notional := base.Mul(rules.Box3.NotionalReturn)
	return &Box3Note{
		TaxableBase:    base.Round(2),
		NotionalReturn: notional.Round(2),
		EstimatedTax:   notional.Mul(rules.Box3.TaxRate).Round(2),
	}, nil
}
