package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nltax/income-calculator/internal/domain"
)

// generalCredit computes the general tax credit for a taxable income: the
// year maximum below the phase-out threshold, tapering linearly to zero.
func generalCredit(rules domain.CreditPhaseOut, income decimal.Decimal) decimal.Decimal {
	if income.LessThanOrEqual(rules.PhaseOutFrom) {
		return rules.Max
	}
	credit := rules.Max.Sub(income.Sub(rules.PhaseOutFrom).Mul(rules.PhaseOutRate))
	if credit.IsNegative() {
		return decimal.Zero
	}
	return credit
}

// labourCredit computes the labour credit: marginal build-up across the
// tiers, then a linear phase-out, floored at zero.
func labourCredit(rules domain.LabourCreditRules, income decimal.Decimal) decimal.Decimal {
	credit := decimal.Zero
	lower := decimal.Zero
	for _, tier := range rules.Tiers {
		if income.LessThanOrEqual(lower) {
			break
		}
		portion := decimal.Min(income, tier.UpTo).Sub(lower)
		if portion.GreaterThan(decimal.Zero) {
			credit = credit.Add(portion.Mul(tier.Rate))
		}
		lower = tier.UpTo
	}
	if income.GreaterThan(rules.PhaseOutFrom) {
		credit = credit.Sub(income.Sub(rules.PhaseOutFrom).Mul(rules.PhaseOutRate))
	}
	if credit.IsNegative() {
		return decimal.Zero
	}
	return credit
}

// creditMultiplier scales tax credits by the share of the first-band rates
// the employee actually pays. Without national insurance only the tax part
// counts; past state-pension age the AOW component drops out.
func creditMultiplier(rules *domain.YearRules, socialSecurity, older bool) decimal.Decimal {
	taxRate := decimal.Zero
	if len(rules.Bands) > 0 {
		taxRate = rules.Bands[0].Rate
	}
	full := taxRate.Add(rules.Social.Rate)
	if full.IsZero() {
		return decimal.NewFromInt(1)
	}
	paid := taxRate
	if socialSecurity {
		if older {
			paid = paid.Add(rules.Social.OlderRate)
		} else {
			paid = paid.Add(rules.Social.Rate)
		}
	}
	return paid.Div(full)
}
