package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nltax/income-calculator/internal/domain"
)

// Ruling choice vocabulary accepted by the calculator.
const (
	RulingChoiceNormal   = "normal"
	RulingChoiceYoung    = "young"
	RulingChoiceResearch = "research"
)

var rulingRate = decimal.NewFromFloat(0.30)

// rulingMinimum returns the minimum taxable salary for a ruling choice.
// An unknown choice falls back to the normal minimum.
func rulingMinimum(rules domain.RulingRules, choice string) decimal.Decimal {
	switch choice {
	case RulingChoiceYoung:
		return rules.MinYoung
	case RulingChoiceResearch:
		return rules.MinResearch
	default:
		return rules.MinOther
	}
}

// rulingTaxFree computes the 30% ruling exemption for an annual gross salary:
// 30% of the (possibly capped) gross, reduced so the taxable salary never
// drops below the category minimum, floored at zero.
func rulingTaxFree(rules domain.RulingRules, grossYear decimal.Decimal, choice string) decimal.Decimal {
	base := grossYear
	if rules.CapBase.IsPositive() && base.GreaterThan(rules.CapBase) {
		base = rules.CapBase
	}
	free := base.Mul(rulingRate)
	headroom := grossYear.Sub(rulingMinimum(rules, choice))
	if headroom.LessThan(free) {
		free = headroom
	}
	if free.IsNegative() {
		return decimal.Zero
	}
	return free
}
