package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// TaxBand is one progressive wage-tax band. Rates here are the tax-only part;
// national insurance contributions are modelled separately in SocialRules.
type TaxBand struct {
	Min  decimal.Decimal `yaml:"min" json:"min"`
	Max  decimal.Decimal `yaml:"max" json:"max"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// SocialRules describes the national insurance contributions levied alongside
// wage tax. People past state-pension age no longer pay the AOW component.
type SocialRules struct {
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
	OlderRate decimal.Decimal `yaml:"older_rate" json:"older_rate"`
	Ceiling   decimal.Decimal `yaml:"ceiling" json:"ceiling"`
}

// CreditPhaseOut models a credit with a flat maximum that tapers off linearly
// above a threshold.
type CreditPhaseOut struct {
	Max          decimal.Decimal `yaml:"max" json:"max"`
	PhaseOutFrom decimal.Decimal `yaml:"phase_out_from" json:"phase_out_from"`
	PhaseOutRate decimal.Decimal `yaml:"phase_out_rate" json:"phase_out_rate"`
}

// LabourCreditTier is one build-up segment of the labour credit.
type LabourCreditTier struct {
	UpTo decimal.Decimal `yaml:"up_to" json:"up_to"`
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
}

// LabourCreditRules models the labour credit: marginal build-up over tiers,
// then a linear phase-out.
type LabourCreditRules struct {
	Tiers        []LabourCreditTier `yaml:"tiers" json:"tiers"`
	PhaseOutFrom decimal.Decimal    `yaml:"phase_out_from" json:"phase_out_from"`
	PhaseOutRate decimal.Decimal    `yaml:"phase_out_rate" json:"phase_out_rate"`
}

// RulingRules holds the 30% ruling parameters: minimum taxable salary per
// category and, from 2024 onward, the cap on the salary the exemption may be
// computed over. A zero CapBase means no cap.
type RulingRules struct {
	MinOther    decimal.Decimal `yaml:"min_other" json:"min_other"`
	MinYoung    decimal.Decimal `yaml:"min_young" json:"min_young"`
	MinResearch decimal.Decimal `yaml:"min_research" json:"min_research"`
	CapBase     decimal.Decimal `yaml:"cap_base" json:"cap_base"`
}

// Box3Rules holds the simplified savings-tax parameters: tax-free allowance
// per person, the notional return imputed on savings, and the rate levied on
// that return.
type Box3Rules struct {
	Allowance      decimal.Decimal `yaml:"allowance" json:"allowance"`
	NotionalReturn decimal.Decimal `yaml:"notional_return" json:"notional_return"`
	TaxRate        decimal.Decimal `yaml:"tax_rate" json:"tax_rate"`
}

// YearRules bundles every regulatory figure for one tax year.
type YearRules struct {
	Year                 int               `yaml:"year" json:"year"`
	Bands                []TaxBand         `yaml:"bands" json:"bands"`
	Social               SocialRules       `yaml:"social" json:"social"`
	GeneralCredit        CreditPhaseOut    `yaml:"general_credit" json:"general_credit"`
	LabourCredit         LabourCreditRules `yaml:"labour_credit" json:"labour_credit"`
	Ruling               RulingRules       `yaml:"ruling" json:"ruling"`
	HolidayAllowanceRate decimal.Decimal   `yaml:"holiday_allowance_rate" json:"holiday_allowance_rate"`
	Box3                 Box3Rules         `yaml:"box3" json:"box3"`
}

// Rules returns the rule table for a supported tax year.
func Rules(year int) (*YearRules, error) {
	r, ok := rulesByYear[year]
	if !ok {
		return nil, fmt.Errorf("unsupported tax year %d", year)
	}
	return &r, nil
}

// SupportedYears lists the tax years with a rule table, ascending.
func SupportedYears() []int {
	years := make([]int, 0, len(rulesByYear))
	for y := range rulesByYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
