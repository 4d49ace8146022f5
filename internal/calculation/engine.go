package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nltax/income-calculator/internal/domain"
	"github.com/nltax/income-calculator/pkg/money"
)

// Period selector vocabulary accepted by the calculator.
const (
	StartFromYear  = "Year"
	StartFromMonth = "Month"
	StartFromWeek  = "Week"
	StartFromDay   = "Day"
	StartFromHour  = "Hour"
)

var periodBySelector = map[string]domain.Period{
	StartFromYear:  domain.PeriodYear,
	StartFromMonth: domain.PeriodMonth,
	StartFromWeek:  domain.PeriodWeek,
	StartFromDay:   domain.PeriodDay,
	StartFromHour:  domain.PeriodHour,
}

// RulingParams describes the 30% ruling request.
type RulingParams struct {
	Checked bool
	Choice  string
}

// PaycheckRequest is the full parameter set for one payroll calculation.
type PaycheckRequest struct {
	Income            decimal.Decimal
	StartFrom         string
	Year              int
	HoursPerWeek      decimal.Decimal
	AllowanceIncluded bool
	SocialSecurity    bool
	Older             bool
	Ruling            RulingParams
}

// Calculator is the boundary to the payroll math. Callers treat the bracket,
// credit and ruling internals as opaque and only rely on the named figures.
type Calculator interface {
	Calculate(req PaycheckRequest) (*domain.Figures, error)
}

// PayrollCalculator computes Dutch Box 1 wage tax from the per-year rule
// tables.
type PayrollCalculator struct {
	rules func(year int) (*domain.YearRules, error)
}

// NewPayrollCalculator creates a calculator backed by the built-in rule
// tables.
func NewPayrollCalculator() *PayrollCalculator {
	return &PayrollCalculator{rules: domain.Rules}
}

// NewPayrollCalculatorWithRules creates a calculator with a custom rule
// source, e.g. tables loaded from a rules file.
func NewPayrollCalculatorWithRules(rules func(year int) (*domain.YearRules, error)) *PayrollCalculator {
	return &PayrollCalculator{rules: rules}
}

// Calculate runs one payroll calculation.
func (pc *PayrollCalculator) Calculate(req PaycheckRequest) (*domain.Figures, error) {
	rules, err := pc.rules(req.Year)
	if err != nil {
		return nil, err
	}
	period, ok := periodBySelector[req.StartFrom]
	if !ok {
		return nil, fmt.Errorf("unknown period selector %q", req.StartFrom)
	}

	grossYear := AnnualIncome(req.Income, period, req.HoursPerWeek)

	grossAllowance := decimal.Zero
	if req.AllowanceIncluded {
		// The entered salary already contains the allowance; split it out.
		grossAllowance = includedAllowance(grossYear, rules.HolidayAllowanceRate)
	}

	taxFreeYear := decimal.Zero
	if req.Ruling.Checked {
		taxFreeYear = rulingTaxFree(rules.Ruling, grossYear, req.Ruling.Choice)
	}
	taxableYear := grossYear.Sub(taxFreeYear)

	payrollTax := taxForBands(rules.Bands, taxableYear)

	socialTax := decimal.Zero
	if req.SocialSecurity {
		socialRate := rules.Social.Rate
		if req.Older {
			socialRate = rules.Social.OlderRate
		}
		socialTax = decimal.Min(taxableYear, rules.Social.Ceiling).Mul(socialRate)
	}

	mult := creditMultiplier(rules, req.SocialSecurity, req.Older)
	general := generalCredit(rules.GeneralCredit, taxableYear).Mul(mult)
	labour := labourCredit(rules.LabourCredit, taxableYear).Mul(mult)

	taxWithoutCredit := payrollTax.Add(socialTax)
	incomeTax := taxWithoutCredit.Sub(general).Sub(labour)
	if incomeTax.IsNegative() {
		incomeTax = decimal.Zero
	}
	netYear := grossYear.Sub(incomeTax)

	netAllowance := decimal.Zero
	if req.AllowanceIncluded {
		netAllowance = includedAllowance(netYear, rules.HolidayAllowanceRate)
	}

	taxFreePercent := decimal.Zero
	if grossYear.IsPositive() {
		taxFreePercent = taxFreeYear.Div(grossYear).Mul(decimal.NewFromInt(100))
	}

	grossBase := money.FromDecimal(grossYear.Sub(grossAllowance))
	netBase := money.FromDecimal(netYear.Sub(netAllowance))

	fig := &domain.Figures{
		GrossYear:      grossYear.Round(2),
		GrossMonth:     grossBase.PerMonth().Round().Decimal,
		GrossWeek:      grossBase.PerWeek().Round().Decimal,
		GrossDay:       grossBase.PerDay().Round().Decimal,
		GrossHour:      grossBase.PerHour(req.HoursPerWeek).Round().Decimal,
		GrossAllowance: grossAllowance.Round(2),

		TaxFreeYear:    taxFreeYear.Round(2),
		TaxFreePercent: taxFreePercent.Round(2),
		TaxableYear:    taxableYear.Round(2),

		PayrollTax:       payrollTax.Round(2),
		SocialTax:        socialTax.Round(2),
		TaxWithoutCredit: taxWithoutCredit.Round(2),
		GeneralCredit:    general.Round(2),
		LabourCredit:     labour.Round(2),
		IncomeTax:        incomeTax.Round(2),

		NetYear:      netYear.Round(2),
		NetAllowance: netAllowance.Round(2),
		NetMonth:     netBase.PerMonth().Round().Decimal,
		NetWeek:      netBase.PerWeek().Round().Decimal,
		NetDay:       netBase.PerDay().Round().Decimal,
		NetHour:      netBase.PerHour(req.HoursPerWeek).Round().Decimal,
	}
	return fig, nil
}

// taxForBands applies a progressive band table to a taxable amount.
func taxForBands(bands []domain.TaxBand, taxable decimal.Decimal) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, band := range bands {
		if taxable.LessThanOrEqual(band.Min) {
			break
		}
		inBand := decimal.Min(taxable, band.Max).Sub(band.Min)
		if inBand.GreaterThan(decimal.Zero) {
			total = total.Add(inBand.Mul(band.Rate))
		}
	}
	return total
}

// includedAllowance extracts the holiday allowance share from an amount that
// already contains it: rate/(1+rate) of the total.
func includedAllowance(total decimal.Decimal, rate decimal.Decimal) decimal.Decimal {
	return total.Mul(rate).Div(decimal.NewFromInt(1).Add(rate))
}
