package calculation

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nltax/income-calculator/internal/domain"
)

// Breakdown row labels, in display order.
const (
	RowGrossIncome    = "Gross annual income"
	RowHolidayPay     = "Holiday allowance"
	RowRulingExempt   = "30% ruling tax-free allowance"
	RowTaxableIncome  = "Taxable annual income"
	RowPayrollTax     = "Payroll tax"
	RowSocialSecurity = "Social security contributions"
	RowGeneralCredit  = "General tax credit"
	RowLabourCredit   = "Labour tax credit"
	RowIncomeTax      = "Total income tax"
	RowNetIncome      = "Net annual income"
)

// startFromByPeriod translates the UI period to the calculator vocabulary.
var startFromByPeriod = map[domain.Period]string{
	domain.PeriodYear:  StartFromYear,
	domain.PeriodMonth: StartFromMonth,
	domain.PeriodWeek:  StartFromWeek,
	domain.PeriodDay:   StartFromDay,
	domain.PeriodHour:  StartFromHour,
}

// choiceByCategory translates the UI ruling category to the calculator
// vocabulary.
var choiceByCategory = map[domain.RulingCategory]string{
	domain.RulingResearchWorker:    RulingChoiceResearch,
	domain.RulingYoungProfessional: RulingChoiceYoung,
	domain.RulingOther:             RulingChoiceNormal,
}

// summaryErr is the single user-visible failure message; details go to the
// log only.
const summaryErr = "tax calculation failed"

// Summarizer turns calculation inputs into a display-ready TaxSummary. It
// memoizes the last derivation by value equality over the (inputs, year)
// tuple and absorbs every calculator failure: callers always get a summary,
// never an error.
type Summarizer struct {
	calc Calculator
	log  Logger

	mu      sync.Mutex
	hasLast bool
	lastKey summaryKey
	lastSum domain.TaxSummary
}

type summaryKey struct {
	inputs domain.CalculationInputs
	year   int
}

// NewSummarizer creates a Summarizer. A nil calculator selects the built-in
// payroll calculator; a nil logger discards output.
func NewSummarizer(calc Calculator, log Logger) *Summarizer {
	if calc == nil {
		calc = NewPayrollCalculator()
	}
	if log == nil {
		log = NopLogger{}
	}
	return &Summarizer{calc: calc, log: log}
}

// Summarize derives the TaxSummary for one set of inputs and a tax year.
func (s *Summarizer) Summarize(in domain.CalculationInputs, year int) domain.TaxSummary {
	if in.GrossIncome <= 0 {
		return domain.EmptyTaxSummary()
	}

	key := summaryKey{inputs: in, year: year}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hasLast && s.lastKey == key {
		return s.lastSum
	}

	sum := s.derive(in, year)
	s.hasLast = true
	s.lastKey = key
	s.lastSum = sum
	return sum
}

// derive runs the calculator and shapes its figures. Failures, including
// panics from a misbehaving Calculator implementation, are converted to the
// empty summary with an error message.
func (s *Summarizer) derive(in domain.CalculationInputs, year int) (sum domain.TaxSummary) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorf("tax calculation panicked: year=%d inputs=%+v: %v", year, in, r)
			sum = domain.EmptyTaxSummary()
			sum.Err = summaryErr
		}
	}()

	startFrom, ok := startFromByPeriod[in.Period]
	if !ok {
		startFrom = StartFromYear
	}
	choice, ok := choiceByCategory[in.Ruling30Category]
	if !ok {
		choice = RulingChoiceNormal
	}

	fig, err := s.calc.Calculate(PaycheckRequest{
		Income:            decimal.NewFromFloat(in.GrossIncome),
		StartFrom:         startFrom,
		Year:              year,
		HoursPerWeek:      decimal.NewFromFloat(in.HoursPerWeek),
		AllowanceIncluded: in.HolidayAllowanceIncluded,
		SocialSecurity:    in.SocialSecurity,
		Older:             in.Older,
		Ruling: RulingParams{
			Checked: in.Ruling30Enabled,
			Choice:  choice,
		},
	})
	if err != nil {
		s.log.Errorf("tax calculation failed: year=%d inputs=%+v: %v", year, in, err)
		sum = domain.EmptyTaxSummary()
		sum.Err = summaryErr
		return sum
	}

	return domain.TaxSummary{
		TaxableBase:  fig.TaxableYear,
		EstimatedTax: fig.IncomeTax,
		NetIncome:    fig.NetYear,
		Breakdown:    buildBreakdown(in, fig),
		Details:      fig,
	}
}

// buildBreakdown assembles the ordered display rows. The gross row is always
// first and the net row always last; the allowance, ruling and social
// security rows appear only when active.
func buildBreakdown(in domain.CalculationInputs, fig *domain.Figures) []domain.BreakdownRow {
	rows := make([]domain.BreakdownRow, 0, 10)
	rows = append(rows, domain.BreakdownRow{Description: RowGrossIncome, Amount: fig.GrossYear})
	if fig.GrossAllowance.IsPositive() {
		rows = append(rows, domain.BreakdownRow{Description: RowHolidayPay, Amount: fig.GrossAllowance})
	}
	if in.Ruling30Enabled && fig.TaxFreeYear.IsPositive() {
		rows = append(rows, domain.BreakdownRow{Description: RowRulingExempt, Amount: fig.TaxFreeYear})
	}
	rows = append(rows, domain.BreakdownRow{Description: RowTaxableIncome, Amount: fig.TaxableYear})
	rows = append(rows, domain.BreakdownRow{Description: RowPayrollTax, Amount: fig.PayrollTax})
	if in.SocialSecurity {
		rows = append(rows, domain.BreakdownRow{Description: RowSocialSecurity, Amount: fig.SocialTax})
	}
	rows = append(rows, domain.BreakdownRow{Description: RowGeneralCredit, Amount: fig.GeneralCredit})
	rows = append(rows, domain.BreakdownRow{Description: RowLabourCredit, Amount: fig.LabourCredit})
	rows = append(rows, domain.BreakdownRow{Description: RowIncomeTax, Amount: fig.IncomeTax})
	rows = append(rows, domain.BreakdownRow{Description: RowNetIncome, Amount: fig.NetYear})
	return rows
}
