package calculation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nltax/income-calculator/internal/domain"
)

// fakeCalculator records invocations and returns a canned result.
type fakeCalculator struct {
	calls  int
	fig    *domain.Figures
	err    error
	panics bool
}

func (f *fakeCalculator) Calculate(req PaycheckRequest) (*domain.Figures, error) {
	f.calls++
	if f.panics {
		panic("boom")
	}
	return f.fig, f.err
}

func baseInputs() domain.CalculationInputs {
	return domain.CalculationInputs{
		GrossIncome:    60000,
		Period:         domain.PeriodYear,
		HoursPerWeek:   40,
		SocialSecurity: true,
	}
}

func TestSummarizeNonPositiveIncomeSkipsCalculator(t *testing.T) {
	fake := &fakeCalculator{}
	s := NewSummarizer(fake, nil)

	for _, income := range []float64{0, -1000} {
		in := baseInputs()
		in.GrossIncome = income
		sum := s.Summarize(in, 2025)

		assert.Equal(t, domain.EmptyTaxSummary(), sum)
		assert.Empty(t, sum.Breakdown)
		assert.Nil(t, sum.Details)
	}
	assert.Zero(t, fake.calls, "the calculator must not be invoked for non-positive income")
}

func TestSummarizeAbsorbsCalculatorError(t *testing.T) {
	fake := &fakeCalculator{err: errors.New("bad year table")}
	s := NewSummarizer(fake, nil)

	sum := s.Summarize(baseInputs(), 2025)

	assert.Equal(t, summaryErr, sum.Err)
	assert.Empty(t, sum.Breakdown)
	assert.Nil(t, sum.Details)
	assert.True(t, sum.NetIncome.IsZero())
}

func TestSummarizeAbsorbsCalculatorPanic(t *testing.T) {
	fake := &fakeCalculator{panics: true}
	s := NewSummarizer(fake, nil)

	assert.NotPanics(t, func() {
		sum := s.Summarize(baseInputs(), 2025)
		assert.Equal(t, summaryErr, sum.Err)
		assert.Empty(t, sum.Breakdown)
	})
}

func TestSummarizePartialFiguresStillPopulates(t *testing.T) {
	// A calculator that fills only a few figures: everything else reads as
	// zero and the summary is still complete.
	fake := &fakeCalculator{fig: &domain.Figures{
		GrossYear: decimal.NewFromInt(60000),
		NetYear:   decimal.NewFromInt(45000),
	}}
	s := NewSummarizer(fake, nil)

	sum := s.Summarize(baseInputs(), 2025)

	require.Empty(t, sum.Err)
	require.NotNil(t, sum.Details)
	assert.True(t, sum.TaxableBase.IsZero())
	assert.True(t, sum.EstimatedTax.IsZero())
	assert.True(t, sum.NetIncome.Equal(decimal.NewFromInt(45000)))

	require.NotEmpty(t, sum.Breakdown)
	first := sum.Breakdown[0]
	last := sum.Breakdown[len(sum.Breakdown)-1]
	assert.Equal(t, RowGrossIncome, first.Description)
	assert.Equal(t, RowNetIncome, last.Description)
	for _, row := range sum.Breakdown {
		if row.Description == RowGeneralCredit {
			assert.True(t, row.Amount.IsZero())
		}
	}
}

func TestSummarizeMemoizesLastDerivation(t *testing.T) {
	fake := &fakeCalculator{fig: &domain.Figures{GrossYear: decimal.NewFromInt(60000)}}
	s := NewSummarizer(fake, nil)

	in := baseInputs()
	first := s.Summarize(in, 2025)
	second := s.Summarize(in, 2025)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.calls, "identical inputs must reuse the last derivation")

	in.GrossIncome = 61000
	s.Summarize(in, 2025)
	assert.Equal(t, 2, fake.calls)

	// A year change also invalidates the memo.
	s.Summarize(in, 2024)
	assert.Equal(t, 3, fake.calls)
}

func TestSummarizeSpecimen60000(t *testing.T) {
	s := NewSummarizer(nil, nil)

	sum := s.Summarize(baseInputs(), 2025)
	require.Empty(t, sum.Err)
	require.NotNil(t, sum.Details)

	first := sum.Breakdown[0]
	assert.Equal(t, RowGrossIncome, first.Description)
	assert.True(t, first.Amount.Equal(decimal.NewFromInt(60000)))

	last := sum.Breakdown[len(sum.Breakdown)-1]
	assert.Equal(t, RowNetIncome, last.Description)
	assert.True(t, last.Amount.Equal(sum.Details.NetYear))

	assert.True(t, sum.NetIncome.Equal(sum.Details.NetYear))
	assert.True(t, sum.EstimatedTax.Equal(sum.Details.IncomeTax))
}

func TestSummarizeConditionalRows(t *testing.T) {
	s := NewSummarizer(nil, nil)

	rowSet := func(sum domain.TaxSummary) map[string]bool {
		set := make(map[string]bool, len(sum.Breakdown))
		for _, row := range sum.Breakdown {
			set[row.Description] = true
		}
		return set
	}

	plain := rowSet(s.Summarize(baseInputs(), 2025))
	assert.True(t, plain[RowSocialSecurity])
	assert.False(t, plain[RowHolidayPay])
	assert.False(t, plain[RowRulingExempt])

	in := baseInputs()
	in.HolidayAllowanceIncluded = true
	withAllowance := rowSet(s.Summarize(in, 2025))
	assert.True(t, withAllowance[RowHolidayPay])

	in = baseInputs()
	in.SocialSecurity = false
	noSocial := rowSet(s.Summarize(in, 2025))
	assert.False(t, noSocial[RowSocialSecurity])

	in = baseInputs()
	in.GrossIncome = 100000
	in.Ruling30Enabled = true
	in.Ruling30Category = domain.RulingOther
	withRuling := rowSet(s.Summarize(in, 2025))
	assert.True(t, withRuling[RowRulingExempt])

	// Ruling enabled but below the salary minimum: no exemption, no row.
	in.GrossIncome = 40000
	belowMinimum := rowSet(s.Summarize(in, 2025))
	assert.False(t, belowMinimum[RowRulingExempt])
}

func TestSummarizeVocabularyFallbacks(t *testing.T) {
	s := NewSummarizer(nil, nil)

	// Unknown period behaves as yearly.
	in := baseInputs()
	in.Period = domain.Period("fortnight")
	sum := s.Summarize(in, 2025)
	require.NotNil(t, sum.Details)
	assert.True(t, sum.Details.GrossYear.Equal(decimal.NewFromInt(60000)))

	// Unknown ruling category behaves as the normal choice.
	in = baseInputs()
	in.GrossIncome = 100000
	in.Ruling30Enabled = true
	in.Ruling30Category = domain.RulingCategory("expat")
	sum = s.Summarize(in, 2025)
	require.NotNil(t, sum.Details)
	assert.True(t, sum.Details.TaxFreeYear.Equal(decimal.NewFromInt(30000)))
}

func TestSummarizeUnsupportedYearIsAbsorbed(t *testing.T) {
	s := NewSummarizer(nil, nil)

	sum := s.Summarize(baseInputs(), 2018)
	assert.Equal(t, summaryErr, sum.Err)
	assert.Empty(t, sum.Breakdown)
}
