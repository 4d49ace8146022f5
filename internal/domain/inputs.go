package domain

// Period identifies how a user-entered income figure is expressed.
type Period string

const (
	PeriodYear  Period = "year"
	PeriodMonth Period = "month"
	PeriodWeek  Period = "week"
	PeriodDay   Period = "day"
	PeriodHour  Period = "hour"
)

// Periods lists all valid values in display order.
func Periods() []Period {
	return []Period{PeriodYear, PeriodMonth, PeriodWeek, PeriodDay, PeriodHour}
}

// Valid reports whether p is one of the known periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodYear, PeriodMonth, PeriodWeek, PeriodDay, PeriodHour:
		return true
	}
	return false
}

// RulingCategory selects the 30% ruling salary threshold that applies to the
// employee. Research workers have no minimum taxable salary requirement.
type RulingCategory string

const (
	RulingResearchWorker    RulingCategory = "research_worker"
	RulingYoungProfessional RulingCategory = "young_professional"
	RulingOther             RulingCategory = "other"
)

// Valid reports whether c is one of the known categories.
func (c RulingCategory) Valid() bool {
	switch c {
	case RulingResearchWorker, RulingYoungProfessional, RulingOther:
		return true
	}
	return false
}

// CalculationInputs is one immutable set of user-entered values. The struct is
// comparable on purpose: the summarizer memoizes on the full value.
type CalculationInputs struct {
	GrossIncome              float64
	Period                   Period
	HoursPerWeek             float64
	HolidayAllowanceIncluded bool
	Older                    bool
	Ruling30Enabled          bool
	Ruling30Category         RulingCategory
	SocialSecurity           bool
}
