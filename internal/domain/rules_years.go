package domain

import (
	"github.com/shopspring/decimal"
)

// Published Box 1 figures per tax year. Band rates exclude national insurance
// contributions; the Social block carries those, capped at the first band
// ceiling. The AOW component (17.90%) is dropped from OlderRate.

func amt(v int64) decimal.Decimal   { return decimal.NewFromInt(v) }
func pct(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

const openEnd = 999999999

var rulesByYear = map[int]YearRules{
	2019: {
		Year: 2019,
		Bands: []TaxBand{
			{amt(0), amt(20384), pct(0.0900)},
			{amt(20384), amt(34300), pct(0.1045)},
			{amt(34300), amt(68507), pct(0.3810)},
			{amt(68507), amt(openEnd), pct(0.5175)},
		},
		Social:        SocialRules{Rate: pct(0.2765), OlderRate: pct(0.0975), Ceiling: amt(34300)},
		GeneralCredit: CreditPhaseOut{Max: amt(2477), PhaseOutFrom: amt(20384), PhaseOutRate: pct(0.05147)},
		LabourCredit: LabourCreditRules{
			Tiers: []LabourCreditTier{
				{UpTo: amt(9694), Rate: pct(0.01754)},
				{UpTo: amt(20703), Rate: pct(0.28712)},
				{UpTo: amt(34060), Rate: pct(0.00510)},
			},
			PhaseOutFrom: amt(34060), PhaseOutRate: pct(0.06000),
		},
		Ruling:               RulingRules{MinOther: amt(37743), MinYoung: amt(28690)},
		HolidayAllowanceRate: pct(0.08),
		Box3:                 Box3Rules{Allowance: amt(30360), NotionalReturn: pct(0.01935), TaxRate: pct(0.30)},
	},
	2020: {
		Year: 2020,
		Bands: []TaxBand{
			{amt(0), amt(34712), pct(0.0970)},
			{amt(34712), amt(68507), pct(0.3735)},
			{amt(68507), amt(openEnd), pct(0.4950)},
		},
		Social:        SocialRules{Rate: pct(0.2765), OlderRate: pct(0.0975), Ceiling: amt(34712)},
		GeneralCredit: CreditPhaseOut{Max: amt(2711), PhaseOutFrom: amt(20711), PhaseOutRate: pct(0.05672)},
		LabourCredit: LabourCreditRules{
			Tiers: []LabourCreditTier{
				{UpTo: amt(9921), Rate: pct(0.02812)},
				{UpTo: amt(21430), Rate: pct(0.28812)},
				{UpTo: amt(34954), Rate: pct(0.01656)},
			},
			PhaseOutFrom: amt(34954), PhaseOutRate: pct(0.06000)},
		Ruling:               RulingRules{MinOther: amt(38347), MinYoung: amt(29149)},
		HolidayAllowanceRate: pct(0.08),
		Box3:                 Box3Rules{Allowance: amt(30846), NotionalReturn: pct(0.01789), TaxRate: pct(0.30)},
	},
	2021: {
		Year: 2021,
		Bands: []TaxBand{
			{amt(0), amt(35129), pct(0.0945)},
			{amt(35129), amt(68507), pct(0.3710)},
			{amt(68507), amt(openEnd), pct(0.4950)},
		},
		Social:        SocialRules{Rate: pct(0.2765), OlderRate: pct(0.0975), Ceiling: amt(35129)},
		GeneralCredit: CreditPhaseOut{Max: amt(2837), PhaseOutFrom: amt(21043), PhaseOutRate: pct(0.05977)},
		LabourCredit: LabourCreditRules{
			Tiers: []LabourCreditTier{
				{UpTo: amt(10108), Rate: pct(0.04581)},
				{UpTo: amt(21835), Rate: pct(0.28771)},
				{UpTo: amt(35652), Rate: pct(0.02663)},
			},
			PhaseOutFrom: amt(35652), PhaseOutRate: pct(0.06000)},
		Ruling:               RulingRules{MinOther: amt(38961), MinYoung: amt(29616)},
		HolidayAllowanceRate: pct(0.08),
		Box3:                 Box3Rules{Allowance: amt(50000), NotionalReturn: pct(0.01898), TaxRate: pct(0.31)},
	},
	2022: {
		Year: 2022,
		Bands: []TaxBand{
			{amt(0), amt(35472), pct(0.0942)},
			{amt(35472), amt(69398), pct(0.3707)},
			{amt(69398), amt(openEnd), pct(0.4950)},
		},
		Social:        SocialRules{Rate: pct(0.2765), OlderRate: pct(0.0975), Ceiling: amt(35472)},
		GeneralCredit: CreditPhaseOut{Max: amt(2888), PhaseOutFrom: amt(21317), PhaseOutRate: pct(0.06007)},
		LabourCredit: LabourCreditRules{
			Tiers: []LabourCreditTier{
				{UpTo: amt(10351), Rate: pct(0.04541)},
				{UpTo: amt(22357), Rate: pct(0.28461)},
				{UpTo: amt(36650), Rate: pct(0.02610)},
			},
			PhaseOutFrom: amt(36650), PhaseOutRate: pct(0.05860)},
		Ruling:               RulingRules{MinOther: amt(39467), MinYoung: amt(30001)},
		HolidayAllowanceRate: pct(0.08),
		Box3:                 Box3Rules{Allowance: amt(50650), NotionalReturn: pct(0.0000), TaxRate: pct(0.31)},
	},
	2023: {
		Year: 2023,
		Bands: []TaxBand{
			{amt(0), amt(37149), pct(0.0928)},
			{amt(37149), amt(73031), pct(0.3693)},
			{amt(73031), amt(openEnd), pct(0.4950)},
		},
		Social:        SocialRules{Rate: pct(0.2765), OlderRate: pct(0.0975), Ceiling: amt(37149)},
		GeneralCredit: CreditPhaseOut{Max: amt(3070), PhaseOutFrom: amt(22660), PhaseOutRate: pct(0.06095)},
		LabourCredit: LabourCreditRules{
			Tiers: []LabourCreditTier{
				{UpTo: amt(10741), Rate: pct(0.08231)},
				{UpTo: amt(23201), Rate: pct(0.29861)},
				{UpTo: amt(37691), Rate: pct(0.03085)},
			},
			PhaseOutFrom: amt(37691), PhaseOutRate: pct(0.06510)},
		Ruling:               RulingRules{MinOther: amt(41954), MinYoung: amt(31891)},
		HolidayAllowanceRate: pct(0.08),
		Box3:                 Box3Rules{Allowance: amt(57000), NotionalReturn: pct(0.0092), TaxRate: pct(0.32)},
	},
	2024: {
		Year: 2024,
		Bands: []TaxBand{
			{amt(0), amt(38098), pct(0.0932)},
			{amt(38098), amt(75518), pct(0.3697)},
			{amt(75518), amt(openEnd), pct(0.4950)},
		},
		Social:        SocialRules{Rate: pct(0.2765), OlderRate: pct(0.0975), Ceiling: amt(38098)},
		GeneralCredit: CreditPhaseOut{Max: amt(3362), PhaseOutFrom: amt(24812), PhaseOutRate: pct(0.06630)},
		LabourCredit: LabourCreditRules{
			Tiers: []LabourCreditTier{
				{UpTo: amt(11490), Rate: pct(0.08425)},
				{UpTo: amt(24820), Rate: pct(0.31433)},
				{UpTo: amt(39957), Rate: pct(0.02471)},
			},
			PhaseOutFrom: amt(39957), PhaseOutRate: pct(0.06510)},
		Ruling:               RulingRules{MinOther: amt(46107), MinYoung: amt(35048), CapBase: amt(233000)},
		HolidayAllowanceRate: pct(0.08),
		Box3:                 Box3Rules{Allowance: amt(57000), NotionalReturn: pct(0.0103), TaxRate: pct(0.36)},
	},
	2025: {
		Year: 2025,
		Bands: []TaxBand{
			{amt(0), amt(38441), pct(0.0817)},
			{amt(38441), amt(76817), pct(0.3748)},
			{amt(76817), amt(openEnd), pct(0.4950)},
		},
		Social:        SocialRules{Rate: pct(0.2765), OlderRate: pct(0.0975), Ceiling: amt(38441)},
		GeneralCredit: CreditPhaseOut{Max: amt(3068), PhaseOutFrom: amt(28406), PhaseOutRate: pct(0.06337)},
		LabourCredit: LabourCreditRules{
			Tiers: []LabourCreditTier{
				{UpTo: amt(12169), Rate: pct(0.08053)},
				{UpTo: amt(26288), Rate: pct(0.30030)},
				{UpTo: amt(43071), Rate: pct(0.02258)},
			},
			PhaseOutFrom: amt(43071), PhaseOutRate: pct(0.06510)},
		Ruling:               RulingRules{MinOther: amt(46660), MinYoung: amt(35468), CapBase: amt(246000)},
		HolidayAllowanceRate: pct(0.08),
		Box3:                 Box3Rules{Allowance: amt(57684), NotionalReturn: pct(0.0144), TaxRate: pct(0.36)},
	},
}
