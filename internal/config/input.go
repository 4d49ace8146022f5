package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nltax/income-calculator/internal/domain"
)

// RulingRequest configures the 30% ruling part of a request.
type RulingRequest struct {
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Category string `yaml:"category" json:"category"`
}

// Box3Request configures the optional savings-tax note.
type Box3Request struct {
	Assets        float64 `yaml:"assets" json:"assets"`
	Debts         float64 `yaml:"debts" json:"debts"`
	FiscalPartner bool    `yaml:"fiscal_partner" json:"fiscalPartner"`
}

// CalculationRequest is the request schema shared by the YAML input file and
// the HTTP API.
type CalculationRequest struct {
	Income                   float64       `yaml:"income" json:"income"`
	Period                   string        `yaml:"period" json:"period"`
	HoursPerWeek             float64       `yaml:"hours_per_week" json:"hoursPerWeek"`
	Year                     int           `yaml:"year" json:"year"`
	HolidayAllowanceIncluded bool          `yaml:"holiday_allowance_included" json:"holidayAllowanceIncluded"`
	Older                    bool          `yaml:"older" json:"older"`
	SocialSecurity           bool          `yaml:"social_security" json:"socialSecurity"`
	Ruling                   RulingRequest `yaml:"ruling" json:"ruling"`
	Box3                     *Box3Request  `yaml:"box3,omitempty" json:"box3,omitempty"`
}

// Inputs converts the request into calculation inputs. Unknown period or
// category strings pass through; the summarizer applies its own fallbacks.
func (r *CalculationRequest) Inputs() domain.CalculationInputs {
	return domain.CalculationInputs{
		GrossIncome:              r.Income,
		Period:                   domain.Period(r.Period),
		HoursPerWeek:             r.HoursPerWeek,
		HolidayAllowanceIncluded: r.HolidayAllowanceIncluded,
		Older:                    r.Older,
		Ruling30Enabled:          r.Ruling.Enabled,
		Ruling30Category:         domain.RulingCategory(r.Ruling.Category),
		SocialSecurity:           r.SocialSecurity,
	}
}

// InputParser handles parsing of request files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a calculation request from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*CalculationRequest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var req CalculationRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.Validate(&req); err != nil {
		return nil, fmt.Errorf("request validation failed: %w", err)
	}

	return &req, nil
}

// Validate checks a calculation request.
func (ip *InputParser) Validate(req *CalculationRequest) error {
	if req.Income < 0 {
		return fmt.Errorf("income cannot be negative")
	}
	if req.Period != "" && !domain.Period(req.Period).Valid() {
		return fmt.Errorf("period must be one of %v", domain.Periods())
	}
	if req.HoursPerWeek < 0 || req.HoursPerWeek > 168 {
		return fmt.Errorf("hours per week must be between 0 and 168")
	}
	if domain.Period(req.Period) == domain.PeriodHour && req.HoursPerWeek == 0 {
		return fmt.Errorf("hours per week is required for hourly income")
	}
	if _, err := domain.Rules(req.Year); err != nil {
		return fmt.Errorf("year must be one of %v", domain.SupportedYears())
	}
	if req.Ruling.Enabled && req.Ruling.Category != "" && !domain.RulingCategory(req.Ruling.Category).Valid() {
		return fmt.Errorf("ruling category must be one of [%s %s %s]",
			domain.RulingResearchWorker, domain.RulingYoungProfessional, domain.RulingOther)
	}
	if req.Box3 != nil {
		if req.Box3.Assets < 0 {
			return fmt.Errorf("box3 assets cannot be negative")
		}
		if req.Box3.Debts < 0 {
			return fmt.Errorf("box3 debts cannot be negative")
		}
	}
	return nil
}

// CreateExampleRequest creates a starter request.
func (ip *InputParser) CreateExampleRequest() *CalculationRequest {
	return &CalculationRequest{
		Income:                   60000,
		Period:                   string(domain.PeriodYear),
		HoursPerWeek:             40,
		Year:                     2025,
		HolidayAllowanceIncluded: false,
		Older:                    false,
		SocialSecurity:           true,
		Ruling:                   RulingRequest{Enabled: false, Category: string(domain.RulingOther)},
	}
}

// WriteExample writes the starter request to a YAML file.
func (ip *InputParser) WriteExample(filename string) error {
	data, err := yaml.Marshal(ip.CreateExampleRequest())
	if err != nil {
		return fmt.Errorf("failed to marshal example request: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
