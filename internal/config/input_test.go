package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nltax/income-calculator/internal/domain"
)

func TestValidate(t *testing.T) {
	parser := NewInputParser()

	valid := func() *CalculationRequest {
		return &CalculationRequest{
			Income:         60000,
			Period:         "year",
			HoursPerWeek:   40,
			Year:           2025,
			SocialSecurity: true,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*CalculationRequest)
		wantErr string
	}{
		{
			name:   "valid request",
			mutate: func(r *CalculationRequest) {},
		},
		{
			name:   "zero income is allowed",
			mutate: func(r *CalculationRequest) { r.Income = 0 },
		},
		{
			name:    "negative income",
			mutate:  func(r *CalculationRequest) { r.Income = -1 },
			wantErr: "income cannot be negative",
		},
		{
			name:    "unknown period",
			mutate:  func(r *CalculationRequest) { r.Period = "fortnight" },
			wantErr: "period must be one of",
		},
		{
			name:   "empty period is allowed",
			mutate: func(r *CalculationRequest) { r.Period = "" },
		},
		{
			name:    "hourly requires hours",
			mutate:  func(r *CalculationRequest) { r.Period = "hour"; r.HoursPerWeek = 0 },
			wantErr: "hours per week is required",
		},
		{
			name:    "excessive hours",
			mutate:  func(r *CalculationRequest) { r.HoursPerWeek = 200 },
			wantErr: "hours per week must be between",
		},
		{
			name:    "unsupported year",
			mutate:  func(r *CalculationRequest) { r.Year = 2018 },
			wantErr: "year must be one of",
		},
		{
			name:    "bad ruling category",
			mutate:  func(r *CalculationRequest) { r.Ruling = RulingRequest{Enabled: true, Category: "expat"} },
			wantErr: "ruling category must be one of",
		},
		{
			name:   "ruling category ignored when disabled",
			mutate: func(r *CalculationRequest) { r.Ruling = RulingRequest{Enabled: false, Category: "expat"} },
		},
		{
			name:    "negative box3 assets",
			mutate:  func(r *CalculationRequest) { r.Box3 = &Box3Request{Assets: -1} },
			wantErr: "box3 assets cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(req)
			err := parser.Validate(req)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "request.yaml")
	content := `
income: 4500
period: month
hours_per_week: 36
year: 2024
holiday_allowance_included: true
social_security: true
ruling:
  enabled: true
  category: young_professional
box3:
  assets: 80000
  debts: 5000
  fiscal_partner: true
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	req, err := NewInputParser().LoadFromFile(file)
	require.NoError(t, err)

	assert.Equal(t, 4500.0, req.Income)
	assert.Equal(t, "month", req.Period)
	assert.Equal(t, 2024, req.Year)
	assert.True(t, req.HolidayAllowanceIncluded)
	assert.True(t, req.Ruling.Enabled)
	require.NotNil(t, req.Box3)
	assert.Equal(t, 80000.0, req.Box3.Assets)
	assert.True(t, req.Box3.FiscalPartner)

	in := req.Inputs()
	assert.Equal(t, domain.PeriodMonth, in.Period)
	assert.Equal(t, domain.RulingYoungProfessional, in.Ruling30Category)
	assert.True(t, in.Ruling30Enabled)
}

func TestLoadFromFileErrors(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("income: [not a number"), 0644))
	_, err = parser.LoadFromFile(bad)
	assert.ErrorContains(t, err, "failed to parse YAML")

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("income: 100\nyear: 1999\n"), 0644))
	_, err = parser.LoadFromFile(invalid)
	assert.ErrorContains(t, err, "request validation failed")
}

func TestWriteExampleRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "example.yaml")
	parser := NewInputParser()

	require.NoError(t, parser.WriteExample(file))

	req, err := parser.LoadFromFile(file)
	require.NoError(t, err)
	assert.Equal(t, parser.CreateExampleRequest(), req)
}
