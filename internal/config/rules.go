package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nltax/income-calculator/internal/domain"
)

// rulesFile is the schema of a rules override file: a list of full year
// tables. Years present in the file replace the built-in table; all other
// years fall through to the built-in one.
type rulesFile struct {
	Years []domain.YearRules `yaml:"years"`
}

// LoadRulesFile loads rule-table overrides and returns a rule source for the
// calculator.
func LoadRulesFile(filename string) (func(year int) (*domain.YearRules, error), error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file %s: %w", filename, err)
	}

	var rf rulesFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse rules YAML: %w", err)
	}
	if len(rf.Years) == 0 {
		return nil, fmt.Errorf("rules file %s contains no years", filename)
	}

	overrides := make(map[int]domain.YearRules, len(rf.Years))
	for _, yr := range rf.Years {
		if yr.Year == 0 {
			return nil, fmt.Errorf("rules file %s: year table without a year", filename)
		}
		if len(yr.Bands) == 0 {
			return nil, fmt.Errorf("rules file %s: year %d has no tax bands", filename, yr.Year)
		}
		overrides[yr.Year] = yr
	}

	return func(year int) (*domain.YearRules, error) {
		if yr, ok := overrides[year]; ok {
			return &yr, nil
		}
		return domain.Rules(year)
	}, nil
}
