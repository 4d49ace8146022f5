package cli

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nltax/income-calculator/internal/calculation"
	"github.com/nltax/income-calculator/internal/config"
	"github.com/nltax/income-calculator/internal/domain"
	"github.com/nltax/income-calculator/internal/output"
	"github.com/nltax/income-calculator/pkg/money"
)

func newCalculateCmd(app *App) *cobra.Command {
	var (
		inputFile string
		rulesFile string
		format    string

		req config.CalculationRequest
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Estimate income tax for one salary",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()

			request := &req
			if inputFile != "" {
				loaded, err := parser.LoadFromFile(inputFile)
				if err != nil {
					return err
				}
				request = loaded
			} else if err := parser.Validate(request); err != nil {
				return err
			}

			var calc calculation.Calculator
			if rulesFile != "" {
				rules, err := config.LoadRulesFile(rulesFile)
				if err != nil {
					return err
				}
				calc = calculation.NewPayrollCalculatorWithRules(rules)
			}

			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unknown format %q, available: %v", format, output.FormatNames())
			}

			sum := calculation.NewSummarizer(calc, app.calcLogger()).
				Summarize(request.Inputs(), request.Year)

			data, err := formatter.Format(&sum)
			if err != nil {
				return err
			}
			cmd.OutOrStdout().Write(data)

			if request.Box3 != nil && formatter.Name() == "console" {
				note, err := calculation.Box3Estimate(
					decimal.NewFromFloat(request.Box3.Assets),
					decimal.NewFromFloat(request.Box3.Debts),
					request.Box3.FiscalPartner,
					request.Year,
				)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nBox 3 savings-tax note\n")
				fmt.Fprintf(cmd.OutOrStdout(), "%-34s %16s\n", "Taxable base", money.FormatDecimal(note.TaxableBase))
				fmt.Fprintf(cmd.OutOrStdout(), "%-34s %16s\n", "Notional return", money.FormatDecimal(note.NotionalReturn))
				fmt.Fprintf(cmd.OutOrStdout(), "%-34s %16s\n", "Estimated tax", money.FormatDecimal(note.EstimatedTax))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputFile, "input", "i", "", "YAML request file (overrides the flags below)")
	cmd.Flags().StringVar(&rulesFile, "rules", "", "YAML rule-table override file")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (console, json, csv)")

	cmd.Flags().Float64Var(&req.Income, "income", 0, "gross income for the chosen period")
	cmd.Flags().StringVar(&req.Period, "period", string(domain.PeriodYear), "income period (year, month, week, day, hour)")
	cmd.Flags().Float64Var(&req.HoursPerWeek, "hours", 40, "working hours per week")
	cmd.Flags().IntVar(&req.Year, "year", 2025, "tax year")
	cmd.Flags().BoolVar(&req.HolidayAllowanceIncluded, "allowance-included", false, "gross income includes the 8% holiday allowance")
	cmd.Flags().BoolVar(&req.Older, "older", false, "employee has reached state-pension age")
	cmd.Flags().BoolVar(&req.SocialSecurity, "social-security", true, "employee pays national insurance contributions")
	cmd.Flags().BoolVar(&req.Ruling.Enabled, "ruling", false, "apply the 30% ruling")
	cmd.Flags().StringVar(&req.Ruling.Category, "ruling-category", string(domain.RulingOther), "ruling category (research_worker, young_professional, other)")

	return cmd
}
