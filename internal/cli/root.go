// Package cli wires the calculator into cobra commands.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nltax/income-calculator/internal/calculation"
)

// zapLogger adapts a zap sugared logger to the calculation.Logger interface.
type zapLogger struct {
	s *zap.SugaredLogger
}

func (l zapLogger) Debugf(format string, args ...any) { l.s.Debugf(format, args...) }
func (l zapLogger) Infof(format string, args ...any)  { l.s.Infof(format, args...) }
func (l zapLogger) Warnf(format string, args ...any)  { l.s.Warnf(format, args...) }
func (l zapLogger) Errorf(format string, args ...any) { l.s.Errorf(format, args...) }

// App carries the shared state of all commands.
type App struct {
	log     *zap.SugaredLogger
	verbose bool
}

// calcLogger returns the calculation-layer logger for the current settings.
func (a *App) calcLogger() calculation.Logger {
	if a.log == nil {
		return calculation.NopLogger{}
	}
	return zapLogger{s: a.log}
}

// NewRootCmd builds the nltax command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	root := &cobra.Command{
		Use:           "nltax",
		Short:         "Dutch personal income-tax estimator",
		Long:          "nltax estimates Dutch Box 1 wage tax (with credits, 30% ruling and holiday allowance) and a Box 3 savings-tax note.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if app.verbose {
				cfg = zap.NewDevelopmentConfig()
			}
			logger, err := cfg.Build()
			if err != nil {
				return err
			}
			app.log = logger.Sugar()
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(newCalculateCmd(app))
	root.AddCommand(newServeCmd(app))
	root.AddCommand(newYearsCmd())
	root.AddCommand(newExampleCmd())
	return root
}
