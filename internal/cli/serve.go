package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nltax/income-calculator/internal/calculation"
	"github.com/nltax/income-calculator/internal/server"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				addr = ":" + port
			}
			sum := calculation.NewSummarizer(nil, app.calcLogger())
			return server.New(sum, app.log).ListenAndServe(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default :$PORT or :8080)")
	return cmd
}
