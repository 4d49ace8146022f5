package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nltax/income-calculator/internal/domain"
)

func newYearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the supported tax years",
		Run: func(cmd *cobra.Command, args []string) {
			for _, y := range domain.SupportedYears() {
				fmt.Fprintln(cmd.OutOrStdout(), y)
			}
		},
	}
}
