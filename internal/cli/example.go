package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nltax/income-calculator/internal/config"
)

func newExampleCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write a starter request file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.NewInputParser().WriteExample(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "nltax.yaml", "output file")
	return cmd
}
