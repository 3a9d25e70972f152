package main

import (
	"text/tabwriter"

	"txtchange/internal/domain/entity"

	"github.com/spf13/cobra"
)

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the marketplace categories and conditions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

			printf(cmd, "Categories:\n")
			for _, category := range entity.Categories() {
				printf(cmd, "  %s\n", category)
			}

			printf(cmd, "\nConditions:\n")
			for _, condition := range entity.Conditions() {
				if _, err := out.Write([]byte("  " + string(condition) + "\t" + condition.Description() + "\n")); err != nil {
					return err
				}
			}

			return out.Flush()
		},
	}
}
