package main

import (
	"fmt"
	"text/tabwriter"

	"txtchange/internal/usecase"

	"github.com/spf13/cobra"
)

func newReconcileCommand() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Compare the flat listing collection with the category collections",
		Long: "Scans every listing copy and reports category copies that are missing, " +
			"orphaned, filed under the wrong category or out of date. With --repair " +
			"the flat record wins and the category collections are rewritten.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var reconciler usecase.ReconcileUsecase

			return withApp(cmd.Context(), func() error {
				report, err := reconciler.Reconcile(cmd.Context(), repair)
				if report != nil {
					if printErr := printReport(cmd, report); printErr != nil && err == nil {
						err = printErr
					}
				}

				return err
			}, &reconciler)
		},
	}
	cmd.Flags().BoolVar(&repair, "repair", false, "rewrite diverged category copies")

	return cmd
}

func printReport(cmd *cobra.Command, report *usecase.ReconcileReport) error {
	printf(cmd, "%d listings scanned, %d findings\n", report.Listings, len(report.Findings))
	if len(report.Findings) == 0 {
		return nil
	}

	out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(out, "COLLECTION\tBOOK\tKIND\tREPAIRED")
	for _, finding := range report.Findings {
		fmt.Fprintf(out, "%s\t%s\t%s\t%t\n", finding.Collection, finding.BookID, finding.Kind, finding.Repaired)
	}

	return out.Flush()
}
