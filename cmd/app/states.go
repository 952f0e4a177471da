package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "states",
		Short: "Print the workflow states and the fields each one requires",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			states, err := queries.NewGetWorkflowQueryHandler().Handle(c.Context(), queries.NewGetWorkflowQuery())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(c.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tSTATE\tLABEL\tPROGRESS\tREQUIRED TO LEAVE")
			for _, s := range states {
				required := make([]string, len(s.RequiredFields))
				for i, f := range s.RequiredFields {
					required[i] = string(f.Field)
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\t%s\n",
					s.Position, s.Name, s.Label, s.Progress, strings.Join(required, ", "))
			}
			return w.Flush()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Count orders per workflow state",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return withApplication(c, func(app *application) error {
				handler := app.root.CreateGetWorkflowSummaryQueryHandler()
				summary, err := handler.Handle(c.Context(), queries.NewGetWorkflowSummaryQuery())
				if err != nil {
					return err
				}
				printSummary(c, summary)
				return nil
			})
		},
	})
}

func printSummary(c *cobra.Command, summary services.Summary) {
	out := c.OutOrStdout()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATE\tORDERS")
	for _, sc := range summary.ByState {
		fmt.Fprintf(w, "%s\t%d\n", sc.State.Label(), sc.Count)
	}
	_ = w.Flush()

	fmt.Fprintf(out, "\nTotal: %d  Blocked: %d  Average progress: %.1f%%\n",
		summary.Total, summary.Blocked, summary.AverageProgress)
	if summary.Unknown > 0 {
		fmt.Fprintf(out, "Unrecognized state: %d\n", summary.Unknown)
	}
}
