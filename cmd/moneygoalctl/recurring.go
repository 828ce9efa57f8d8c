package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/app"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

func newRecurringCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Manage recurring expenses",
	}

	var date string
	run := &cobra.Command{
		Use:   "run",
		Short: "Create transactions for every recurring expense due on or before a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			today := time.Now().UTC()
			if date != "" {
				d, err := dto.ParseDate(date)
				if err != nil {
					return fmt.Errorf("--date: %w", err)
				}
				today = d
			}

			return opts.withEnv(cmd.Context(), func(e *env) error {
				svc := app.NewRecurringService(e.store, e.store, e.store, e.converter, nil, e.logger)
				res, err := svc.ProcessDue(cmd.Context(), today)
				if err != nil {
					return err
				}
				printRunResult(cmd.OutOrStdout(), res)
				if len(res.Failures) > 0 {
					return fmt.Errorf("%d recurring expenses failed", len(res.Failures))
				}
				return nil
			})
		},
	}
	run.Flags().StringVar(&date, "date", "", "process as of this YYYY-MM-DD date (default today)")

	cmd.AddCommand(run)
	return cmd
}

func printRunResult(w io.Writer, res *ports.RecurringRunResult) {
	fmt.Fprintf(w, "due: %d  created: %d  skipped: %d  failed: %d\n",
		res.Due, res.Created, res.Skipped, len(res.Failures))
	for _, f := range res.Failures {
		fmt.Fprintf(w, "  expense %d: %v\n", f.ExpenseID, f.Err)
	}
}
