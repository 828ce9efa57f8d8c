package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/moneygoal/internal/app"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

type importOptions struct {
	email    string
	file     string
	goalID   int64
	currency string
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import transactions from files",
	}

	o := &importOptions{}
	csvCmd := &cobra.Command{
		Use:   "csv",
		Short: "Import a bank statement CSV for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withEnv(cmd.Context(), func(e *env) error {
				return runImportCSV(cmd, e, o)
			})
		},
	}
	csvCmd.Flags().StringVar(&o.email, "user", "", "email of the account to import into")
	csvCmd.Flags().StringVar(&o.file, "file", "", "path to the CSV file")
	csvCmd.Flags().Int64Var(&o.goalID, "goal", 0, "link imported rows to this goal id")
	csvCmd.Flags().StringVar(&o.currency, "currency", "", "currency for rows without a currency column")
	_ = csvCmd.MarkFlagRequired("user")
	_ = csvCmd.MarkFlagRequired("file")

	cmd.AddCommand(csvCmd)
	return cmd
}

func runImportCSV(cmd *cobra.Command, e *env, o *importOptions) error {
	ctx := cmd.Context()

	u, err := e.store.GetUserByEmail(ctx, o.email)
	if err != nil {
		return fmt.Errorf("looking up %s: %w", o.email, err)
	}

	f, err := os.Open(o.file)
	if err != nil {
		return fmt.Errorf("opening csv: %w", err)
	}
	defer f.Close()

	opts := ports.ImportOptions{Currency: o.currency}
	if o.goalID > 0 {
		opts.GoalID = &o.goalID
	}

	svc := app.NewImportService(e.store, e.store, e.store, e.store, e.converter, nil, e.logger)
	res, err := svc.Import(ctx, u.ID, f, opts)
	if err != nil {
		return err
	}

	printImportResult(cmd.OutOrStdout(), res)
	if res.Imported == 0 && res.Failed > 0 {
		return errors.New("no rows imported")
	}
	return nil
}

func printImportResult(w io.Writer, res *ports.ImportResult) {
	fmt.Fprintf(w, "batch %s: imported %d, skipped %d, failed %d\n",
		res.BatchID, res.Imported, res.Skipped, res.Failed)
	for _, re := range res.Errors {
		fmt.Fprintf(w, "  line %d: %s\n", re.Line, re.Message)
	}
}
