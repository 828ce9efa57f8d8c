package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withEnv(cmd.Context(), func(e *env) error {
				fmt.Fprintf(cmd.OutOrStdout(), "database %s is up to date\n", e.cfg.Database.Path)
				return nil
			})
		},
	}
}
