package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/platform/httpclient"
	"github.com/jsamuelsen11/moneygoal/internal/platform/logging"
)

// env bundles what every subcommand needs. Metrics are not exported from
// the CLI, so services receive nil.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	store     *sqlite.Store
	converter *acl.ExchangeClient
}

func (e *env) Close() error {
	return e.store.Close()
}

type rootOptions struct {
	profile string
	dbPath  string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "moneygoalctl",
		Short:         "Operate a MoneyGoal deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.profile, "profile", "p", os.Getenv("APP_PROFILE"),
		"configuration profile (defaults to $APP_PROFILE)")
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "override database.path from the profile")

	cmd.AddCommand(
		newMigrateCmd(opts),
		newRecurringCmd(opts),
		newImportCmd(opts),
	)
	return cmd
}

// open loads the profile and opens the database, applying migrations.
func (o *rootOptions) open(ctx context.Context) (*env, error) {
	if o.profile == "" {
		return nil, errors.New("a profile is required: pass --profile or set APP_PROFILE")
	}
	cfg, err := config.Load(o.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if o.dbPath != "" {
		cfg.Database.Path = o.dbPath
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	store, err := sqlite.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	client := httpclient.New(&cfg.Clients.Exchange, "exchange", nil, logger)
	return &env{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		converter: acl.NewExchangeClient(client, cfg.Exchange.CacheTTL, cfg.Exchange.CacheSize, logger),
	}, nil
}

// withEnv runs fn with an opened env and closes it afterwards.
func (o *rootOptions) withEnv(ctx context.Context, fn func(e *env) error) (err error) {
	e, err := o.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing database: %w", cerr)
		}
	}()
	return fn(e)
}
