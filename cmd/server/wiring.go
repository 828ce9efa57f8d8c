package main

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/moneygoal/internal/adapters/http"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/llm/gemini"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/moneygoal/internal/app"
	"github.com/jsamuelsen11/moneygoal/internal/platform/auth"
	"github.com/jsamuelsen11/moneygoal/internal/platform/config"
	"github.com/jsamuelsen11/moneygoal/internal/platform/health"
	"github.com/jsamuelsen11/moneygoal/internal/platform/httpclient"
	"github.com/jsamuelsen11/moneygoal/internal/platform/telemetry"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// bcryptCost of zero selects bcrypt.DefaultCost.
const bcryptCost = 0

func registerDependencies(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerInfrastructure(ctx, injector, cfg, logger)
	registerClients(injector, cfg, logger)
	registerServices(injector, cfg, logger)
	registerHTTP(injector, cfg, logger)
}

func registerInfrastructure(ctx context.Context, injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		logger.Info("opening database", slog.String("path", cfg.Database.Path))
		return sqlite.Open(ctx, cfg.Database.Path)
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*auth.Tokens, error) {
		return auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.LLMClient, error) {
		return gemini.New(ctx, cfg.Gemini, logger)
	})
}

// newHTTPClient builds the resilient client for one integration.
func newHTTPClient(i do.Injector, cc config.ClientConfig, name string, logger *slog.Logger) *httpclient.Client {
	metrics := do.MustInvoke[*telemetry.Metrics](i)
	return httpclient.New(&cc, name, metrics, logger)
}

func registerClients(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*acl.ExchangeClient, error) {
		client := newHTTPClient(i, cfg.Clients.Exchange, "exchange", logger)
		return acl.NewExchangeClient(client, cfg.Exchange.CacheTTL, cfg.Exchange.CacheSize, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.WiseClient, error) {
		client := newHTTPClient(i, cfg.Clients.Wise, "wise", logger)
		return acl.NewWiseClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*acl.PlaidClient, error) {
		client := newHTTPClient(i, cfg.Clients.Plaid, "plaid", logger)
		return acl.NewPlaidClient(client, cfg.Plaid, logger), nil
	})

	// Only channels with credentials get a sender; replies on other
	// channels fail with domain.ErrUnavailable.
	do.Provide(injector, func(i do.Injector) ([]ports.MessageSender, error) {
		var senders []ports.MessageSender
		if cfg.WhatsApp.Enabled() {
			client := newHTTPClient(i, cfg.Clients.WhatsApp, "whatsapp", logger)
			senders = append(senders, acl.NewCloudAPISender(client, cfg.WhatsApp, logger))
		}
		if cfg.Twilio.Enabled() {
			client := newHTTPClient(i, cfg.Clients.Twilio, "twilio", logger)
			senders = append(senders, acl.NewTwilioSender(client, cfg.Twilio, logger))
		}
		return senders, nil
	})
}

func registerServices(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		tokens := do.MustInvoke[*auth.Tokens](i)
		return app.NewAuthService(store, auth.NewPasswords(bcryptCost), tokens, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.GoalService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		converter := do.MustInvoke[*acl.ExchangeClient](i)
		return app.NewGoalService(store, store, converter, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TransactionService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		converter := do.MustInvoke[*acl.ExchangeClient](i)
		return app.NewTransactionService(store, store, converter, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CategoryService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewCategoryService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BudgetService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		converter := do.MustInvoke[*acl.ExchangeClient](i)
		return app.NewBudgetService(store, store, store, converter, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.BillService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		converter := do.MustInvoke[*acl.ExchangeClient](i)
		return app.NewBillService(store, store, converter, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RecurringService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		converter := do.MustInvoke[*acl.ExchangeClient](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewRecurringService(store, store, store, converter, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Scheduler, error) {
		svc := do.MustInvoke[ports.RecurringService](i)
		return app.NewScheduler(svc, cfg.Scheduler, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.AnalyticsService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		converter := do.MustInvoke[*acl.ExchangeClient](i)
		llm := do.MustInvoke[ports.LLMClient](i)
		return app.NewAnalyticsService(store, store, store, store, converter, llm, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ChatService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewChatService(store, store, store,
			do.MustInvoke[ports.AnalyticsService](i),
			do.MustInvoke[ports.BudgetService](i),
			do.MustInvoke[ports.BillService](i),
			do.MustInvoke[ports.LLMClient](i),
			cfg.Gemini.HistoryLimit, logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WiseService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewWiseService(
			do.MustInvoke[*acl.WiseClient](i),
			store, store, store, store,
			do.MustInvoke[*acl.ExchangeClient](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PlaidService, error) {
		// A nil client disables the service; a typed nil pointer would not.
		var client ports.PlaidClient
		if cfg.Plaid.Enabled() {
			client = do.MustInvoke[*acl.PlaidClient](i)
		}
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewPlaidService(client, store, store, store, store,
			do.MustInvoke[*acl.ExchangeClient](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ImportService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewImportService(store, store, store, store,
			do.MustInvoke[*acl.ExchangeClient](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WhatsAppService, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return app.NewWhatsAppService(store,
			do.MustInvoke[ports.TransactionService](i),
			do.MustInvoke[ports.CategoryService](i),
			do.MustInvoke[ports.ChatService](i),
			do.MustInvoke[ports.LLMClient](i),
			do.MustInvoke[[]ports.MessageSender](i),
			cfg.WhatsApp.VerifyToken,
			logger,
		), nil
	})
}

func registerHTTP(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		store := do.MustInvoke[*sqlite.Store](i)
		return adapthttp.Handlers{
			Health:      handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), store.Name()),
			Auth:        handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i)),
			Goals:       handlers.NewGoalHandler(do.MustInvoke[ports.GoalService](i)),
			Transaction: handlers.NewTransactionHandler(do.MustInvoke[ports.TransactionService](i)),
			Categories:  handlers.NewCategoryHandler(do.MustInvoke[ports.CategoryService](i)),
			Budgets:     handlers.NewBudgetHandler(do.MustInvoke[ports.BudgetService](i)),
			Bills:       handlers.NewBillHandler(do.MustInvoke[ports.BillService](i)),
			Recurring:   handlers.NewRecurringHandler(do.MustInvoke[ports.RecurringService](i)),
			Chat:        handlers.NewChatHandler(do.MustInvoke[ports.ChatService](i)),
			Analytics:   handlers.NewAnalyticsHandler(do.MustInvoke[ports.AnalyticsService](i)),
			Wise:        handlers.NewWiseHandler(do.MustInvoke[ports.WiseService](i)),
			Plaid:       handlers.NewPlaidHandler(do.MustInvoke[ports.PlaidService](i)),
			Import:      handlers.NewImportHandler(do.MustInvoke[ports.ImportService](i)),
			Webhooks: handlers.NewWebhookHandler(do.MustInvoke[ports.WhatsAppService](i),
				cfg.WhatsApp, cfg.Twilio),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		tokens := do.MustInvoke[*auth.Tokens](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(h, tokens,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
