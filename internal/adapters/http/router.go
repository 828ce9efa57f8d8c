// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Goals       *handlers.GoalHandler
	Transaction *handlers.TransactionHandler
	Categories  *handlers.CategoryHandler
	Budgets     *handlers.BudgetHandler
	Bills       *handlers.BillHandler
	Recurring   *handlers.RecurringHandler
	Chat        *handlers.ChatHandler
	Analytics   *handlers.AnalyticsHandler
	Wise        *handlers.WiseHandler
	Plaid       *handlers.PlaidHandler
	Import      *handlers.ImportHandler
	Webhooks    *handlers.WebhookHandler
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. Everything under
// /api/v1 except registration and login requires a bearer token verified by
// tokens.
func NewRouter(h Handlers, tokens ports.TokenIssuer, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Chain(middlewares...))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteErrorResponse(w, r, domain.ErrNotFound)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", h.Health.Liveness)
	r.Get("/health/ready", h.Health.Readiness)

	// Messaging webhooks authenticate with provider signatures.
	r.Route("/webhooks", func(r chi.Router) {
		r.Get("/whatsapp", h.Webhooks.VerifyWhatsApp)
		r.Post("/whatsapp", h.Webhooks.ReceiveWhatsApp)
		r.Post("/twilio", h.Webhooks.ReceiveTwilio)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", h.Auth.Register)
		r.Post("/auth/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))

			r.Get("/settings", h.Auth.GetSettings)
			r.Patch("/settings", h.Auth.UpdateSettings)

			r.Get("/goals", h.Goals.ListGoals)
			r.Post("/goals", h.Goals.CreateGoal)
			r.Get("/goals/{id}", h.Goals.GetGoal)
			r.Put("/goals/{id}", h.Goals.UpdateGoal)
			r.Delete("/goals/{id}", h.Goals.DeleteGoal)

			r.Get("/transactions", h.Transaction.ListTransactions)
			r.Post("/transactions", h.Transaction.CreateTransaction)
			r.Get("/transactions/{id}", h.Transaction.GetTransaction)
			r.Put("/transactions/{id}", h.Transaction.UpdateTransaction)
			r.Delete("/transactions/{id}", h.Transaction.DeleteTransaction)

			r.Get("/categories", h.Categories.ListCategories)
			r.Post("/categories", h.Categories.CreateCategory)
			r.Put("/categories/{id}", h.Categories.UpdateCategory)
			r.Delete("/categories/{id}", h.Categories.DeleteCategory)

			r.Get("/budgets", h.Budgets.ListBudgets)
			r.Post("/budgets", h.Budgets.CreateBudget)
			r.Get("/budgets/status", h.Budgets.ListStatus)
			r.Get("/budgets/{id}", h.Budgets.GetBudget)
			r.Put("/budgets/{id}", h.Budgets.UpdateBudget)
			r.Delete("/budgets/{id}", h.Budgets.DeleteBudget)

			r.Get("/bills", h.Bills.ListBills)
			r.Post("/bills", h.Bills.CreateBill)
			r.Get("/bills/upcoming", h.Bills.Upcoming)
			r.Get("/bills/{id}", h.Bills.GetBill)
			r.Put("/bills/{id}", h.Bills.UpdateBill)
			r.Delete("/bills/{id}", h.Bills.DeleteBill)
			r.Post("/bills/{id}/pay", h.Bills.MarkPaid)

			r.Get("/recurring", h.Recurring.ListRecurring)
			r.Post("/recurring", h.Recurring.CreateRecurring)
			r.Get("/recurring/{id}", h.Recurring.GetRecurring)
			r.Put("/recurring/{id}", h.Recurring.UpdateRecurring)
			r.Delete("/recurring/{id}", h.Recurring.DeleteRecurring)

			r.Post("/chat/messages", h.Chat.SendMessage)
			r.Get("/chat/messages", h.Chat.History)
			r.Delete("/chat/messages", h.Chat.Clear)

			r.Get("/analytics/summary", h.Analytics.Summary)
			r.Get("/analytics/spending", h.Analytics.SpendingByCategory)
			r.Get("/analytics/trend", h.Analytics.MonthlyTrend)
			r.Get("/analytics/goals/{id}/forecast", h.Analytics.GoalForecast)

			r.Post("/wise/connect", h.Wise.Connect)
			r.Delete("/wise", h.Wise.Disconnect)
			r.Get("/wise/balances", h.Wise.Balances)
			r.Post("/wise/sync", h.Wise.Sync)

			r.Get("/plaid/status", h.Plaid.Status)
			r.Post("/plaid/link-token", h.Plaid.CreateLinkToken)
			r.Post("/plaid/exchange", h.Plaid.ExchangePublicToken)
			r.Post("/plaid/sync", h.Plaid.Sync)
			r.Delete("/plaid", h.Plaid.Disconnect)

			r.Post("/import/csv/preview", h.Import.Preview)
			r.Post("/import/csv", h.Import.Import)
		})
	})

	return r
}
