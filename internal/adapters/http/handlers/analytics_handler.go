package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// AnalyticsHandler handles HTTP requests for reports and forecasts.
type AnalyticsHandler struct {
	svc ports.AnalyticsService
	now func() time.Time
}

// NewAnalyticsHandler creates a new AnalyticsHandler with the given service port.
func NewAnalyticsHandler(svc ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, now: time.Now}
}

// dateRange reads ?from and ?to. The default is the current month to date.
func (h *AnalyticsHandler) dateRange(r *http.Request) (from, to time.Time, err error) {
	now := h.now()
	from, to = domain.MonthStart(now), domain.Day(now)

	f, err := queryDate(r, "from")
	if err != nil {
		return from, to, err
	}
	if f != nil {
		from = *f
	}
	t, err := queryDate(r, "to")
	if err != nil {
		return from, to, err
	}
	if t != nil {
		to = *t
	}
	if to.Before(from) {
		return from, to, domain.NewValidationError("to", "must not be before from")
	}
	return from, to, nil
}

// Summary handles GET /api/v1/analytics/summary.
func (h *AnalyticsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	from, to, err := h.dateRange(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	s, err := h.svc.Summary(r.Context(), userID, from, to)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSummaryResponse(s, from, to))
}

// SpendingByCategory handles GET /api/v1/analytics/spending.
func (h *AnalyticsHandler) SpendingByCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	from, to, err := h.dateRange(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	spend, err := h.svc.SpendingByCategory(r.Context(), userID, from, to)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSpendingResponse(spend))
}

// MonthlyTrend handles GET /api/v1/analytics/trend?months=N.
func (h *AnalyticsHandler) MonthlyTrend(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	months, err := queryInt(r, "months", 0)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	trend, err := h.svc.MonthlyTrend(r.Context(), userID, months)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTrendResponse(trend))
}

// GoalForecast handles GET /api/v1/analytics/goals/{id}/forecast.
func (h *AnalyticsHandler) GoalForecast(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	f, err := h.svc.GoalForecast(r.Context(), userID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToForecastResponse(f))
}
