package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// BudgetHandler handles HTTP requests for budgets.
type BudgetHandler struct {
	svc ports.BudgetService
	now func() time.Time
}

// NewBudgetHandler creates a new BudgetHandler with the given service port.
func NewBudgetHandler(svc ports.BudgetService) *BudgetHandler {
	return &BudgetHandler{svc: svc, now: time.Now}
}

// ListBudgets handles GET /api/v1/budgets.
func (h *BudgetHandler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	bs, err := h.svc.ListBudgets(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBudgetListResponse(bs))
}

// ListStatus handles GET /api/v1/budgets/status: spending against every
// budget in its current period.
func (h *BudgetHandler) ListStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	statuses, err := h.svc.ListStatus(r.Context(), userID, h.now())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBudgetStatusListResponse(statuses))
}

// CreateBudget handles POST /api/v1/budgets.
func (h *BudgetHandler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.BudgetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	b := mapBudgetRequest(&req)
	b.UserID = userID

	created, err := h.svc.CreateBudget(r.Context(), b)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBudgetResponse(created))
}

// GetBudget handles GET /api/v1/budgets/{id}.
func (h *BudgetHandler) GetBudget(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	b, err := h.svc.GetBudget(r.Context(), userID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBudgetResponse(b))
}

// UpdateBudget handles PUT /api/v1/budgets/{id}.
func (h *BudgetHandler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req dto.BudgetRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateBudget(r.Context(), userID, id, mapBudgetRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBudgetResponse(updated))
}

// DeleteBudget handles DELETE /api/v1/budgets/{id}.
func (h *BudgetHandler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteBudget(r.Context(), userID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
