package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// RecurringHandler handles HTTP requests for recurring expense templates.
// Materialization is done by the scheduler, not through the API.
type RecurringHandler struct {
	svc ports.RecurringService
}

// NewRecurringHandler creates a new RecurringHandler with the given service port.
func NewRecurringHandler(svc ports.RecurringService) *RecurringHandler {
	return &RecurringHandler{svc: svc}
}

// ListRecurring handles GET /api/v1/recurring.
func (h *RecurringHandler) ListRecurring(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	es, err := h.svc.ListRecurring(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToRecurringListResponse(es))
}

// CreateRecurring handles POST /api/v1/recurring.
func (h *RecurringHandler) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.RecurringRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	e := mapRecurringRequest(&req)
	e.UserID = userID

	created, err := h.svc.CreateRecurring(r.Context(), e)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToRecurringResponse(created))
}

// GetRecurring handles GET /api/v1/recurring/{id}.
func (h *RecurringHandler) GetRecurring(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	e, err := h.svc.GetRecurring(r.Context(), userID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToRecurringResponse(e))
}

// UpdateRecurring handles PUT /api/v1/recurring/{id}.
func (h *RecurringHandler) UpdateRecurring(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req dto.RecurringRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateRecurring(r.Context(), userID, id, mapRecurringRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToRecurringResponse(updated))
}

// DeleteRecurring handles DELETE /api/v1/recurring/{id}.
func (h *RecurringHandler) DeleteRecurring(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteRecurring(r.Context(), userID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
