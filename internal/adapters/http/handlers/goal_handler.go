package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// GoalHandler handles HTTP requests for savings goals.
type GoalHandler struct {
	svc ports.GoalService
}

// NewGoalHandler creates a new GoalHandler with the given service port.
func NewGoalHandler(svc ports.GoalService) *GoalHandler {
	return &GoalHandler{svc: svc}
}

// ListGoals handles GET /api/v1/goals.
func (h *GoalHandler) ListGoals(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	goals, err := h.svc.ListGoals(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToGoalListResponse(goals))
}

// CreateGoal handles POST /api/v1/goals.
func (h *GoalHandler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.GoalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	g := mapGoalRequest(&req)
	g.UserID = userID

	created, err := h.svc.CreateGoal(r.Context(), g)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToGoalResponse(created))
}

// GetGoal handles GET /api/v1/goals/{id}. The response includes the goal's
// recent transactions.
func (h *GoalHandler) GetGoal(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	detail, err := h.svc.GetGoal(r.Context(), userID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToGoalDetailResponse(detail))
}

// UpdateGoal handles PUT /api/v1/goals/{id}. The saved balance is kept;
// it only moves through transactions.
func (h *GoalHandler) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req dto.GoalRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateGoal(r.Context(), userID, id, mapGoalRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToGoalResponse(updated))
}

// DeleteGoal handles DELETE /api/v1/goals/{id}.
func (h *GoalHandler) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteGoal(r.Context(), userID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
