package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	svc ports.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler with the given service port.
func NewCategoryHandler(svc ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// ListCategories handles GET /api/v1/categories. The default set is created
// on first access.
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	cs, err := h.svc.ListCategories(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCategoryListResponse(cs))
}

// CreateCategory handles POST /api/v1/categories.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	c := mapCategoryRequest(&req)
	c.UserID = userID

	created, err := h.svc.CreateCategory(r.Context(), c)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToCategoryResponse(created))
}

// UpdateCategory handles PUT /api/v1/categories/{id}.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req dto.CategoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateCategory(r.Context(), userID, id, mapCategoryRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCategoryResponse(updated))
}

// DeleteCategory handles DELETE /api/v1/categories/{id}.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(r.Context(), userID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
