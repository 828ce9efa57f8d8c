package handlers

import (
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/domain"
	"github.com/jsamuelsen11/moneygoal/internal/domain/transaction"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// maxListLimit caps the limit query parameter of list endpoints.
const maxListLimit = 1000

// TransactionHandler handles HTTP requests for transactions.
type TransactionHandler struct {
	svc ports.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler with the given service port.
func NewTransactionHandler(svc ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// ListTransactions handles GET /api/v1/transactions.
//
// Optional query parameters: goal_id, category_id, type, source, from, to
// (inclusive YYYY-MM-DD) and limit.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	filter, err := parseTransactionFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	txs, err := h.svc.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTransactionListResponse(txs))
}

// CreateTransaction handles POST /api/v1/transactions.
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	tx := mapTransactionRequest(&req)
	tx.UserID = userID

	created, err := h.svc.CreateTransaction(r.Context(), tx)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToTransactionResponse(created))
}

// GetTransaction handles GET /api/v1/transactions/{id}.
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	tx, err := h.svc.GetTransaction(r.Context(), userID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTransactionResponse(tx))
}

// UpdateTransaction handles PUT /api/v1/transactions/{id}.
func (h *TransactionHandler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateTransaction(r.Context(), userID, id, mapTransactionRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToTransactionResponse(updated))
}

// DeleteTransaction handles DELETE /api/v1/transactions/{id}. A linked goal
// is moved back by the transaction's amount.
func (h *TransactionHandler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteTransaction(r.Context(), userID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseTransactionFilter extracts the list filter from query parameters.
func parseTransactionFilter(r *http.Request) (transaction.Filter, error) {
	var (
		filter transaction.Filter
		err    error
	)
	q := r.URL.Query()

	if filter.GoalID, err = queryID(r, "goal_id"); err != nil {
		return filter, err
	}
	if filter.CategoryID, err = queryID(r, "category_id"); err != nil {
		return filter, err
	}
	if raw := q.Get("type"); raw != "" {
		filter.Type = transaction.Type(raw)
		if !filter.Type.IsValid() {
			return filter, domain.NewValidationError("type", fmt.Sprintf("invalid: %q", raw))
		}
	}
	if raw := q.Get("source"); raw != "" {
		filter.Source = transaction.Source(raw)
		if !filter.Source.IsValid() {
			return filter, domain.NewValidationError("source", fmt.Sprintf("invalid: %q", raw))
		}
	}
	if filter.From, err = queryDate(r, "from"); err != nil {
		return filter, err
	}
	if filter.To, err = queryDate(r, "to"); err != nil {
		return filter, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, domain.NewValidationError("to", "must not be before from")
	}
	if filter.Limit, err = queryInt(r, "limit", 0); err != nil {
		return filter, err
	}
	filter.Limit = min(filter.Limit, maxListLimit)

	return filter, nil
}
