package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// BillHandler handles HTTP requests for bills.
type BillHandler struct {
	svc ports.BillService
}

// NewBillHandler creates a new BillHandler with the given service port.
func NewBillHandler(svc ports.BillService) *BillHandler {
	return &BillHandler{svc: svc}
}

// ListBills handles GET /api/v1/bills.
func (h *BillHandler) ListBills(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	bills, err := h.svc.ListBills(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBillListResponse(bills))
}

// Upcoming handles GET /api/v1/bills/upcoming?days=N. Overdue bills are
// included; days defaults to 7.
func (h *BillHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	days, err := queryInt(r, "days", 0)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	bills, err := h.svc.Upcoming(r.Context(), userID, days)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBillListResponse(bills))
}

// CreateBill handles POST /api/v1/bills.
func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.BillRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	b := mapBillRequest(&req)
	b.UserID = userID

	created, err := h.svc.CreateBill(r.Context(), b)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToBillResponse(created))
}

// GetBill handles GET /api/v1/bills/{id}.
func (h *BillHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	b, err := h.svc.GetBill(r.Context(), userID, id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBillResponse(b))
}

// UpdateBill handles PUT /api/v1/bills/{id}. Payment state is kept.
func (h *BillHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req dto.BillRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateBill(r.Context(), userID, id, mapBillRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBillResponse(updated))
}

// DeleteBill handles DELETE /api/v1/bills/{id}.
func (h *BillHandler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteBill(r.Context(), userID, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MarkPaid handles POST /api/v1/bills/{id}/pay. The body is optional; with
// record_transaction set, an expense is logged and optionally linked to
// goal_id.
func (h *BillHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	userID, id, ok := userAndID(w, r)
	if !ok {
		return
	}

	var req dto.PayBillRequest
	if !decodeOptionalJSONBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	payment, err := h.svc.MarkPaid(r.Context(), userID, id, ports.PayOptions{
		RecordTransaction: req.RecordTransaction,
		GoalID:            req.GoalID,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBillPaymentResponse(payment))
}
