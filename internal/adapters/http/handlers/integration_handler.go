package handlers

import (
	"net/http"
	"time"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// WiseHandler handles HTTP requests for the Wise integration.
type WiseHandler struct {
	svc ports.WiseService
}

// NewWiseHandler creates a new WiseHandler with the given service port.
func NewWiseHandler(svc ports.WiseService) *WiseHandler {
	return &WiseHandler{svc: svc}
}

// Connect handles POST /api/v1/wise/connect. The token is checked against
// Wise before it is stored.
func (h *WiseHandler) Connect(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.WiseConnectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	conn, err := h.svc.Connect(r.Context(), userID, req.Token)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToConnectionResponse(conn))
}

// Disconnect handles DELETE /api/v1/wise.
func (h *WiseHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Disconnect(r.Context(), userID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Balances handles GET /api/v1/wise/balances.
func (h *WiseHandler) Balances(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	bs, err := h.svc.Balances(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBalanceListResponse(bs))
}

// Sync handles POST /api/v1/wise/sync with an optional date range body.
func (h *WiseHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.SyncRequest
	if !decodeOptionalJSONBody(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var from, to time.Time
	if d := optionalDate(req.From); d != nil {
		from = *d
	}
	if d := optionalDate(req.To); d != nil {
		to = *d
	}

	res, err := h.svc.Sync(r.Context(), userID, from, to)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSyncResultResponse(res))
}

// PlaidHandler handles HTTP requests for the Plaid integration.
type PlaidHandler struct {
	svc ports.PlaidService
}

// NewPlaidHandler creates a new PlaidHandler with the given service port.
func NewPlaidHandler(svc ports.PlaidService) *PlaidHandler {
	return &PlaidHandler{svc: svc}
}

// Status handles GET /api/v1/plaid/status so clients can hide Plaid Link
// when the server has no credentials.
func (h *PlaidHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.PlaidStatusResponse{Enabled: h.svc.Enabled()})
}

// CreateLinkToken handles POST /api/v1/plaid/link-token.
func (h *PlaidHandler) CreateLinkToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	token, err := h.svc.CreateLinkToken(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LinkTokenResponse{LinkToken: token})
}

// ExchangePublicToken handles POST /api/v1/plaid/exchange.
func (h *PlaidHandler) ExchangePublicToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.PlaidExchangeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	conn, err := h.svc.ExchangePublicToken(r.Context(), userID, req.PublicToken)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToConnectionResponse(conn))
}

// Sync handles POST /api/v1/plaid/sync.
func (h *PlaidHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.svc.Sync(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToSyncResultResponse(res))
}

// Disconnect handles DELETE /api/v1/plaid.
func (h *PlaidHandler) Disconnect(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Disconnect(r.Context(), userID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
