package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// ChatHandler handles HTTP requests for the AI advisor conversation.
type ChatHandler struct {
	svc ports.ChatService
}

// NewChatHandler creates a new ChatHandler with the given service port.
func NewChatHandler(svc ports.ChatService) *ChatHandler {
	return &ChatHandler{svc: svc}
}

// SendMessage handles POST /api/v1/chat/messages and returns the advisor's
// reply.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.ChatRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reply, err := h.svc.SendMessage(r.Context(), userID, req.Message)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToChatMessageResponse(reply))
}

// History handles GET /api/v1/chat/messages?limit=N, oldest first.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	msgs, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToChatHistoryResponse(msgs))
}

// Clear handles DELETE /api/v1/chat/messages.
func (h *ChatHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Clear(r.Context(), userID); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
