package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/adapters/http/dto"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

// AuthHandler handles registration, login and account settings.
type AuthHandler struct {
	svc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.Register(r.Context(), ports.RegisterInput{
		Email:        req.Email,
		Name:         req.Name,
		Password:     req.Password,
		BaseCurrency: req.BaseCurrency,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, dto.ToAuthResponse(res))
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToAuthResponse(res))
}

// GetSettings handles GET /api/v1/settings.
func (h *AuthHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	u, err := h.svc.GetSettings(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToUserResponse(u))
}

// UpdateSettings handles PATCH /api/v1/settings.
func (h *AuthHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req dto.UpdateSettingsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateSettings(r.Context(), userID, ports.SettingsUpdate{
		Name:          req.Name,
		BaseCurrency:  req.BaseCurrency,
		WhatsAppPhone: req.WhatsAppPhone,
	})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToUserResponse(u))
}
