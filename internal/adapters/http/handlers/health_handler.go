package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/moneygoal/internal/platform/logging"
	"github.com/jsamuelsen11/moneygoal/internal/ports"
)

const (
	statusOK          = "ok"
	statusReady       = "ready"
	statusNotReady    = "not_ready"
	statusDegraded    = "degraded"
	statusUnavailable = "unavailable"
)

// healthResponse is the body of both health endpoints.
type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	critical map[string]bool
}

// NewHealthHandler creates a HealthHandler. Only a failing check named in
// critical makes the service not ready; any other failure reports degraded.
func NewHealthHandler(registry ports.HealthRegistry, critical ...string) *HealthHandler {
	h := &HealthHandler{registry: registry, critical: make(map[string]bool, len(critical))}
	for _, name := range critical {
		h.critical[name] = true
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. A failing critical check answers 503
// not_ready. A failing integration answers 200 degraded, since pulling the
// service out of rotation would not bring a bank API back. Failure details
// are logged, not returned.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())
	logger := logging.FromContext(r.Context())

	resp := healthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}

		logger.WarnContext(r.Context(), "readiness check failed",
			slog.String("check", name),
			slog.Bool("critical", h.critical[name]),
			slog.Any("error", err),
		)
		resp.Checks[name] = statusUnavailable
		switch {
		case h.critical[name]:
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		case resp.Status == statusReady:
			resp.Status = statusDegraded
		}
	}

	writeJSON(w, r, code, resp)
}
