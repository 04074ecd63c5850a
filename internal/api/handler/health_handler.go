package handler

import (
	"net/http"
	"time"

	"github.com/bettergovph/open-monitoring/internal/domain"
)

// ClientCounter reports how many WebSocket clients are connected.
type ClientCounter interface {
	Count() int
}

// HealthHandler serves the liveness check and the detailed health report.
type HealthHandler struct {
	clients ClientCounter
	now     func() time.Time
}

func NewHealthHandler(clients ClientCounter) *HealthHandler {
	return &HealthHandler{clients: clients, now: time.Now}
}

// Health handles GET /health
//
// @Summary  Liveness check
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Detailed handles GET /api/health
//
// @Summary  Health report with connected WebSocket clients
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.Health
// @Router   /api/health [get]
func (h *HealthHandler) Detailed(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.Health{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Services: domain.HealthServices{
			WebSocket: domain.WebSocketHealth{Clients: h.clients.Count()},
		},
	})
}
