package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apimw "github.com/bettergovph/open-monitoring/internal/api/middleware"
	"github.com/bettergovph/open-monitoring/internal/domain"
)

// AgentHandler handles geo-agent management endpoints.
type AgentHandler struct {
	logger *zap.Logger
}

func NewAgentHandler(logger *zap.Logger) *AgentHandler {
	return &AgentHandler{logger: logger}
}

// Restart handles POST /api/restart-agent/{location}
//
// Agents cannot be restarted remotely yet; the endpoint always answers
// not_implemented.
//
// @Summary  Request an agent restart
// @Tags     agents
// @Produce  json
// @Param    location  path      string  true  "Agent location, e.g. PH"
// @Success  200       {object}  domain.AgentRestart
// @Router   /api/restart-agent/{location} [post]
func (h *AgentHandler) Restart(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	h.logger.Info("agent restart requested",
		zap.String("location", location),
		zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
	)
	respondJSON(w, http.StatusOK, domain.NewAgentRestart(location))
}
