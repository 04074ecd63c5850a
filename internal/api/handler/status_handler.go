package handler

import (
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/bettergovph/open-monitoring/internal/api/middleware"
	"github.com/bettergovph/open-monitoring/internal/domain"
)

// StatusHandler serves the fixed status endpoints.
type StatusHandler struct {
	logger *zap.Logger
}

func NewStatusHandler(logger *zap.Logger) *StatusHandler {
	return &StatusHandler{logger: logger}
}

// Root handles GET /
//
// @Summary  API banner
// @Tags     status
// @Produce  json
// @Success  200  {object}  domain.ServiceStatus
// @Router   / [get]
func (h *StatusHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.RootStatus)
}

// SimpleTest handles GET /simple-test
//
// @Summary  Connectivity test; logs each call
// @Tags     status
// @Produce  json
// @Success  200  {object}  domain.TestResult
// @Router   /simple-test [get]
func (h *StatusHandler) SimpleTest(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("simple test endpoint called",
		zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
	)
	respondJSON(w, http.StatusOK, domain.SimpleTest)
}

// TestAPI handles GET /test-api
//
// @Summary  Monitoring API banner; logs each call
// @Tags     status
// @Produce  json
// @Success  200  {object}  domain.ServiceStatus
// @Router   /test-api [get]
func (h *StatusHandler) TestAPI(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("API root endpoint called",
		zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
	)
	respondJSON(w, http.StatusOK, domain.TestAPIStatus)
}
