package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bettergovph/open-monitoring/internal/api/handler"
	apimw "github.com/bettergovph/open-monitoring/internal/api/middleware"
	"github.com/bettergovph/open-monitoring/internal/config"
	"github.com/bettergovph/open-monitoring/internal/metrics"
	"github.com/bettergovph/open-monitoring/internal/ratelimiter"
	"github.com/bettergovph/open-monitoring/internal/ws"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
//
// Unknown paths fall through to chi's default 404, and known paths with
// the wrong method to its default 405.
func NewRouter(
	cfg *config.Config,
	hub *ws.Hub,
	reg prometheus.Gatherer,
	m *metrics.Metrics,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestSize(cfg.MaxBodyBytes))
	r.Use(apimw.CorrelationID)
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.Metrics(m.HTTPHook()))
	r.Use(apimw.CORS(cfg.CORSAllowedOrigins))
	r.Use(apimw.RateLimit(ratelimiter.New(cfg.RateLimit), handler.RateLimited, logger))

	// --- handler instances ---
	sh := handler.NewStatusHandler(logger)
	hh := handler.NewHealthHandler(hub)
	ah := handler.NewAgentHandler(logger)

	// --- routes ---
	r.Get("/", sh.Root)
	r.Get("/simple-test", sh.SimpleTest)
	r.Get("/test-api", sh.TestAPI)

	r.Get("/health", hh.Health)
	r.Get("/ws", hub.ServeWS)

	// Raw Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", hh.Detailed)
		r.Post("/restart-agent/{location}", ah.Restart)
	})

	return r
}
