package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bettergovph/open-monitoring/internal/ratelimiter"
)

// RateLimit hands requests to reject once the shared token bucket is empty.
// A nil limiter lets every request through.
func RateLimit(limiter *ratelimiter.Limiter, reject http.HandlerFunc, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			logger.Warn("request rate limited",
				zap.String("path", r.URL.Path),
				zap.String("correlation_id", GetCorrelationID(r.Context())),
			)
			w.Header().Set("Retry-After", "1")
			reject(w, r)
		})
	}
}
