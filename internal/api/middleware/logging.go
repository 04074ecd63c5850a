package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// RequestLogger returns a middleware that emits a structured zap log line
// for every completed HTTP request, including the correlation ID.
//
// The chi wrapper keeps http.Hijacker available so WebSocket upgrades
// still work behind it.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", statusOf(ww, r)),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("latency", time.Since(start)),
				zap.String("correlation_id", GetCorrelationID(r.Context())),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

// statusOf reports the status the client saw. A WebSocket upgrade that wrote
// nothing through the wrapper was hijacked and answered 101; otherwise
// "handler wrote nothing" is 200, matching net/http.
func statusOf(ww chimw.WrapResponseWriter, r *http.Request) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	if websocket.IsWebSocketUpgrade(r) {
		return http.StatusSwitchingProtocols
	}
	return http.StatusOK
}
