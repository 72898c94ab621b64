package api

import (
	"net/http"
	"strconv"

	"footprint-workers/internal/common/logger"
	"footprint-workers/internal/common/metrics"

	"github.com/gorilla/mux"
)

// CORS adds the cross-origin headers the browser frontend needs.
func CORS(allowedOrigin string) mux.MiddlewareFunc {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", allowedOrigin)
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")
			h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			h.Set("Access-Control-Max-Age", "86400")
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Instrument counts requests by route template and status code, and turns
// a panicking handler into a 500.
func Instrument(log logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			route := r.URL.Path
			if current := mux.CurrentRoute(r); current != nil {
				if tmpl, err := current.GetPathTemplate(); err == nil {
					route = tmpl
				}
			}

			defer func() {
				if p := recover(); p != nil {
					log.Error("Handler panicked", map[string]interface{}{
						"route": route,
						"panic": p,
					})
					respondMessage(rec, http.StatusInternalServerError, InternalErrorMessage)
				}
				metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
			}()

			next.ServeHTTP(rec, r)
		})
	}
}

// NewRouter builds the API router with its middleware. extra routes such
// as /metrics are mounted by the caller.
func NewRouter(h *Handler, allowedOrigin string) *mux.Router {
	r := mux.NewRouter()
	r.Use(CORS(allowedOrigin))
	r.Use(Instrument(h.logger))
	h.RegisterRoutes(r)
	return r
}
