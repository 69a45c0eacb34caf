package api

import (
	"net/http"
	"time"

	"cryptorates/internal/metrics"
	"cryptorates/internal/rates/handler"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// instrument records the request counter and latency histogram for every
// route except the metrics exposition itself.
func instrument(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			crw := &capturingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(crw, r)

			endpoint := chi.RouteContext(r.Context()).RoutePattern()
			if endpoint == "" {
				endpoint = r.URL.Path
			}
			duration := time.Since(start)
			m.RequestsTotal.WithLabelValues(r.Method, endpoint).Inc()
			m.RequestDuration.Observe(duration.Seconds())

			logrus.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   crw.statusCode,
				"duration": duration,
			}).Debug("HTTP request")
		})
	}
}

// recoverer converts panics leaking out of handlers into the generic HTML
// error page. The health endpoint recovers on its own before this sees
// anything.
func recoverer(ratesHandler *handler.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logrus.Errorf("Internal server error: %v", rec)
					ratesHandler.RenderError(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

type capturingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (crw *capturingResponseWriter) WriteHeader(code int) {
	crw.statusCode = code
	crw.ResponseWriter.WriteHeader(code)
}
