package api

import (
	"net/http"

	"cryptorates/internal/metrics"
	"cryptorates/internal/rates/handler"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(ratesHandler *handler.Handler, m *metrics.Metrics, reg *prometheus.Registry) *chi.Mux {
	router := chi.NewRouter()
	router.Use(instrument(m))
	router.Use(recoverer(ratesHandler))

	router.Get("/", ratesHandler.Index)
	router.Get("/api/rates", ratesHandler.APIRates)
	router.Get("/health", ratesHandler.Health)
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.NotFound(ratesHandler.NotFound)
	return router
}
