package handler

import (
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	"cryptorates/internal/domain"
	"cryptorates/internal/web"

	"github.com/sirupsen/logrus"
)

// RatesProvider is the cache surface the handlers need.
type RatesProvider interface {
	GetRates(ctx context.Context) (*domain.RateSnapshot, error)
}

type Handler struct {
	rates   RatesProvider
	version string
	tmpl    *template.Template
}

func NewRatesHandler(rates RatesProvider, version string) (*Handler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Handler{rates: rates, version: version, tmpl: tmpl}, nil
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// RenderError writes the HTML error page with the given status.
func (h *Handler) RenderError(w http.ResponseWriter, statusCode int, errorMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := h.tmpl.ExecuteTemplate(w, "error.html", map[string]string{"Error": errorMsg}); err != nil {
		logrus.WithError(err).Error("Failed to render error page")
	}
}

func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	h.RenderError(w, http.StatusNotFound, "Page not found")
}
