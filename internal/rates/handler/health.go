package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}

// Health reports "healthy" when the cache serves a snapshot and "degraded"
// when it returns a structured error. Only an unexpected fault out of the
// cache turns into "unhealthy" with a 500.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.Errorf("Health check failed: %v", rec)
			writeJSON(w, http.StatusInternalServerError, HealthResponse{
				Status:    "unhealthy",
				Error:     fmt.Sprint(rec),
				Timestamp: time.Now(),
			})
		}
	}()

	status := "healthy"
	if _, err := h.rates.GetRates(r.Context()); err != nil {
		status = "degraded"
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.version,
	})
}
