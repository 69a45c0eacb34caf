package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
)

// Index renders the HTML rates page. It fails with the error page only when
// no snapshot has ever been obtained; a stale snapshot renders like a fresh
// one.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	snap, err := h.rates.GetRates(r.Context())
	if err != nil {
		logrus.WithError(err).WithField("handler", "Index").Error("No exchange rates available")
		h.RenderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if execErr := h.tmpl.ExecuteTemplate(w, "index.html", snap); execErr != nil {
		logrus.WithError(execErr).WithField("handler", "Index").Error("Failed to render rates page")
	}
}
