package handler

import "net/http"

type errorResponse struct {
	Error string `json:"error"`
}

// APIRates returns the snapshot as JSON. The endpoint always answers 200;
// a structured fetch error becomes an {"error": ...} body rather than an
// error status.
func (h *Handler) APIRates(w http.ResponseWriter, r *http.Request) {
	snap, err := h.rates.GetRates(r.Context())
	if err != nil {
		writeJSON(w, http.StatusOK, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}
