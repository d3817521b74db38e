package api

import "net/http"

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	counters, err := h.Counters.ReadAll(r.Context())
	if err != nil {
		h.Log.WithError(err).Error("counters read failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, counters)
}

// notification é consultada por polling pelo frontend; ausência (nunca
// houve evento, ou o TTL de 300s venceu) responde null e é estado normal.
func (h *Handler) notification(w http.ResponseWriter, r *http.Request) {
	note, err := h.Relay.Latest(r.Context())
	if err != nil {
		h.Log.WithError(err).Error("notification read failed")
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"notification": note})
}
