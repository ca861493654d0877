package api

import (
	"encoding/json"
	"net/http"
)

// ─── Settings (/api/settings) ────────────────────────────────────────────────
// Flat key-value store for client preferences (theme, sound, timer lengths).

func (s *Server) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := s.db.AllSettings()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if settings == nil {
		settings = map[string]string{}
	}
	writeJSON(w, http.StatusOK, settings)
}

func (s *Server) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	var updates map[string]string
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	for k, v := range updates {
		if k == "" {
			writeError(w, http.StatusBadRequest, "empty setting key")
			return
		}
		if err := s.db.SetSetting(k, v); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
