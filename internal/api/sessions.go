package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// ─── Sessions (/api/sessions, /api/stats, /api/sync) ─────────────────────────

type recordSessionRequest struct {
	Mode      domain.TimerMode `json:"mode"`
	Duration  float64          `json:"duration"`
	Timestamp time.Time        `json:"timestamp"`
	Completed *bool            `json:"completed,omitempty"`
}

func (s *Server) handleRecordSession(w http.ResponseWriter, r *http.Request) {
	var req recordSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, result, err := s.recorder.Record(req.Mode, req.Duration, req.Timestamp, req.Completed)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidMode) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"session": rec,
		"sync":    result,
	})
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	var (
		records []domain.ActivityRecord
		err     error
	)
	if mode := r.URL.Query().Get("mode"); mode != "" {
		records, err = s.recorder.HistoryByMode(domain.TimerMode(mode))
		if errors.Is(err, domain.ErrInvalidMode) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	} else {
		records, err = s.recorder.History()
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if records == nil {
		records = []domain.ActivityRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": records,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.recorder.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// handleSync forces a full recompute pass without recording a session.
func (s *Server) handleSync(w http.ResponseWriter, r *http.Request) {
	result, err := s.recorder.Sync()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
