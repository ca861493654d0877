package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/habitloop/habitloop/internal/domain"
)

// ─── Achievements (/api/achievements) ────────────────────────────────────────

func (s *Server) handleAchievements(w http.ResponseWriter, r *http.Request) {
	history, err := s.recorder.History()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	stats, err := s.recorder.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	snapshot, err := s.achievements.Snapshot(stats, history)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	unlocked, err := s.achievements.UnlockedCount()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"achievements": snapshot,
		"unlocked":     unlocked,
		"total":        s.achievements.TotalCount(),
	})
}

// handleCelebrations returns unlocks the user has not been shown yet.
func (s *Server) handleCelebrations(w http.ResponseWriter, r *http.Request) {
	pending, err := s.achievements.PendingCelebrations()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pending == nil {
		pending = []domain.UnlockedAchievement{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"celebrations": pending,
	})
}

func (s *Server) handleCelebrationShown(w http.ResponseWriter, r *http.Request) {
	if err := s.achievements.MarkCelebrated(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
