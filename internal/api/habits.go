package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/habitloop/habitloop/internal/domain"
)

// ─── Habits (/api/habits) ────────────────────────────────────────────────────

type createHabitRequest struct {
	Name      string                `json:"name"`
	Category  string                `json:"category,omitempty"`
	Frequency domain.HabitFrequency `json:"frequency,omitempty"`
}

func (s *Server) handleCreateHabit(w http.ResponseWriter, r *http.Request) {
	var req createHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	h, err := s.habits.Add(domain.Habit{
		Name:      req.Name,
		Category:  req.Category,
		Frequency: req.Frequency,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, h)
}

func (s *Server) handleListHabits(w http.ResponseWriter, r *http.Request) {
	includeArchived := r.URL.Query().Get("archived") == "true"
	habits, err := s.habits.List(includeArchived)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if habits == nil {
		habits = []domain.Habit{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"habits": habits,
	})
}

func (s *Server) handleGetHabit(w http.ResponseWriter, r *http.Request) {
	h, err := s.habits.ByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if h == nil {
		writeError(w, http.StatusNotFound, "habit not found")
		return
	}
	writeJSON(w, http.StatusOK, h)
}

func (s *Server) handleDeleteHabit(w http.ResponseWriter, r *http.Request) {
	if err := s.habits.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

type completeHabitRequest struct {
	At time.Time `json:"at,omitzero"`
}

func (s *Server) handleCompleteHabit(w http.ResponseWriter, r *http.Request) {
	var req completeHabitRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	at := req.At
	if at.IsZero() {
		at = time.Now()
	}

	recorded, err := s.habits.Complete(chi.URLParam(r, "id"), at)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHabitNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrHabitArchived):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"recorded": recorded, // false when the day was already completed
	})
}

func (s *Server) handleArchiveHabit(w http.ResponseWriter, r *http.Request) {
	s.setHabitArchived(w, r, s.habits.Archive)
}

func (s *Server) handleUnarchiveHabit(w http.ResponseWriter, r *http.Request) {
	s.setHabitArchived(w, r, s.habits.Unarchive)
}

func (s *Server) setHabitArchived(w http.ResponseWriter, r *http.Request, fn func(string) error) {
	if err := fn(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHabitStreak(w http.ResponseWriter, r *http.Request) {
	streak, err := s.habits.Streak(chi.URLParam(r, "id"), time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"streak": streak})
}
