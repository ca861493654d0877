package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/habitloop/habitloop/internal/app/goal"
	"github.com/habitloop/habitloop/internal/app/progress"
	"github.com/habitloop/habitloop/internal/domain"
)

// ─── Goals (/api/goals) ──────────────────────────────────────────────────────

type createGoalRequest struct {
	Type        domain.GoalType   `json:"type"`
	Target      float64           `json:"target"`
	Period      domain.GoalPeriod `json:"period"`
	Mode        domain.TimerMode  `json:"mode,omitempty"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	StartDate   time.Time         `json:"start_date,omitzero"`
	EndDate     time.Time         `json:"end_date,omitzero"`
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := s.goals.Add(domain.Goal{
		Type:        req.Type,
		Target:      req.Target,
		Period:      req.Period,
		Mode:        req.Mode,
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidGoal) || errors.Is(err, domain.ErrInvalidPeriod) || errors.Is(err, domain.ErrInvalidMode) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	var (
		goals []domain.Goal
		err   error
	)
	switch r.URL.Query().Get("status") {
	case "":
		goals, err = s.goals.All()
	case "active":
		goals, err = s.goals.Active()
	case "completed":
		goals, err = s.goals.Completed()
	default:
		writeError(w, http.StatusBadRequest, "status must be active or completed")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if goals == nil {
		goals = []domain.Goal{}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"goals": goals,
	})
}

func (s *Server) handleGetGoal(w http.ResponseWriter, r *http.Request) {
	g, err := s.goals.ByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if g == nil {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	writeJSON(w, http.StatusOK, g)
}

type updateGoalRequest struct {
	Name        *string    `json:"name,omitempty"`
	Description *string    `json:"description,omitempty"`
	Target      *float64   `json:"target,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
}

func (s *Server) handleUpdateGoal(w http.ResponseWriter, r *http.Request) {
	var req updateGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	g, err := s.goals.Update(chi.URLParam(r, "id"), goal.Patch{
		Name:        req.Name,
		Description: req.Description,
		Target:      req.Target,
		EndDate:     req.EndDate,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if g == nil {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	if err := s.goals.Delete(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handlePauseGoal(w http.ResponseWriter, r *http.Request) {
	s.setGoalStatus(w, r, s.goals.Pause)
}

func (s *Server) handleResumeGoal(w http.ResponseWriter, r *http.Request) {
	s.setGoalStatus(w, r, s.goals.Resume)
}

func (s *Server) setGoalStatus(w http.ResponseWriter, r *http.Request, fn func(string) (*domain.Goal, error)) {
	g, err := fn(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if g == nil {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	g, err := s.goals.ByID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if g == nil {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}

	now := time.Now()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"goal":    g,
		"details": progress.Details(*g, now),
		"failed":  progress.IsFailed(*g, now),
	})
}
