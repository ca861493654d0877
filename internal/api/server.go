// Package api provides the HTTP server for habitloop.
// It exposes a JSON REST API over sessions, goals, habits, and achievements.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/habitloop/habitloop/internal/app/achievement"
	"github.com/habitloop/habitloop/internal/app/goal"
	"github.com/habitloop/habitloop/internal/app/habit"
	"github.com/habitloop/habitloop/internal/app/session"
	"github.com/habitloop/habitloop/internal/health"
	"github.com/habitloop/habitloop/internal/infra/sqlite"
)

// Server is the habitloop HTTP API server.
type Server struct {
	recorder       *session.Recorder
	goals          *goal.Store
	habits         *habit.Store
	achievements   *achievement.Engine
	checker        *health.Checker
	db             *sqlite.DB
	metricsEnabled bool
}

// NewServer creates a new API server.
func NewServer(rec *session.Recorder, goals *goal.Store, habits *habit.Store, ach *achievement.Engine, checker *health.Checker, db *sqlite.DB) *Server {
	return &Server{
		recorder:     rec,
		goals:        goals,
		habits:       habits,
		achievements: ach,
		checker:      checker,
		db:           db,
	}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(corsMiddleware)

	r.Get("/health", s.handleHealth)

	r.Get("/api/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"version": "0.1.0",
		})
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/sessions", s.handleRecordSession)
		r.Get("/sessions", s.handleListSessions)
		r.Get("/stats", s.handleStats)
		r.Post("/sync", s.handleSync)

		r.Route("/goals", func(r chi.Router) {
			r.Post("/", s.handleCreateGoal)
			r.Get("/", s.handleListGoals)
			r.Get("/{id}", s.handleGetGoal)
			r.Put("/{id}", s.handleUpdateGoal)
			r.Delete("/{id}", s.handleDeleteGoal)
			r.Post("/{id}/pause", s.handlePauseGoal)
			r.Post("/{id}/resume", s.handleResumeGoal)
			r.Get("/{id}/progress", s.handleGoalProgress)
		})

		r.Route("/habits", func(r chi.Router) {
			r.Post("/", s.handleCreateHabit)
			r.Get("/", s.handleListHabits)
			r.Get("/{id}", s.handleGetHabit)
			r.Delete("/{id}", s.handleDeleteHabit)
			r.Post("/{id}/complete", s.handleCompleteHabit)
			r.Post("/{id}/archive", s.handleArchiveHabit)
			r.Post("/{id}/unarchive", s.handleUnarchiveHabit)
			r.Get("/{id}/streak", s.handleHabitStreak)
		})

		r.Route("/achievements", func(r chi.Router) {
			r.Get("/", s.handleAchievements)
			r.Get("/celebrations", s.handleCelebrations)
			r.Post("/{id}/shown", s.handleCelebrationShown)
		})

		r.Get("/settings", s.handleGetSettings)
		r.Put("/settings", s.handlePutSettings)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.checker == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	status := http.StatusOK
	overall := "ok"
	if !s.checker.IsHealthy() {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}
	writeJSON(w, status, map[string]interface{}{
		"status": overall,
		"checks": s.checker.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
