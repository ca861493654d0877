// Package session is the timer subsystem: it owns the append-only session
// history and drives the sync pass that everything downstream derives from.
package session

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop/internal/app/achievement"
	"github.com/habitloop/habitloop/internal/app/goal"
	"github.com/habitloop/habitloop/internal/app/habit"
	"github.com/habitloop/habitloop/internal/app/progress"
	"github.com/habitloop/habitloop/internal/domain"
	"github.com/habitloop/habitloop/internal/infra/metrics"
	"github.com/habitloop/habitloop/internal/infra/sqlite"
)

// Recorder appends sessions and re-runs the derivation pipeline after
// every append. Full recompute, O(history) per pass — fine at the scale
// of one person's timer history.
type Recorder struct {
	db           *sqlite.DB
	goals        *goal.Store
	achievements *achievement.Engine
	habits       *habit.Store
}

// NewRecorder wires the recorder to the stores it refreshes.
func NewRecorder(db *sqlite.DB, goals *goal.Store, achievements *achievement.Engine, habits *habit.Store) *Recorder {
	return &Recorder{db: db, goals: goals, achievements: achievements, habits: habits}
}

// SyncResult is what one sync pass changed, for celebratory UI.
type SyncResult struct {
	Stats          domain.UserStats        `json:"stats"`
	CompletedGoals []domain.Goal           `json:"completed_goals"`
	NewlyUnlocked  []domain.AchievementDef `json:"newly_unlocked"`
}

// Record appends one session and runs a sync pass.
// rawDuration passes through the unit heuristic, so producers reporting
// milliseconds still land on sensible values.
func (r *Recorder) Record(mode domain.TimerMode, rawDuration float64, at time.Time, completed *bool) (*domain.ActivityRecord, *SyncResult, error) {
	if !domain.ValidMode(mode) {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrInvalidMode, mode)
	}
	if at.IsZero() {
		at = time.Now()
	}

	rec := domain.ActivityRecord{
		ID:              uuid.NewString(),
		Mode:            mode,
		DurationSeconds: domain.NormalizeDuration(rawDuration),
		Timestamp:       at,
		Completed:       completed,
	}

	if err := r.db.InsertSession(rec); err != nil {
		return nil, nil, fmt.Errorf("insert session: %w", err)
	}
	metrics.SessionsRecorded.WithLabelValues(string(mode)).Inc()
	metrics.SessionDuration.WithLabelValues(string(mode)).Observe(rec.DurationSeconds)

	result, err := r.Sync()
	if err != nil {
		return &rec, nil, err
	}
	return &rec, result, nil
}

// Sync runs one full pass: history → stats → goal progress → achievement
// unlocks. History read errors degrade to an empty history rather than
// failing the pass — bad stored data must never take the app down.
func (r *Recorder) Sync() (*SyncResult, error) {
	started := time.Now()
	defer func() {
		metrics.SyncDuration.Observe(time.Since(started).Seconds())
		metrics.SyncRuns.Inc()
	}()

	history, err := r.db.ListSessions()
	if err != nil {
		log.Printf("[session] history read failed, syncing empty: %v", err)
		history = nil
	}

	categories := 0
	if r.habits != nil {
		if n, err := r.habits.CategoriesCovered(); err == nil {
			categories = n
		}
	}

	now := time.Now()
	stats := progress.ComputeStats(history, categories, now)

	completed, err := r.goals.SyncProgress(history, now)
	if err != nil {
		return nil, fmt.Errorf("sync goals: %w", err)
	}

	newly, err := r.achievements.Sync(stats, history)
	if err != nil {
		return nil, fmt.Errorf("sync achievements: %w", err)
	}

	return &SyncResult{
		Stats:          stats,
		CompletedGoals: completed,
		NewlyUnlocked:  newly,
	}, nil
}

// History returns the merged session history, oldest first.
func (r *Recorder) History() ([]domain.ActivityRecord, error) {
	return r.db.ListSessions()
}

// HistoryByMode returns one mode's stream.
func (r *Recorder) HistoryByMode(mode domain.TimerMode) ([]domain.ActivityRecord, error) {
	if !domain.ValidMode(mode) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMode, mode)
	}
	return r.db.ListSessionsByMode(mode)
}

// Stats recomputes the aggregate snapshot without mutating anything.
func (r *Recorder) Stats() (domain.UserStats, error) {
	history, err := r.db.ListSessions()
	if err != nil {
		return domain.UserStats{}, err
	}
	categories := 0
	if r.habits != nil {
		if n, err := r.habits.CategoriesCovered(); err == nil {
			categories = n
		}
	}
	return progress.ComputeStats(history, categories, time.Now()), nil
}
