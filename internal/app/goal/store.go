// Package goal implements the goal store: CRUD, lifecycle transitions,
// and progress sync against the session history.
// One writer path — all mutation goes through Store methods.
package goal

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop/internal/app/progress"
	"github.com/habitloop/habitloop/internal/domain"
	"github.com/habitloop/habitloop/internal/infra/metrics"
	"github.com/habitloop/habitloop/internal/infra/sqlite"
)

// Store owns the goal collection. Construct one per process (or per test)
// and pass it by reference — no package-level state.
type Store struct {
	db *sqlite.DB
}

// NewStore creates a goal store.
func NewStore(db *sqlite.DB) *Store {
	return &Store{db: db}
}

// Add creates a goal. The id, status, progress, and timestamps are set
// here; the end date derives from the period unless a custom period
// brought its own.
func (s *Store) Add(g domain.Goal) (*domain.Goal, error) {
	if g.Name == "" {
		return nil, fmt.Errorf("%w: name required", domain.ErrInvalidGoal)
	}
	if g.Target < 0 {
		return nil, fmt.Errorf("%w: negative target", domain.ErrInvalidGoal)
	}
	switch g.Type {
	case domain.GoalTime, domain.GoalSessions, domain.GoalStreak, domain.GoalModeSpecific:
	default:
		return nil, fmt.Errorf("%w: unknown type %q", domain.ErrInvalidGoal, g.Type)
	}
	switch g.Period {
	case domain.PeriodDaily, domain.PeriodWeekly, domain.PeriodMonthly, domain.PeriodCustom:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPeriod, g.Period)
	}
	if (g.Type == domain.GoalModeSpecific) != (g.Mode != "") {
		return nil, fmt.Errorf("%w: mode is set iff type is mode_specific", domain.ErrInvalidGoal)
	}
	if g.Mode != "" && !domain.ValidMode(g.Mode) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidMode, g.Mode)
	}

	now := time.Now()
	g.ID = uuid.NewString()
	g.Current = 0
	g.Status = domain.GoalActive
	g.CreatedAt = now
	g.CompletedAt = time.Time{}
	if g.StartDate.IsZero() {
		g.StartDate = now
	}
	if g.Period != domain.PeriodCustom || g.EndDate.IsZero() {
		g.EndDate = domain.PeriodEnd(g.Period, g.StartDate)
	}
	if !g.EndDate.After(g.StartDate) {
		return nil, fmt.Errorf("%w: end date must follow start date", domain.ErrInvalidGoal)
	}

	if err := s.db.InsertGoal(g); err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}
	metrics.GoalsCreated.WithLabelValues(string(g.Type)).Inc()
	return &g, nil
}

// Patch names the fields Update may change. Nil means leave as-is.
type Patch struct {
	Name        *string
	Description *string
	Target      *float64
	EndDate     *time.Time
}

// Update applies a partial update. Unknown ids no-op and return (nil, nil).
func (s *Store) Update(id string, p Patch) (*domain.Goal, error) {
	g, err := s.db.GetGoal(id)
	if err != nil || g == nil {
		return nil, err
	}

	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.Description != nil {
		g.Description = *p.Description
	}
	if p.Target != nil && *p.Target >= 0 {
		g.Target = *p.Target
	}
	if p.EndDate != nil && p.EndDate.After(g.StartDate) {
		g.EndDate = *p.EndDate
	}

	if err := s.db.UpdateGoal(*g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes a goal. Unknown ids are a silent no-op.
func (s *Store) Delete(id string) error {
	return s.db.DeleteGoal(id)
}

// Pause sets a goal to paused. No status guard — callers decide when the
// toggle makes sense.
func (s *Store) Pause(id string) (*domain.Goal, error) {
	return s.setStatus(id, domain.GoalPaused)
}

// Resume sets a goal back to active.
func (s *Store) Resume(id string) (*domain.Goal, error) {
	return s.setStatus(id, domain.GoalActive)
}

// UpdateProgress writes a goal's derived progress. When progress reaches
// target while the goal is active it auto-completes and stamps
// CompletedAt. A zero-target goal completes on its first progress write.
func (s *Store) UpdateProgress(id string, current float64) (*domain.Goal, error) {
	g, err := s.db.GetGoal(id)
	if err != nil || g == nil {
		return nil, err
	}

	if current < 0 {
		current = 0
	}
	g.Current = current

	if g.Status == domain.GoalActive && g.Current >= g.Target {
		g.Status = domain.GoalCompleted
		g.CompletedAt = time.Now()
		metrics.GoalsCompleted.Inc()
	}

	if err := s.db.UpdateGoal(*g); err != nil {
		return nil, err
	}
	return g, nil
}

// SyncProgress recomputes every active goal against the full history.
// Returns the goals that completed during this pass.
func (s *Store) SyncProgress(history []domain.ActivityRecord, now time.Time) ([]domain.Goal, error) {
	active, err := s.Active()
	if err != nil {
		return nil, err
	}

	var completed []domain.Goal
	for _, g := range active {
		current := progress.CalculateAt(g, history, now)
		updated, err := s.UpdateProgress(g.ID, current)
		if err != nil {
			return nil, err
		}
		if updated != nil && updated.Status == domain.GoalCompleted {
			completed = append(completed, *updated)
		}
	}

	metrics.GoalsActive.Set(float64(len(active) - len(completed)))
	return completed, nil
}

// Active returns goals in the active state, newest first.
func (s *Store) Active() ([]domain.Goal, error) {
	return s.db.ListGoalsByStatus(domain.GoalActive)
}

// Completed returns completed goals, newest first.
func (s *Store) Completed() ([]domain.Goal, error) {
	return s.db.ListGoalsByStatus(domain.GoalCompleted)
}

// All returns every goal regardless of state.
func (s *Store) All() ([]domain.Goal, error) {
	return s.db.ListGoals()
}

// ByID looks a goal up. Unknown ids return (nil, nil), never an error.
func (s *Store) ByID(id string) (*domain.Goal, error) {
	return s.db.GetGoal(id)
}

func (s *Store) setStatus(id string, status domain.GoalStatus) (*domain.Goal, error) {
	g, err := s.db.GetGoal(id)
	if err != nil || g == nil {
		return nil, err
	}
	g.Status = status
	if err := s.db.UpdateGoal(*g); err != nil {
		return nil, err
	}
	return g, nil
}
