// Package habit implements the habit store: recurring practices with a
// per-day completion log and a current streak derived with the same walk
// the goal engine uses.
package habit

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/habitloop/habitloop/internal/app/progress"
	"github.com/habitloop/habitloop/internal/domain"
	"github.com/habitloop/habitloop/internal/infra/metrics"
	"github.com/habitloop/habitloop/internal/infra/sqlite"
)

// Store owns the habit collection.
type Store struct {
	db *sqlite.DB
}

// NewStore creates a habit store.
func NewStore(db *sqlite.DB) *Store {
	return &Store{db: db}
}

// Add creates a habit. Frequency defaults to daily.
func (s *Store) Add(h domain.Habit) (*domain.Habit, error) {
	if h.Name == "" {
		return nil, fmt.Errorf("habit name required")
	}
	switch h.Frequency {
	case domain.FreqDaily, domain.FreqWeekly, domain.FreqMonthly:
	case "":
		h.Frequency = domain.FreqDaily
	default:
		return nil, fmt.Errorf("unknown frequency %q", h.Frequency)
	}

	h.ID = uuid.NewString()
	h.Archived = false
	h.CreatedAt = time.Now()

	if err := s.db.InsertHabit(h); err != nil {
		return nil, fmt.Errorf("insert habit: %w", err)
	}
	return &h, nil
}

// Complete marks a habit done on the given instant's calendar day.
// Idempotent per day. Archived habits reject completion.
func (s *Store) Complete(id string, at time.Time) (bool, error) {
	h, err := s.db.GetHabit(id)
	if err != nil {
		return false, err
	}
	if h == nil {
		return false, domain.ErrHabitNotFound
	}
	if h.Archived {
		return false, domain.ErrHabitArchived
	}

	y, m, d := at.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, at.Location())

	isNew, err := s.db.InsertCompletion(domain.HabitCompletion{
		HabitID:     id,
		Day:         day,
		CompletedAt: at,
	})
	if err != nil {
		return false, err
	}
	if isNew {
		metrics.HabitCompletions.Inc()
	}
	return isNew, nil
}

// Streak returns the habit's current consecutive-day completion streak.
func (s *Store) Streak(id string, now time.Time) (int, error) {
	days, err := s.db.ListCompletionDays(id)
	if err != nil {
		return 0, err
	}
	return progress.StreakFromDays(days, now), nil
}

// Archive hides a habit from the active list without losing its log.
func (s *Store) Archive(id string) error {
	return s.db.SetHabitArchived(id, true)
}

// Unarchive restores an archived habit.
func (s *Store) Unarchive(id string) error {
	return s.db.SetHabitArchived(id, false)
}

// Delete removes a habit and its completion log.
func (s *Store) Delete(id string) error {
	return s.db.DeleteHabit(id)
}

// List returns habits, optionally including archived ones.
func (s *Store) List(includeArchived bool) ([]domain.Habit, error) {
	return s.db.ListHabits(includeArchived)
}

// ByID looks a habit up. Unknown ids return (nil, nil).
func (s *Store) ByID(id string) (*domain.Habit, error) {
	return s.db.GetHabit(id)
}

// CategoriesCovered counts distinct categories with at least one
// completion — the habit side of the achievement stats.
func (s *Store) CategoriesCovered() (int, error) {
	return s.db.CompletedCategoryCount()
}
