package achievement

import (
	"math"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
	"github.com/habitloop/habitloop/internal/infra/metrics"
	"github.com/habitloop/habitloop/internal/infra/sqlite"
)

// Engine evaluates the achievement catalog against user activity.
// Persisted state is only the unlock set; progress is derived fresh on
// every evaluation.
type Engine struct {
	db   *sqlite.DB
	defs []domain.AchievementDef
}

// NewEngine creates an engine with the full catalog.
func NewEngine(db *sqlite.DB) *Engine {
	return &Engine{db: db, defs: Catalog()}
}

// Sync evaluates every rule and unlocks whatever newly qualifies.
// Returns the freshly unlocked definitions (already-unlocked are skipped,
// so repeated calls with the same inputs return nothing).
func (e *Engine) Sync(stats domain.UserStats, history []domain.ActivityRecord) ([]domain.AchievementDef, error) {
	var newly []domain.AchievementDef

	for _, def := range e.defs {
		unlocked, err := e.db.IsAchievementUnlocked(def.ID)
		if err != nil {
			return nil, err
		}
		if unlocked {
			continue
		}

		if !qualifies(def, stats, history) {
			continue
		}

		isNew, err := e.db.UnlockAchievement(def.ID, time.Now())
		if err != nil {
			return nil, err
		}
		if isNew {
			metrics.AchievementsUnlocked.Inc()
			newly = append(newly, def)
		}
	}

	return newly, nil
}

// Unlock force-unlocks a single achievement by id. Idempotent: a second
// call is a no-op and keeps the original unlock timestamp.
func (e *Engine) Unlock(id string) (bool, error) {
	if e.byID(id) == nil {
		return false, domain.ErrAchievementNotFound
	}
	return e.db.UnlockAchievement(id, time.Now())
}

// Snapshot returns every achievement with unlock state and the progress
// derived from the given stats and history.
func (e *Engine) Snapshot(stats domain.UserStats, history []domain.ActivityRecord) ([]domain.AchievementStatus, error) {
	rows, err := e.db.ListUnlockedAchievements()
	if err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(rows))
	for _, u := range rows {
		unlockedAt[u.ID] = u.UnlockedAt
	}

	out := make([]domain.AchievementStatus, len(e.defs))
	for i, def := range e.defs {
		st := domain.AchievementStatus{
			AchievementDef: def,
			Progress:       progressFor(def, stats, history),
		}
		if at, ok := unlockedAt[def.ID]; ok {
			st.Unlocked = true
			st.UnlockedAt = at
			st.Progress = def.Requirement // never display regression after unlock
		}
		out[i] = st
	}
	return out, nil
}

// PendingCelebrations returns unlocks the UI has not yet acknowledged.
func (e *Engine) PendingCelebrations() ([]domain.UnlockedAchievement, error) {
	return e.db.ListUnnotifiedAchievements()
}

// MarkCelebrated clears one unlock from the celebration queue.
func (e *Engine) MarkCelebrated(id string) error {
	return e.db.MarkAchievementNotified(id)
}

// UnlockedCount returns how many achievements are unlocked.
func (e *Engine) UnlockedCount() (int, error) {
	return e.db.UnlockedAchievementCount()
}

// TotalCount returns the catalog size.
func (e *Engine) TotalCount() int { return len(e.defs) }

func (e *Engine) byID(id string) *domain.AchievementDef {
	for i := range e.defs {
		if e.defs[i].ID == id {
			return &e.defs[i]
		}
	}
	return nil
}

func qualifies(def domain.AchievementDef, stats domain.UserStats, history []domain.ActivityRecord) bool {
	if def.Predicate != nil {
		return def.Predicate(history)
	}
	if def.Stat != nil {
		return def.Stat(stats) >= def.Requirement
	}
	return false
}

func progressFor(def domain.AchievementDef, stats domain.UserStats, history []domain.ActivityRecord) float64 {
	if def.Predicate != nil {
		if def.Predicate(history) {
			return def.Requirement
		}
		return 0
	}
	if def.Stat != nil {
		return math.Min(def.Stat(stats), def.Requirement)
	}
	return 0
}
