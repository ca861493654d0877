package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Domain errors are pure — no infrastructure dependency.
// Unknown-id lookups inside the stores fail silently (nil, no error);
// these sentinels exist for the API layer, which wants a 404 to report.

var (
	// Goal errors
	ErrGoalNotFound  = errors.New("goal not found")
	ErrInvalidGoal   = errors.New("invalid goal definition")
	ErrInvalidPeriod = errors.New("invalid goal period")

	// Habit errors
	ErrHabitNotFound = errors.New("habit not found")
	ErrHabitArchived = errors.New("habit is archived")

	// Session errors
	ErrInvalidMode = errors.New("unknown timer mode")

	// Achievement errors
	ErrAchievementNotFound = errors.New("achievement not found")
)
