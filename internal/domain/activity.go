// Package domain holds the habitloop core types.
// Types here are pure — no infrastructure dependency, no I/O.
package domain

import "time"

// TimerMode identifies which timer produced a session.
type TimerMode string

const (
	ModeFocus      TimerMode = "focus"
	ModeShortBreak TimerMode = "short_break"
	ModeLongBreak  TimerMode = "long_break"
)

// AllModes lists every timer mode. Order is stable for display.
func AllModes() []TimerMode {
	return []TimerMode{ModeFocus, ModeShortBreak, ModeLongBreak}
}

// ValidMode reports whether m is a known timer mode.
func ValidMode(m TimerMode) bool {
	switch m {
	case ModeFocus, ModeShortBreak, ModeLongBreak:
		return true
	}
	return false
}

// ActivityRecord is one finished (or abandoned) timer session.
// Owned by the timer subsystem; the engine only ever reads snapshots.
// Completed is a tri-state: nil means the producer didn't say, and the
// engine treats that as completed (optimistic default).
type ActivityRecord struct {
	ID              string    `json:"id"`
	Mode            TimerMode `json:"mode"`
	DurationSeconds float64   `json:"duration_seconds"`
	Timestamp       time.Time `json:"timestamp"`
	Completed       *bool     `json:"completed,omitempty"`
}

// IsCompleted applies the optimistic default: only an explicit false
// marks a session as abandoned.
func (r ActivityRecord) IsCompleted() bool {
	return r.Completed == nil || *r.Completed
}

// Duration returns the session length as a time.Duration.
func (r ActivityRecord) Duration() time.Duration {
	return time.Duration(r.DurationSeconds * float64(time.Second))
}

// NormalizeDuration guesses the unit of a raw duration value.
// Some producers report milliseconds; anything over a day's worth of
// seconds is assumed to be milliseconds and scaled down. Replace with an
// explicit unit tag on the record once every producer is fixed.
func NormalizeDuration(raw float64) float64 {
	if raw < 0 {
		return 0
	}
	if raw > 86400 {
		return raw / 1000
	}
	return raw
}

// UserStats is a snapshot of aggregate activity fed to achievement
// predicates. Never persisted — recomputed on every sync pass so it can't
// go stale.
type UserStats struct {
	TotalSessions        int                `json:"total_sessions"`
	TotalDurationSeconds float64            `json:"total_duration_seconds"`
	SessionsByMode       map[TimerMode]int  `json:"sessions_by_mode"`
	DistinctActiveDays   int                `json:"distinct_active_days"`
	CurrentStreak        int                `json:"current_streak"`
	LongestStreak        int                `json:"longest_streak"`
	CategoriesCovered    int                `json:"categories_covered"`
}
