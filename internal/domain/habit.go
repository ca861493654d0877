package domain

import "time"

// ─── Habit Types ────────────────────────────────────────────────────────────

// HabitFrequency is how often a habit is meant to be completed.
type HabitFrequency string

const (
	FreqDaily   HabitFrequency = "daily"
	FreqWeekly  HabitFrequency = "weekly"
	FreqMonthly HabitFrequency = "monthly"
)

// Habit is a recurring practice the user tracks alongside timer sessions.
type Habit struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Category  string         `json:"category"`
	Frequency HabitFrequency `json:"frequency"`
	Archived  bool           `json:"archived"`
	CreatedAt time.Time      `json:"created_at"`
}

// HabitCompletion marks a habit done on one calendar day.
// At most one completion per habit per day.
type HabitCompletion struct {
	HabitID     string    `json:"habit_id"`
	Day         time.Time `json:"day"` // midnight-normalized
	CompletedAt time.Time `json:"completed_at"`
}
