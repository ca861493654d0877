package domain

import "time"

// ─── Goal Types ─────────────────────────────────────────────────────────────

// GoalType selects how progress is measured.
type GoalType string

const (
	GoalTime         GoalType = "time"          // accumulated seconds
	GoalSessions     GoalType = "sessions"      // completed session count
	GoalStreak       GoalType = "streak"        // consecutive active days
	GoalModeSpecific GoalType = "mode_specific" // sessions of one timer mode
)

// GoalPeriod sets the window a goal runs over.
type GoalPeriod string

const (
	PeriodDaily   GoalPeriod = "daily"
	PeriodWeekly  GoalPeriod = "weekly"
	PeriodMonthly GoalPeriod = "monthly"
	PeriodCustom  GoalPeriod = "custom"
)

// GoalStatus is the goal lifecycle state.
// Transitions: active→completed (progress reaches target),
// active↔paused (user action). Failure is detected, never applied.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalPaused    GoalStatus = "paused"
	GoalFailed    GoalStatus = "failed"
)

// Goal is a user-defined target tracked over a period.
// Mode is set iff Type == GoalModeSpecific.
// Current is derived from activity history and never goes negative.
type Goal struct {
	ID          string     `json:"id"`
	Type        GoalType   `json:"type"`
	Target      float64    `json:"target"`
	Current     float64    `json:"current"`
	Period      GoalPeriod `json:"period"`
	Mode        TimerMode  `json:"mode,omitempty"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Status      GoalStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt time.Time  `json:"completed_at,omitzero"`
}

// IsActive reports whether the goal still accrues progress.
func (g Goal) IsActive() bool { return g.Status == GoalActive }

// PeriodEnd derives the goal deadline from its period and start instant.
// Custom periods keep whatever end date the caller supplied.
func PeriodEnd(period GoalPeriod, start time.Time) time.Time {
	switch period {
	case PeriodDaily:
		return start.AddDate(0, 0, 1)
	case PeriodWeekly:
		return start.AddDate(0, 0, 7)
	case PeriodMonthly:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(0, 0, 7)
	}
}

// GoalProgressDetails is the display-oriented view of one goal's progress.
type GoalProgressDetails struct {
	Percentage float64 `json:"percentage"` // clamped to [0,100]
	Remaining  float64 `json:"remaining"`
	TimeLeft   string  `json:"time_left"`
	OnTrack    bool    `json:"on_track"`
}
