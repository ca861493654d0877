package progress

import (
	"fmt"
	"math"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// Calculate returns a goal's current progress scalar from history.
// Records are filtered to [startOfDay(StartDate), endOfDay(EndDate)] and,
// when the goal is mode-bound, to that mode. Sum and count are commutative,
// so the result is independent of record order.
func Calculate(goal domain.Goal, history []domain.ActivityRecord) float64 {
	filtered := filterWindow(goal, history)

	switch goal.Type {
	case domain.GoalTime:
		var total float64
		for _, r := range filtered {
			total += r.DurationSeconds
		}
		return total

	case domain.GoalSessions:
		count := 0
		for _, r := range filtered {
			if r.IsCompleted() {
				count++
			}
		}
		return float64(count)

	case domain.GoalStreak:
		return float64(CurrentStreakAt(filtered, time.Now()))

	case domain.GoalModeSpecific:
		// The window filter already restricted to goal.Mode; the check here
		// is a no-op safety net against a goal missing its mode filter.
		count := 0
		for _, r := range filtered {
			if r.Mode == goal.Mode {
				count++
			}
		}
		return float64(count)
	}

	return 0
}

// CalculateAt is Calculate with an explicit reference time for streak goals.
func CalculateAt(goal domain.Goal, history []domain.ActivityRecord, now time.Time) float64 {
	if goal.Type == domain.GoalStreak {
		return float64(CurrentStreakAt(filterWindow(goal, history), now))
	}
	return Calculate(goal, history)
}

// Details derives the display metrics for a goal at the given instant.
func Details(goal domain.Goal, now time.Time) domain.GoalProgressDetails {
	pct := 0.0
	if goal.Target > 0 {
		pct = math.Min(goal.Current/goal.Target*100, 100)
	} else {
		pct = 100 // zero-target goals are trivially satisfied
	}

	remaining := math.Max(goal.Target-goal.Current, 0)

	return domain.GoalProgressDetails{
		Percentage: pct,
		Remaining:  remaining,
		TimeLeft:   timeLeft(goal.EndDate, now),
		OnTrack:    pct >= expectedPct(goal, now),
	}
}

// IsFailed detects (but never applies) goal failure: the deadline passed
// while the goal was still active and short of target. Callers decide
// whether to surface or transition it.
func IsFailed(goal domain.Goal, now time.Time) bool {
	return goal.IsActive() &&
		now.After(goal.EndDate) &&
		goal.Current < goal.Target
}

// expectedPct is the linear-interpolation baseline between start and
// deadline. A goal created and due the same day expects 0, so any progress
// counts as on track.
func expectedPct(goal domain.Goal, now time.Time) float64 {
	totalDays := daysBetween(goal.StartDate, goal.EndDate)
	if totalDays <= 0 {
		return 0
	}
	passed := daysBetween(goal.StartDate, now)
	expected := float64(passed) / float64(totalDays) * 100
	return math.Min(expected, 100)
}

// timeLeft humanizes the day-count to the deadline.
func timeLeft(end, now time.Time) string {
	days := daysBetween(now, end)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day left"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

// filterWindow keeps records inside the goal's inclusive day window,
// restricted to the goal's mode when one is set.
func filterWindow(goal domain.Goal, history []domain.ActivityRecord) []domain.ActivityRecord {
	start := dayStart(goal.StartDate)
	end := dayEnd(goal.EndDate)

	var out []domain.ActivityRecord
	for _, r := range history {
		if r.Timestamp.Before(start) || r.Timestamp.After(end) {
			continue
		}
		if goal.Mode != "" && r.Mode != goal.Mode {
			continue
		}
		out = append(out, r)
	}
	return out
}

// daysBetween counts calendar days from a to b in a's location by
// stepping civil dates, so DST transitions (23h or 25h days) still count
// as one day. Returns 0 when b falls on or before a's day.
func daysBetween(a, b time.Time) int {
	from := dayStart(a)
	to := dayStart(b.In(a.Location()))
	days := 0
	for from.Before(to) {
		from = from.AddDate(0, 0, 1)
		days++
	}
	return days
}
