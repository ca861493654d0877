// Package progress derives goal progress and streaks from activity history.
// Every function here is pure: no I/O, no clocks except the one passed in,
// and results never depend on record order.
package progress

import (
	"sort"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// CurrentStreakAt walks distinct activity days backward from now.
// A day extends the streak if it equals the reference day or falls exactly
// one day before it; the first larger gap ends the walk. A run that ended
// more than a day ago scores 0 — this is the current streak, not the
// longest one.
func CurrentStreakAt(records []domain.ActivityRecord, now time.Time) int {
	days := DistinctDays(records, now.Location())
	return streakFrom(days, dayStart(now))
}

// StreakFromDays computes the same walk over pre-bucketed days, for callers
// that track completion dates rather than sessions (habit streaks).
func StreakFromDays(days []time.Time, now time.Time) int {
	sorted := dedupeDays(days, now.Location())
	return streakFrom(sorted, dayStart(now))
}

// LongestStreak returns the longest run of consecutive activity days
// anywhere in history, regardless of whether it reaches today.
func LongestStreak(records []domain.ActivityRecord, loc *time.Location) int {
	days := DistinctDays(records, loc)
	if len(days) == 0 {
		return 0
	}
	// days are sorted descending
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, -1).Equal(days[i]) {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 1
		}
	}
	return longest
}

// DistinctDays buckets records into midnight-normalized calendar days in
// the given location, sorted most recent first.
func DistinctDays(records []domain.ActivityRecord, loc *time.Location) []time.Time {
	days := make([]time.Time, 0, len(records))
	for _, r := range records {
		days = append(days, r.Timestamp)
	}
	return dedupeDays(days, loc)
}

func streakFrom(daysDesc []time.Time, today time.Time) int {
	streak := 0
	ref := today
	for _, d := range daysDesc {
		if d.After(today) {
			continue // clock skew — never count days ahead of today
		}
		switch {
		case d.Equal(ref):
			if streak == 0 {
				streak = 1
			}
		case d.Equal(ref.AddDate(0, 0, -1)):
			streak++
			ref = d
		default:
			return streak
		}
	}
	return streak
}

func dedupeDays(ts []time.Time, loc *time.Location) []time.Time {
	seen := make(map[time.Time]bool, len(ts))
	var days []time.Time
	for _, t := range ts {
		d := dayStart(t.In(loc))
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// dayStart truncates to midnight in t's own location.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dayEnd is the last instant of t's calendar day.
func dayEnd(t time.Time) time.Time {
	return dayStart(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
