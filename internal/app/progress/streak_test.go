package progress

import (
	"testing"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

func rec(ts time.Time) domain.ActivityRecord {
	return domain.ActivityRecord{Mode: domain.ModeFocus, DurationSeconds: 1500, Timestamp: ts}
}

var now = time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time { return now.AddDate(0, 0, -n) }

// ─── Current Streak ─────────────────────────────────────────────────────────

func TestCurrentStreakAt(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int // days before now
		want    int
	}{
		{"empty history", nil, 0},
		{"today only", []int{0}, 1},
		{"three consecutive ending today", []int{0, 1, 2}, 3},
		{"run ending yesterday still counts", []int{1, 2, 3}, 3},
		{"gap breaks the streak", []int{0, 1, 3, 4}, 2},
		{"past-only run scores zero", []int{5, 6, 7}, 0},
		{"single day long ago", []int{30}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []domain.ActivityRecord
			for _, off := range tt.offsets {
				records = append(records, rec(daysAgo(off)))
			}
			if got := CurrentStreakAt(records, now); got != tt.want {
				t.Errorf("CurrentStreakAt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCurrentStreakAt_MultipleSessionsPerDay(t *testing.T) {
	// Several sessions on one day collapse into a single streak day
	records := []domain.ActivityRecord{
		rec(daysAgo(0)),
		rec(daysAgo(0).Add(-2 * time.Hour)),
		rec(daysAgo(1)),
		rec(daysAgo(1).Add(3 * time.Hour)),
	}
	if got := CurrentStreakAt(records, now); got != 2 {
		t.Errorf("CurrentStreakAt() = %d, want 2", got)
	}
}

func TestCurrentStreakAt_OrderIndependent(t *testing.T) {
	forward := []domain.ActivityRecord{rec(daysAgo(2)), rec(daysAgo(1)), rec(daysAgo(0))}
	backward := []domain.ActivityRecord{rec(daysAgo(0)), rec(daysAgo(1)), rec(daysAgo(2))}

	if a, b := CurrentStreakAt(forward, now), CurrentStreakAt(backward, now); a != b {
		t.Errorf("streak depends on record order: %d vs %d", a, b)
	}
}

func TestCurrentStreakAt_FutureDaysIgnored(t *testing.T) {
	// A clock-skewed future record must not extend or break the streak
	records := []domain.ActivityRecord{
		rec(now.AddDate(0, 0, 2)),
		rec(daysAgo(0)),
		rec(daysAgo(1)),
	}
	if got := CurrentStreakAt(records, now); got != 2 {
		t.Errorf("CurrentStreakAt() = %d, want 2", got)
	}
}

// ─── Longest Streak ─────────────────────────────────────────────────────────

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name    string
		offsets []int
		want    int
	}{
		{"empty", nil, 0},
		{"single day", []int{10}, 1},
		{"old run beats current", []int{0, 10, 11, 12, 13}, 4},
		{"two equal runs", []int{0, 1, 5, 6}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var records []domain.ActivityRecord
			for _, off := range tt.offsets {
				records = append(records, rec(daysAgo(off)))
			}
			if got := LongestStreak(records, time.UTC); got != tt.want {
				t.Errorf("LongestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}

// ─── Habit Day Streaks ──────────────────────────────────────────────────────

func TestStreakFromDays(t *testing.T) {
	days := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}
	if got := StreakFromDays(days, now); got != 3 {
		t.Errorf("StreakFromDays() = %d, want 3", got)
	}

	if got := StreakFromDays(nil, now); got != 0 {
		t.Errorf("StreakFromDays(nil) = %d, want 0", got)
	}
}

// ─── Distinct Days ──────────────────────────────────────────────────────────

func TestDistinctDays(t *testing.T) {
	records := []domain.ActivityRecord{
		rec(daysAgo(1)),
		rec(daysAgo(0)),
		rec(daysAgo(0).Add(-time.Hour)),
	}

	days := DistinctDays(records, time.UTC)
	if len(days) != 2 {
		t.Fatalf("DistinctDays() = %d days, want 2", len(days))
	}
	// Most recent first
	if !days[0].After(days[1]) {
		t.Error("days should be sorted most recent first")
	}
	// Midnight-normalized
	if days[0].Hour() != 0 || days[0].Minute() != 0 {
		t.Errorf("days should be midnight-normalized, got %v", days[0])
	}
}
