package achievement

import (
	"sort"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// specialAchievements are the all-or-nothing rules evaluated over the raw
// history. Each predicate is independent; history growing can only add
// ways to satisfy them, never revoke an unlock.
//
// Hour windows use the record's local hour. Duration bounds are inclusive
// where a range is given.
func specialAchievements() []domain.AchievementDef {
	special := []struct {
		id, name, desc, icon string
		rarity               domain.Rarity
		category             domain.AchievementCategory
		pred                 func([]domain.ActivityRecord) bool
	}{
		{"early_bird", "Early Bird", "Start a session before 6 AM.", "🌅",
			domain.RarityCommon, domain.CatTimeOfDay, anyHourIn(0, 6)},
		{"night_owl", "Night Owl", "Start a session in the small hours.", "🦉",
			domain.RarityCommon, domain.CatTimeOfDay, anyHourIn(0, 5)},
		{"sunrise_session", "Sunrise Session", "Start a session between 5 and 7 AM.", "🌄",
			domain.RarityRare, domain.CatTimeOfDay, anyHourIn(5, 7)},
		{"golden_hour", "Golden Hour", "Start a session between 6 and 8 PM.", "🌇",
			domain.RarityCommon, domain.CatTimeOfDay, anyHourIn(18, 20)},
		{"lunch_break", "Lunch Break", "Start a session between noon and 2 PM.", "🥪",
			domain.RarityCommon, domain.CatTimeOfDay, anyHourIn(12, 14)},

		{"marathon", "Marathon", "Run a single session of 4 hours or more.", "🏃",
			domain.RarityEpic, domain.CatEndurance, anyDurationAtLeast(4 * 3600)},
		{"double_century", "Double Century", "Run a single session of 2 hours or more.", "⏰",
			domain.RarityRare, domain.CatEndurance, anyDurationAtLeast(2 * 3600)},
		{"power_hour", "Power Hour", "Run a session of 58–62 minutes.", "⚡",
			domain.RarityRare, domain.CatEndurance, anyDurationBetween(58 * 60, 62 * 60)},
		{"century_day", "Century Day", "Log 100 minutes of sessions in one day.", "🏆",
			domain.RarityRare, domain.CatEndurance, centuryDay},

		{"weekend_warrior", "Weekend Warrior", "Be active on a Saturday and a Sunday.", "🛡️",
			domain.RarityCommon, domain.CatDedication, weekendWarrior},
		{"speed_demon", "Speed Demon", "Finish 5 sessions in a single day.", "😈",
			domain.RarityRare, domain.CatDedication, speedDemon},
		{"minimalist", "Minimalist", "Finish 10 sessions under 5 minutes each.", "🤏",
			domain.RarityRare, domain.CatExploration, minimalist},
		{"perfectionist", "Perfectionist", "25 sessions across 25 consecutive active days.", "✨",
			domain.RarityLegendary, domain.CatDedication, perfectionist},
		{"multitasker", "Multitasker", "Use all three timer modes in one day.", "🎭",
			domain.RarityRare, domain.CatExploration, multitasker},
		{"first_week", "Perfect Start", "Your first 7 sessions land on 7 consecutive days.", "🌱",
			domain.RarityEpic, domain.CatDedication, firstWeek},
		{"comeback_kid", "Comeback Kid", "Return after a break of 30 days or more.", "🔄",
			domain.RarityRare, domain.CatDedication, comebackKid},
		{"pomodoro_master", "Pomodoro Master", "Finish 10 sessions of 24–26 minutes.", "🍅",
			domain.RarityEpic, domain.CatEndurance, anyCountDurationBetween(10, 24 * 60, 26 * 60)},
	}

	defs := make([]domain.AchievementDef, len(special))
	for i, s := range special {
		defs[i] = domain.AchievementDef{
			ID: s.id, Name: s.name, Description: s.desc, Icon: s.icon,
			Rarity: s.rarity, Category: s.category,
			Requirement: 1, Predicate: s.pred,
		}
	}
	return defs
}

// ─── Predicate builders ─────────────────────────────────────────────────────

// anyHourIn matches any record whose local hour falls in [from, to).
func anyHourIn(from, to int) func([]domain.ActivityRecord) bool {
	return func(history []domain.ActivityRecord) bool {
		for _, r := range history {
			h := r.Timestamp.Hour()
			if h >= from && h < to {
				return true
			}
		}
		return false
	}
}

func anyDurationAtLeast(seconds float64) func([]domain.ActivityRecord) bool {
	return func(history []domain.ActivityRecord) bool {
		for _, r := range history {
			if r.DurationSeconds >= seconds {
				return true
			}
		}
		return false
	}
}

// anyDurationBetween matches a record with duration in [lo, hi] inclusive.
func anyDurationBetween(lo, hi float64) func([]domain.ActivityRecord) bool {
	return anyCountDurationBetween(1, lo, hi)
}

func anyCountDurationBetween(n int, lo, hi float64) func([]domain.ActivityRecord) bool {
	return func(history []domain.ActivityRecord) bool {
		count := 0
		for _, r := range history {
			if r.DurationSeconds >= lo && r.DurationSeconds <= hi {
				count++
				if count >= n {
					return true
				}
			}
		}
		return false
	}
}

// ─── Standalone predicates ──────────────────────────────────────────────────

func weekendWarrior(history []domain.ActivityRecord) bool {
	var sat, sun bool
	for _, r := range history {
		switch r.Timestamp.Weekday() {
		case time.Saturday:
			sat = true
		case time.Sunday:
			sun = true
		}
		if sat && sun {
			return true // the two days need not share a weekend
		}
	}
	return false
}

func speedDemon(history []domain.ActivityRecord) bool {
	perDay := make(map[time.Time]int)
	for _, r := range history {
		d := civilDay(r.Timestamp)
		perDay[d]++
		if perDay[d] >= 5 {
			return true
		}
	}
	return false
}

func centuryDay(history []domain.ActivityRecord) bool {
	perDay := make(map[time.Time]float64)
	for _, r := range history {
		d := civilDay(r.Timestamp)
		perDay[d] += r.DurationSeconds
		if perDay[d] >= 100*60 {
			return true
		}
	}
	return false
}

func minimalist(history []domain.ActivityRecord) bool {
	count := 0
	for _, r := range history {
		if r.DurationSeconds < 5*60 {
			count++
			if count >= 10 {
				return true
			}
		}
	}
	return false
}

// perfectionist needs 25 total records and a run of 25 consecutive calendar
// days each containing at least one record.
func perfectionist(history []domain.ActivityRecord) bool {
	if len(history) < 25 {
		return false
	}
	return longestDayRun(history) >= 25
}

func multitasker(history []domain.ActivityRecord) bool {
	perDay := make(map[time.Time]map[domain.TimerMode]bool)
	for _, r := range history {
		d := civilDay(r.Timestamp)
		if perDay[d] == nil {
			perDay[d] = make(map[domain.TimerMode]bool, 3)
		}
		perDay[d][r.Mode] = true
		if len(perDay[d]) == 3 {
			return true
		}
	}
	return false
}

// firstWeek: the first 7 chronological records land on exactly 7 distinct
// consecutive calendar days.
func firstWeek(history []domain.ActivityRecord) bool {
	if len(history) < 7 {
		return false
	}
	sorted := sortedByTime(history)

	days := make(map[time.Time]bool, 7)
	for _, r := range sorted[:7] {
		days[civilDay(r.Timestamp)] = true
	}
	if len(days) != 7 {
		return false
	}
	var first, last time.Time
	for d := range days {
		if first.IsZero() || d.Before(first) {
			first = d
		}
		if d.After(last) {
			last = d
		}
	}
	// 7 distinct days spanning exactly 6 day-steps are consecutive.
	return last.Equal(first.AddDate(0, 0, 6))
}

// comebackKid: any adjacent pair of chronologically sorted records at
// least 30 days apart.
func comebackKid(history []domain.ActivityRecord) bool {
	if len(history) < 2 {
		return false
	}
	sorted := sortedByTime(history)
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Timestamp.Sub(sorted[i-1].Timestamp) >= 30*24*time.Hour {
			return true
		}
	}
	return false
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// civilDay keys a timestamp by its local calendar date, normalized to a
// UTC midnight so day arithmetic with AddDate is exact.
func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sortedByTime(history []domain.ActivityRecord) []domain.ActivityRecord {
	sorted := make([]domain.ActivityRecord, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// longestDayRun returns the longest run of consecutive calendar days with
// at least one record each.
func longestDayRun(history []domain.ActivityRecord) int {
	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, r := range history {
		d := civilDay(r.Timestamp)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
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
