package achievement

import (
	"testing"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

func at(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
}

func focusAt(ts time.Time, dur float64) domain.ActivityRecord {
	return domain.ActivityRecord{Mode: domain.ModeFocus, DurationSeconds: dur, Timestamp: ts}
}

// 2026-08-29 is a Saturday.
var saturday = time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

func predicateByID(t *testing.T, id string) func([]domain.ActivityRecord) bool {
	t.Helper()
	for _, def := range specialAchievements() {
		if def.ID == id {
			return def.Predicate
		}
	}
	t.Fatalf("no special achievement %q", id)
	return nil
}

// ─── Time-of-Day Predicates ─────────────────────────────────────────────────

func TestTimeOfDayPredicates(t *testing.T) {
	tests := []struct {
		id   string
		hour int
		want bool
	}{
		{"early_bird", 5, true},
		{"early_bird", 6, false},
		{"night_owl", 2, true},
		{"night_owl", 5, false},
		{"sunrise_session", 5, true},
		{"sunrise_session", 7, false},
		{"golden_hour", 19, true},
		{"golden_hour", 20, false},
		{"lunch_break", 12, true},
		{"lunch_break", 14, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			pred := predicateByID(t, tt.id)
			history := []domain.ActivityRecord{focusAt(at(saturday, tt.hour), 1500)}
			if got := pred(history); got != tt.want {
				t.Errorf("%s at hour %d = %v, want %v", tt.id, tt.hour, got, tt.want)
			}
		})
	}
}

// ─── Duration Predicates ────────────────────────────────────────────────────

func TestDurationPredicates(t *testing.T) {
	tests := []struct {
		id   string
		dur  float64
		want bool
	}{
		{"marathon", 4 * 3600, true},
		{"marathon", 4*3600 - 1, false},
		{"double_century", 2 * 3600, true},
		{"double_century", 7000, false},
		{"power_hour", 60 * 60, true},
		{"power_hour", 58 * 60, true},
		{"power_hour", 62 * 60, true},
		{"power_hour", 57 * 60, false},
		{"power_hour", 63 * 60, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			pred := predicateByID(t, tt.id)
			history := []domain.ActivityRecord{focusAt(at(saturday, 10), tt.dur)}
			if got := pred(history); got != tt.want {
				t.Errorf("%s with %vs = %v, want %v", tt.id, tt.dur, got, tt.want)
			}
		})
	}
}

func TestPomodoroMaster(t *testing.T) {
	pred := predicateByID(t, "pomodoro_master")

	var history []domain.ActivityRecord
	for i := 0; i < 9; i++ {
		history = append(history, focusAt(at(saturday, 8).Add(time.Duration(i)*time.Hour), 25*60))
	}
	if pred(history) {
		t.Error("9 pomodoros should not qualify")
	}

	history = append(history, focusAt(at(saturday, 20), 25*60))
	if !pred(history) {
		t.Error("10 pomodoros of 25 minutes should qualify")
	}

	// Out-of-range durations never count
	var offSize []domain.ActivityRecord
	for i := 0; i < 10; i++ {
		offSize = append(offSize, focusAt(at(saturday, 8).Add(time.Duration(i)*time.Hour), 30*60))
	}
	if pred(offSize) {
		t.Error("30-minute sessions are not pomodoros")
	}
}

func TestCenturyDay(t *testing.T) {
	pred := predicateByID(t, "century_day")

	// 100 minutes spread across two days: no
	split := []domain.ActivityRecord{
		focusAt(at(saturday, 9), 50*60),
		focusAt(at(saturday.AddDate(0, 0, 1), 9), 50*60),
	}
	if pred(split) {
		t.Error("minutes split across days should not qualify")
	}

	// 100 minutes in one day across sessions: yes
	oneDay := []domain.ActivityRecord{
		focusAt(at(saturday, 9), 50*60),
		focusAt(at(saturday, 15), 50*60),
	}
	if !pred(oneDay) {
		t.Error("100 minutes in a single day should qualify")
	}
}

// ─── Pattern Predicates ─────────────────────────────────────────────────────

func TestWeekendWarrior_CrossWeek(t *testing.T) {
	pred := predicateByID(t, "weekend_warrior")

	// Saturday this week, Sunday three weeks ago — different weekends count
	history := []domain.ActivityRecord{
		focusAt(at(saturday, 10), 1500),
		focusAt(at(saturday.AddDate(0, 0, -20), 10), 1500), // a Sunday
	}
	if history[1].Timestamp.Weekday() != time.Sunday {
		t.Fatalf("fixture error: %v is not a Sunday", history[1].Timestamp.Weekday())
	}
	if !pred(history) {
		t.Error("Saturday and Sunday from different weekends should qualify")
	}

	satOnly := history[:1]
	if pred(satOnly) {
		t.Error("Saturday alone should not qualify")
	}
}

func TestSpeedDemon(t *testing.T) {
	pred := predicateByID(t, "speed_demon")

	var history []domain.ActivityRecord
	for i := 0; i < 4; i++ {
		history = append(history, focusAt(at(saturday, 8+i), 1500))
	}
	if pred(history) {
		t.Error("4 sessions in a day should not qualify")
	}
	history = append(history, focusAt(at(saturday, 13), 1500))
	if !pred(history) {
		t.Error("5 sessions in a day should qualify")
	}
}

func TestMinimalist(t *testing.T) {
	pred := predicateByID(t, "minimalist")

	var history []domain.ActivityRecord
	for i := 0; i < 10; i++ {
		history = append(history, focusAt(at(saturday, 8).Add(time.Duration(i)*10*time.Minute), 4*60))
	}
	if !pred(history) {
		t.Error("10 sessions under 5 minutes should qualify")
	}

	// Exactly 5 minutes is not "under 5 minutes"
	boundary := make([]domain.ActivityRecord, 10)
	for i := range boundary {
		boundary[i] = focusAt(at(saturday, 8).Add(time.Duration(i)*10*time.Minute), 5*60)
	}
	if pred(boundary) {
		t.Error("5-minute sessions should not count as under 5 minutes")
	}
}

func TestPerfectionist(t *testing.T) {
	pred := predicateByID(t, "perfectionist")

	// 25 sessions over 25 consecutive days
	var qualifying []domain.ActivityRecord
	for i := 0; i < 25; i++ {
		qualifying = append(qualifying, focusAt(at(saturday.AddDate(0, 0, -i), 10), 1500))
	}
	if !pred(qualifying) {
		t.Error("25 sessions across 25 consecutive days should qualify")
	}

	// 24 consecutive days plus a detached day: run too short
	broken := append([]domain.ActivityRecord{}, qualifying[:24]...)
	broken = append(broken, focusAt(at(saturday.AddDate(0, 0, -40), 10), 1500))
	if pred(broken) {
		t.Error("a 24-day run should not qualify")
	}

	// 25 consecutive days but only 24 sessions: not enough records
	if pred(qualifying[:24]) {
		t.Error("24 sessions should not qualify")
	}
}

func TestMultitasker(t *testing.T) {
	pred := predicateByID(t, "multitasker")

	sameDay := []domain.ActivityRecord{
		focusAt(at(saturday, 9), 1500),
		{Mode: domain.ModeShortBreak, DurationSeconds: 300, Timestamp: at(saturday, 10)},
		{Mode: domain.ModeLongBreak, DurationSeconds: 900, Timestamp: at(saturday, 11)},
	}
	if !pred(sameDay) {
		t.Error("all three modes in one day should qualify")
	}

	spread := []domain.ActivityRecord{
		focusAt(at(saturday, 9), 1500),
		{Mode: domain.ModeShortBreak, DurationSeconds: 300, Timestamp: at(saturday.AddDate(0, 0, 1), 10)},
		{Mode: domain.ModeLongBreak, DurationSeconds: 900, Timestamp: at(saturday.AddDate(0, 0, 2), 11)},
	}
	if pred(spread) {
		t.Error("modes spread across days should not qualify")
	}
}

func TestFirstWeek(t *testing.T) {
	pred := predicateByID(t, "first_week")

	// First 7 sessions on 7 consecutive days, in shuffled storage order
	var history []domain.ActivityRecord
	for _, off := range []int{3, 0, 6, 1, 5, 2, 4} {
		history = append(history, focusAt(at(saturday.AddDate(0, 0, off), 10), 1500))
	}
	if !pred(history) {
		t.Error("first 7 sessions on 7 consecutive days should qualify")
	}

	// Two sessions share a day: only 6 distinct days in the first 7
	clustered := append([]domain.ActivityRecord{}, history...)
	clustered[1] = focusAt(at(saturday.AddDate(0, 0, 3), 20), 1500)
	if pred(clustered) {
		t.Error("a repeated day within the first 7 sessions should not qualify")
	}

	// Later history cannot retroactively spoil the first week
	extended := append([]domain.ActivityRecord{}, history...)
	extended = append(extended, focusAt(at(saturday.AddDate(0, 0, 60), 10), 1500))
	if !pred(extended) {
		t.Error("records after the first week must not affect the result")
	}
}

func TestComebackKid(t *testing.T) {
	pred := predicateByID(t, "comeback_kid")

	// 31-day gap qualifies
	gap31 := []domain.ActivityRecord{
		focusAt(at(saturday.AddDate(0, 0, -31), 10), 1500),
		focusAt(at(saturday, 10), 1500),
	}
	if !pred(gap31) {
		t.Error("a 31-day gap should qualify")
	}

	// 29-day gap does not
	gap29 := []domain.ActivityRecord{
		focusAt(at(saturday.AddDate(0, 0, -29), 10), 1500),
		focusAt(at(saturday, 10), 1500),
	}
	if pred(gap29) {
		t.Error("a 29-day gap should not qualify")
	}

	// Gap must be between adjacent records: a middle session resets it
	bridged := []domain.ActivityRecord{
		focusAt(at(saturday.AddDate(0, 0, -40), 10), 1500),
		focusAt(at(saturday.AddDate(0, 0, -20), 10), 1500),
		focusAt(at(saturday, 10), 1500),
	}
	if pred(bridged) {
		t.Error("a bridged gap should not qualify")
	}
}

func TestSpecialCatalogShape(t *testing.T) {
	defs := specialAchievements()
	if len(defs) != 17 {
		t.Fatalf("special achievements = %d, want 17", len(defs))
	}
	for _, def := range defs {
		if def.Predicate == nil {
			t.Errorf("%s has no predicate", def.ID)
		}
		if def.Requirement != 1 {
			t.Errorf("%s requirement = %v, want 1", def.ID, def.Requirement)
		}
	}
}
