package progress

import (
	"testing"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

func mkRec(mode domain.TimerMode, dur float64, ts time.Time) domain.ActivityRecord {
	return domain.ActivityRecord{Mode: mode, DurationSeconds: dur, Timestamp: ts}
}

func weekGoal(typ domain.GoalType, target float64) domain.Goal {
	return domain.Goal{
		Type:      typ,
		Target:    target,
		Status:    domain.GoalActive,
		StartDate: now.AddDate(0, 0, -3),
		EndDate:   now.AddDate(0, 0, 4),
	}
}

// ─── Calculate ──────────────────────────────────────────────────────────────

func TestCalculate_TimeGoal(t *testing.T) {
	g := weekGoal(domain.GoalTime, 3600)
	history := []domain.ActivityRecord{
		mkRec(domain.ModeFocus, 1500, now),
		mkRec(domain.ModeShortBreak, 300, now.Add(-time.Hour)),
		mkRec(domain.ModeFocus, 1500, now.AddDate(0, 0, -1)),
	}

	// Time goals sum every mode's duration
	if got := Calculate(g, history); got != 3300 {
		t.Errorf("Calculate() = %v, want 3300", got)
	}
}

func TestCalculate_SessionsGoal_CountsCompleted(t *testing.T) {
	abandoned := false
	g := weekGoal(domain.GoalSessions, 10)
	history := []domain.ActivityRecord{
		mkRec(domain.ModeFocus, 1500, now),
		mkRec(domain.ModeFocus, 1500, now.Add(-time.Hour)),
		{Mode: domain.ModeFocus, DurationSeconds: 100, Timestamp: now.Add(-2 * time.Hour), Completed: &abandoned},
	}

	// The abandoned session does not count; missing flag means completed
	if got := Calculate(g, history); got != 2 {
		t.Errorf("Calculate() = %v, want 2", got)
	}
}

func TestCalculate_ModeSpecificGoal(t *testing.T) {
	g := weekGoal(domain.GoalModeSpecific, 5)
	g.Mode = domain.ModeFocus
	history := []domain.ActivityRecord{
		mkRec(domain.ModeFocus, 1500, now),
		mkRec(domain.ModeShortBreak, 300, now),
		mkRec(domain.ModeLongBreak, 900, now),
		mkRec(domain.ModeFocus, 1500, now.AddDate(0, 0, -1)),
	}

	if got := Calculate(g, history); got != 2 {
		t.Errorf("Calculate() = %v, want 2", got)
	}
}

func TestCalculateAt_StreakGoal(t *testing.T) {
	g := weekGoal(domain.GoalStreak, 7)
	history := []domain.ActivityRecord{
		mkRec(domain.ModeFocus, 1500, now),
		mkRec(domain.ModeFocus, 1500, now.AddDate(0, 0, -1)),
		mkRec(domain.ModeFocus, 1500, now.AddDate(0, 0, -2)),
	}

	if got := CalculateAt(g, history, now); got != 3 {
		t.Errorf("CalculateAt() = %v, want 3", got)
	}
}

func TestCalculate_WindowIsInclusive(t *testing.T) {
	g := domain.Goal{
		Type:      domain.GoalTime,
		Target:    3600,
		Status:    domain.GoalActive,
		StartDate: time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 8, 27, 9, 0, 0, 0, time.UTC),
	}
	history := []domain.ActivityRecord{
		// Before the start date's own day starts: excluded
		mkRec(domain.ModeFocus, 100, time.Date(2026, 8, 24, 23, 59, 0, 0, time.UTC)),
		// Start day before the goal's creation instant: still included
		mkRec(domain.ModeFocus, 200, time.Date(2026, 8, 25, 8, 0, 0, 0, time.UTC)),
		// End day evening, after the deadline instant: still included
		mkRec(domain.ModeFocus, 400, time.Date(2026, 8, 27, 23, 0, 0, 0, time.UTC)),
		// Day after the end date: excluded
		mkRec(domain.ModeFocus, 800, time.Date(2026, 8, 28, 1, 0, 0, 0, time.UTC)),
	}

	if got := Calculate(g, history); got != 600 {
		t.Errorf("Calculate() = %v, want 600", got)
	}
}

func TestCalculate_OrderIndependent(t *testing.T) {
	g := weekGoal(domain.GoalTime, 3600)
	a := []domain.ActivityRecord{
		mkRec(domain.ModeFocus, 100, now),
		mkRec(domain.ModeFocus, 200, now.AddDate(0, 0, -1)),
		mkRec(domain.ModeFocus, 300, now.AddDate(0, 0, -2)),
	}
	b := []domain.ActivityRecord{a[2], a[0], a[1]}

	if x, y := Calculate(g, a), Calculate(g, b); x != y {
		t.Errorf("progress depends on record order: %v vs %v", x, y)
	}
}

// ─── Details ────────────────────────────────────────────────────────────────

func TestDetails_Percentage(t *testing.T) {
	tests := []struct {
		name            string
		current, target float64
		want            float64
	}{
		{"halfway", 1800, 3600, 50},
		{"complete", 3600, 3600, 100},
		{"overshoot clamps", 7200, 3600, 100},
		{"zero target trivially complete", 0, 0, 100},
		{"no progress", 0, 3600, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := weekGoal(domain.GoalTime, tt.target)
			g.Current = tt.current
			det := Details(g, now)
			if det.Percentage != tt.want {
				t.Errorf("Percentage = %v, want %v", det.Percentage, tt.want)
			}
		})
	}
}

func TestDetails_Remaining(t *testing.T) {
	g := weekGoal(domain.GoalTime, 3600)
	g.Current = 7200
	if det := Details(g, now); det.Remaining != 0 {
		t.Errorf("Remaining = %v, want 0 (never negative)", det.Remaining)
	}

	g.Current = 1000
	if det := Details(g, now); det.Remaining != 2600 {
		t.Errorf("Remaining = %v, want 2600", det.Remaining)
	}
}

func TestDetails_TimeLeft(t *testing.T) {
	tests := []struct {
		name string
		end  time.Time
		want string
	}{
		{"due today", now.Add(2 * time.Hour), "Today"},
		{"overdue", now.AddDate(0, 0, -2), "Today"},
		{"tomorrow", now.AddDate(0, 0, 1), "1 day left"},
		{"next week", now.AddDate(0, 0, 7), "7 days left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := weekGoal(domain.GoalTime, 3600)
			g.EndDate = tt.end
			if det := Details(g, now); det.TimeLeft != tt.want {
				t.Errorf("TimeLeft = %q, want %q", det.TimeLeft, tt.want)
			}
		})
	}
}

func TestDetails_TimeLeft_SpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata unavailable")
	}

	// 2026-03-08 is the US spring-forward day: it spans only 23 hours,
	// which truncates to zero full days under elapsed-hours arithmetic.
	at := time.Date(2026, 3, 8, 10, 0, 0, 0, loc)
	g := weekGoal(domain.GoalTime, 3600)
	g.EndDate = time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

	if det := Details(g, at); det.TimeLeft != "1 day left" {
		t.Errorf("TimeLeft = %q, want %q", det.TimeLeft, "1 day left")
	}
}

func TestDetails_OnTrack(t *testing.T) {
	// 10-day goal, 5 days in: linear expectation is 50%
	g := domain.Goal{
		Type:      domain.GoalTime,
		Target:    1000,
		Status:    domain.GoalActive,
		StartDate: now.AddDate(0, 0, -5),
		EndDate:   now.AddDate(0, 0, 5),
	}

	g.Current = 600
	if det := Details(g, now); !det.OnTrack {
		t.Error("60% at the halfway mark should be on track")
	}

	g.Current = 300
	if det := Details(g, now); det.OnTrack {
		t.Error("30% at the halfway mark should be behind")
	}
}

func TestDetails_OnTrack_SameDayGoal(t *testing.T) {
	// Start and deadline on the same day: expected progress is 0
	g := domain.Goal{
		Type:      domain.GoalTime,
		Target:    1000,
		Status:    domain.GoalActive,
		StartDate: now,
		EndDate:   now.Add(6 * time.Hour),
	}
	if det := Details(g, now); !det.OnTrack {
		t.Error("a same-day goal should always be on track")
	}
}

// ─── Failure Detection ──────────────────────────────────────────────────────

func TestIsFailed(t *testing.T) {
	past := domain.Goal{
		Type:      domain.GoalTime,
		Target:    3600,
		Current:   1000,
		Status:    domain.GoalActive,
		StartDate: now.AddDate(0, 0, -10),
		EndDate:   now.AddDate(0, 0, -1),
	}
	if !IsFailed(past, now) {
		t.Error("active goal past deadline and short of target should be failed")
	}

	met := past
	met.Current = 3600
	if IsFailed(met, now) {
		t.Error("goal that met its target is not failed")
	}

	paused := past
	paused.Status = domain.GoalPaused
	if IsFailed(paused, now) {
		t.Error("paused goals are never failed")
	}

	running := past
	running.EndDate = now.AddDate(0, 0, 1)
	if IsFailed(running, now) {
		t.Error("goal before its deadline is not failed")
	}
}

// ─── Stats ──────────────────────────────────────────────────────────────────

func TestComputeStats(t *testing.T) {
	history := []domain.ActivityRecord{
		mkRec(domain.ModeFocus, 1500, now),
		mkRec(domain.ModeFocus, 1500, now.AddDate(0, 0, -1)),
		mkRec(domain.ModeShortBreak, 300, now),
	}

	stats := ComputeStats(history, 2, now)

	if stats.TotalSessions != 3 {
		t.Errorf("TotalSessions = %d, want 3", stats.TotalSessions)
	}
	if stats.TotalDurationSeconds != 3300 {
		t.Errorf("TotalDurationSeconds = %v, want 3300", stats.TotalDurationSeconds)
	}
	if stats.SessionsByMode[domain.ModeFocus] != 2 {
		t.Errorf("focus sessions = %d, want 2", stats.SessionsByMode[domain.ModeFocus])
	}
	if stats.DistinctActiveDays != 2 {
		t.Errorf("DistinctActiveDays = %d, want 2", stats.DistinctActiveDays)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", stats.CurrentStreak)
	}
	if stats.CategoriesCovered != 2 {
		t.Errorf("CategoriesCovered = %d, want 2", stats.CategoriesCovered)
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, 0, now)
	if stats.TotalSessions != 0 || stats.CurrentStreak != 0 || stats.LongestStreak != 0 {
		t.Errorf("empty history should produce zero stats, got %+v", stats)
	}
}
