// Package metrics provides Prometheus metrics for habitloop:
// counters, gauges, and histograms for sessions, goals, achievements,
// habits, sync passes, and health.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Sessions ───────────────────────────────────────────────────────────────

// SessionsRecorded tracks recorded timer sessions by mode.
var SessionsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "habitloop",
	Name:      "sessions_recorded_total",
	Help:      "Total timer sessions recorded.",
}, []string{"mode"})

// SessionDuration tracks session length in seconds.
var SessionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "habitloop",
	Name:      "session_duration_seconds",
	Help:      "Recorded session duration in seconds.",
	Buckets:   []float64{60, 300, 900, 1500, 3600, 7200, 14400},
}, []string{"mode"})

// ─── Goals ──────────────────────────────────────────────────────────────────

// GoalsCreated tracks created goals by type.
var GoalsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "habitloop",
	Name:      "goals_created_total",
	Help:      "Total goals created.",
}, []string{"type"})

// GoalsCompleted tracks goals that reached their target.
var GoalsCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitloop",
	Name:      "goals_completed_total",
	Help:      "Total goals auto-completed by the sync pass or user action.",
})

// GoalsActive tracks the current number of active goals.
var GoalsActive = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "habitloop",
	Name:      "goals_active",
	Help:      "Number of goals currently in the active state.",
})

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementsUnlocked tracks total achievement unlocks.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitloop",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})

// ─── Habits ─────────────────────────────────────────────────────────────────

// HabitCompletions tracks habit completion marks.
var HabitCompletions = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitloop",
	Name:      "habit_completions_total",
	Help:      "Total habit completions logged.",
})

// ─── Sync Pass ──────────────────────────────────────────────────────────────

// SyncDuration tracks full-recompute sync pass duration.
var SyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "habitloop",
	Name:      "sync_pass_duration_seconds",
	Help:      "Duration of one stats/goals/achievements sync pass.",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
})

// SyncRuns tracks how many sync passes have executed.
var SyncRuns = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitloop",
	Name:      "sync_pass_runs_total",
	Help:      "Total sync passes executed.",
})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks health check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "habitloop",
	Name:      "health_check_status",
	Help:      "Health check result per component (1=healthy, 0=unhealthy).",
}, []string{"check"})
