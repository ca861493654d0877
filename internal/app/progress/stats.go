package progress

import (
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// ComputeStats aggregates the full history into a UserStats snapshot.
// categories is the number of habit categories with at least one completion;
// the caller supplies it because habit data lives outside the session
// history.
func ComputeStats(history []domain.ActivityRecord, categories int, now time.Time) domain.UserStats {
	stats := domain.UserStats{
		SessionsByMode:    make(map[domain.TimerMode]int, 3),
		CategoriesCovered: categories,
	}

	for _, r := range history {
		stats.TotalSessions++
		stats.TotalDurationSeconds += r.DurationSeconds
		stats.SessionsByMode[r.Mode]++
	}

	stats.DistinctActiveDays = len(DistinctDays(history, now.Location()))
	stats.CurrentStreak = CurrentStreakAt(history, now)
	stats.LongestStreak = LongestStreak(history, now.Location())

	return stats
}
