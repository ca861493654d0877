// Package achievement implements the habitloop achievement engine.
// Two rule tiers: threshold achievements driven by aggregate stats, and
// special achievements driven by predicates over the raw session history.
// Unlocks are permanent — the engine only ever sets unlocked, never clears it.
package achievement

import "github.com/habitloop/habitloop/internal/domain"

// Catalog returns the full achievement list: threshold entries first,
// then the special predicate entries.
func Catalog() []domain.AchievementDef {
	defs := thresholdAchievements()
	return append(defs, specialAchievements()...)
}

// thresholdAchievements are driven by a UserStats extraction function.
// Progress is min(extracted, requirement); unlock at extracted >= requirement.
func thresholdAchievements() []domain.AchievementDef {
	return []domain.AchievementDef{
		// ── Milestones ─────────────────────────────────────────────────
		{
			ID: "first_session", Name: "First Step", Icon: "🎯",
			Description: "Finish your first timer session.",
			Rarity:      domain.RarityCommon, Category: domain.CatMilestones, Requirement: 1,
			Stat: func(s domain.UserStats) float64 { return float64(s.TotalSessions) },
		},
		{
			ID: "sessions_10", Name: "Warming Up", Icon: "🔟",
			Description: "Finish 10 sessions.",
			Rarity:      domain.RarityCommon, Category: domain.CatMilestones, Requirement: 10,
			Stat: func(s domain.UserStats) float64 { return float64(s.TotalSessions) },
		},
		{
			ID: "sessions_100", Name: "Centurion", Icon: "💯",
			Description: "Finish 100 sessions.",
			Rarity:      domain.RarityRare, Category: domain.CatMilestones, Requirement: 100,
			Stat: func(s domain.UserStats) float64 { return float64(s.TotalSessions) },
		},
		{
			ID: "sessions_500", Name: "Relentless", Icon: "🚀",
			Description: "Finish 500 sessions.",
			Rarity:      domain.RarityEpic, Category: domain.CatMilestones, Requirement: 500,
			Stat: func(s domain.UserStats) float64 { return float64(s.TotalSessions) },
		},
		{
			ID: "hours_10", Name: "Ten Hours In", Icon: "⏳",
			Description: "Accumulate 10 hours of tracked time.",
			Rarity:      domain.RarityCommon, Category: domain.CatMilestones, Requirement: 36000,
			Stat: func(s domain.UserStats) float64 { return s.TotalDurationSeconds },
		},
		{
			ID: "hours_100", Name: "Deep Work", Icon: "🧠",
			Description: "Accumulate 100 hours of tracked time.",
			Rarity:      domain.RarityEpic, Category: domain.CatMilestones, Requirement: 360000,
			Stat: func(s domain.UserStats) float64 { return s.TotalDurationSeconds },
		},

		// ── Dedication ─────────────────────────────────────────────────
		{
			ID: "streak_3", Name: "Momentum", Icon: "🔥",
			Description: "Keep a 3-day streak.",
			Rarity:      domain.RarityCommon, Category: domain.CatDedication, Requirement: 3,
			Stat: func(s domain.UserStats) float64 { return float64(s.CurrentStreak) },
		},
		{
			ID: "streak_7", Name: "Week Warrior", Icon: "💪",
			Description: "Keep a 7-day streak.",
			Rarity:      domain.RarityRare, Category: domain.CatDedication, Requirement: 7,
			Stat: func(s domain.UserStats) float64 { return float64(s.CurrentStreak) },
		},
		{
			ID: "streak_30", Name: "Monthly Machine", Icon: "🏛️",
			Description: "Keep a 30-day streak.",
			Rarity:      domain.RarityLegendary, Category: domain.CatDedication, Requirement: 30,
			Stat: func(s domain.UserStats) float64 { return float64(s.CurrentStreak) },
		},
		{
			ID: "active_days_30", Name: "Regular", Icon: "📅",
			Description: "Be active on 30 different days.",
			Rarity:      domain.RarityRare, Category: domain.CatDedication, Requirement: 30,
			Stat: func(s domain.UserStats) float64 { return float64(s.DistinctActiveDays) },
		},

		// ── Exploration ────────────────────────────────────────────────
		{
			ID: "all_modes", Name: "Well Rounded", Icon: "🎲",
			Description: "Use all three timer modes.",
			Rarity:      domain.RarityCommon, Category: domain.CatExploration, Requirement: 3,
			Stat: func(s domain.UserStats) float64 {
				used := 0
				for _, n := range s.SessionsByMode {
					if n > 0 {
						used++
					}
				}
				return float64(used)
			},
		},
		{
			ID: "category_collector", Name: "Collector", Icon: "🗂️",
			Description: "Complete habits in 3 different categories.",
			Rarity:      domain.RarityRare, Category: domain.CatExploration, Requirement: 3,
			Stat: func(s domain.UserStats) float64 { return float64(s.CategoriesCovered) },
		},
	}
}
