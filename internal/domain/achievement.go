package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// Rarity grades how hard an achievement is to earn.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AchievementCategory groups achievements by theme.
type AchievementCategory string

const (
	CatMilestones  AchievementCategory = "milestones"  // cumulative stat thresholds
	CatDedication  AchievementCategory = "dedication"  // streaks and consistency
	CatTimeOfDay   AchievementCategory = "time_of_day" // when you work
	CatEndurance   AchievementCategory = "endurance"   // how long you work
	CatExploration AchievementCategory = "exploration" // variety of usage
)

// AchievementDef defines one achievement.
// Threshold achievements set Stat + Requirement; special achievements set
// Predicate, which is all-or-nothing over the raw session history.
type AchievementDef struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Rarity      Rarity              `json:"rarity"`
	Category    AchievementCategory `json:"category"`
	Requirement float64             `json:"requirement"`

	Stat      func(UserStats) float64      `json:"-"`
	Predicate func([]ActivityRecord) bool `json:"-"`
}

// UnlockedAchievement records when an achievement was earned.
// Notified flips once the UI has shown the celebration.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
	Notified   bool      `json:"notified"`
}

// AchievementStatus combines a definition with its unlock state and the
// progress snapshot computed on the latest sync pass. For predicate
// achievements progress is binary: 0 or Requirement.
type AchievementStatus struct {
	AchievementDef
	Unlocked   bool      `json:"unlocked"`
	UnlockedAt time.Time `json:"unlocked_at,omitzero"`
	Progress   float64   `json:"progress"`
}
