package sqlite

import (
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// ─── Achievements ───────────────────────────────────────────────────────────

// UnlockAchievement records an achievement as unlocked.
// Returns false if already unlocked (idempotent — the original
// unlocked_at is kept).
func (d *DB) UnlockAchievement(id string, at time.Time) (bool, error) {
	result, err := d.db.Exec(
		`INSERT OR IGNORE INTO achievements (id, unlocked_at, notified) VALUES (?, ?, 0)`,
		id, at.Unix(),
	)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil // true = newly unlocked
}

// IsAchievementUnlocked checks whether an achievement has been unlocked.
func (d *DB) IsAchievementUnlocked(id string) (bool, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM achievements WHERE id = ?`, id).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListUnlockedAchievements returns all unlocked achievements, newest first.
func (d *DB) ListUnlockedAchievements() ([]domain.UnlockedAchievement, error) {
	return d.listAchievements(
		`SELECT id, unlocked_at, notified FROM achievements ORDER BY unlocked_at DESC`)
}

// ListUnnotifiedAchievements returns unlocks the UI hasn't celebrated yet.
func (d *DB) ListUnnotifiedAchievements() ([]domain.UnlockedAchievement, error) {
	return d.listAchievements(
		`SELECT id, unlocked_at, notified FROM achievements
		 WHERE notified = 0 ORDER BY unlocked_at ASC`)
}

// MarkAchievementNotified marks an unlock's celebration as shown.
func (d *DB) MarkAchievementNotified(id string) error {
	_, err := d.db.Exec(`UPDATE achievements SET notified = 1 WHERE id = ?`, id)
	return err
}

// UnlockedAchievementCount returns the total number of unlocked achievements.
func (d *DB) UnlockedAchievementCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM achievements`).Scan(&count)
	return count, err
}

func (d *DB) listAchievements(query string) ([]domain.UnlockedAchievement, error) {
	rows, err := d.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.UnlockedAchievement
	for rows.Next() {
		var a domain.UnlockedAchievement
		var unlockedAt int64
		if err := rows.Scan(&a.ID, &unlockedAt, &a.Notified); err != nil {
			return nil, err
		}
		a.UnlockedAt = time.Unix(unlockedAt, 0)
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}
