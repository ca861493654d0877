package sqlite

import (
	"database/sql"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// ─── Habits ─────────────────────────────────────────────────────────────────

// InsertHabit creates a new habit row.
func (d *DB) InsertHabit(h domain.Habit) error {
	_, err := d.db.Exec(
		`INSERT INTO habits (id, name, category, frequency, archived, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Category, string(h.Frequency), h.Archived, h.CreatedAt.Unix(),
	)
	return err
}

// GetHabit retrieves a habit by id. Returns (nil, nil) when absent.
func (d *DB) GetHabit(id string) (*domain.Habit, error) {
	row := d.db.QueryRow(
		`SELECT id, name, category, frequency, archived, created_at
		 FROM habits WHERE id = ?`, id,
	)
	return scanHabit(row)
}

// ListHabits returns habits, oldest first. Archived habits are included
// only when asked for.
func (d *DB) ListHabits(includeArchived bool) ([]domain.Habit, error) {
	query := `SELECT id, name, category, frequency, archived, created_at
	          FROM habits ORDER BY created_at ASC`
	if !includeArchived {
		query = `SELECT id, name, category, frequency, archived, created_at
		         FROM habits WHERE archived = 0 ORDER BY created_at ASC`
	}

	rows, err := d.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []domain.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}
	return habits, rows.Err()
}

// SetHabitArchived flips the archive flag.
func (d *DB) SetHabitArchived(id string, archived bool) error {
	_, err := d.db.Exec(`UPDATE habits SET archived = ? WHERE id = ?`, archived, id)
	return err
}

// DeleteHabit removes a habit and its completion log.
func (d *DB) DeleteHabit(id string) error {
	if _, err := d.db.Exec(`DELETE FROM habit_completions WHERE habit_id = ?`, id); err != nil {
		return err
	}
	_, err := d.db.Exec(`DELETE FROM habits WHERE id = ?`, id)
	return err
}

// ─── Habit Completions ──────────────────────────────────────────────────────

// InsertCompletion marks a habit done on a day. Idempotent: marking the
// same habit on the same day twice keeps the first row.
func (d *DB) InsertCompletion(c domain.HabitCompletion) (bool, error) {
	result, err := d.db.Exec(
		`INSERT OR IGNORE INTO habit_completions (habit_id, day, completed_at)
		 VALUES (?, ?, ?)`,
		c.HabitID, c.Day.Unix(), c.CompletedAt.Unix(),
	)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}

// ListCompletionDays returns every day a habit was completed, newest first.
func (d *DB) ListCompletionDays(habitID string) ([]time.Time, error) {
	rows, err := d.db.Query(
		`SELECT day FROM habit_completions WHERE habit_id = ? ORDER BY day DESC`, habitID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day int64
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		days = append(days, time.Unix(day, 0))
	}
	return days, rows.Err()
}

// CompletedCategoryCount counts distinct habit categories holding at least
// one completion. Feeds the category-coverage stat.
func (d *DB) CompletedCategoryCount() (int, error) {
	var count int
	err := d.db.QueryRow(
		`SELECT COUNT(DISTINCT h.category) FROM habits h
		 JOIN habit_completions c ON c.habit_id = h.id
		 WHERE h.category != ''`,
	).Scan(&count)
	return count, err
}

func scanHabit(s scanner) (*domain.Habit, error) {
	var h domain.Habit
	var createdAt int64

	err := s.Scan(&h.ID, &h.Name, &h.Category, &h.Frequency, &h.Archived, &createdAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	h.CreatedAt = time.Unix(createdAt, 0)
	return &h, nil
}
