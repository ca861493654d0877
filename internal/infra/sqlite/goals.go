package sqlite

import (
	"database/sql"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// ─── Goals ──────────────────────────────────────────────────────────────────

// InsertGoal creates a new goal row.
func (d *DB) InsertGoal(g domain.Goal) error {
	_, err := d.db.Exec(
		`INSERT INTO goals (id, type, target, current, period, mode, name, description,
		                    start_date, end_date, status, created_at, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, string(g.Type), g.Target, g.Current, string(g.Period), string(g.Mode),
		g.Name, g.Description, g.StartDate.Unix(), g.EndDate.Unix(),
		string(g.Status), g.CreatedAt.Unix(), nullableUnix(g.CompletedAt),
	)
	return err
}

// GetGoal retrieves a goal by id. Returns (nil, nil) when absent.
func (d *DB) GetGoal(id string) (*domain.Goal, error) {
	row := d.db.QueryRow(
		`SELECT id, type, target, current, period, mode, name, description,
		        start_date, end_date, status, created_at, completed_at
		 FROM goals WHERE id = ?`, id,
	)
	return scanGoal(row)
}

// UpdateGoal overwrites the stored goal. Unknown ids are a silent no-op.
func (d *DB) UpdateGoal(g domain.Goal) error {
	_, err := d.db.Exec(
		`UPDATE goals SET type=?, target=?, current=?, period=?, mode=?, name=?,
		                  description=?, start_date=?, end_date=?, status=?, completed_at=?
		 WHERE id = ?`,
		string(g.Type), g.Target, g.Current, string(g.Period), string(g.Mode),
		g.Name, g.Description, g.StartDate.Unix(), g.EndDate.Unix(),
		string(g.Status), nullableUnix(g.CompletedAt), g.ID,
	)
	return err
}

// DeleteGoal removes a goal. Unknown ids are a silent no-op.
func (d *DB) DeleteGoal(id string) error {
	_, err := d.db.Exec(`DELETE FROM goals WHERE id = ?`, id)
	return err
}

// ListGoals returns all goals, newest first.
func (d *DB) ListGoals() ([]domain.Goal, error) {
	return d.listGoals(
		`SELECT id, type, target, current, period, mode, name, description,
		        start_date, end_date, status, created_at, completed_at
		 FROM goals ORDER BY created_at DESC`)
}

// ListGoalsByStatus filters goals by lifecycle state, newest first.
func (d *DB) ListGoalsByStatus(status domain.GoalStatus) ([]domain.Goal, error) {
	return d.listGoals(
		`SELECT id, type, target, current, period, mode, name, description,
		        start_date, end_date, status, created_at, completed_at
		 FROM goals WHERE status = ? ORDER BY created_at DESC`, string(status))
}

func (d *DB) listGoals(query string, args ...any) ([]domain.Goal, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []domain.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	return goals, rows.Err()
}

func scanGoal(s scanner) (*domain.Goal, error) {
	var g domain.Goal
	var startDate, endDate, createdAt int64
	var completedAt sql.NullInt64

	err := s.Scan(&g.ID, &g.Type, &g.Target, &g.Current, &g.Period, &g.Mode,
		&g.Name, &g.Description, &startDate, &endDate, &g.Status,
		&createdAt, &completedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Not found, no error
	}
	if err != nil {
		return nil, err
	}

	g.StartDate = time.Unix(startDate, 0)
	g.EndDate = time.Unix(endDate, 0)
	g.CreatedAt = time.Unix(createdAt, 0)
	if completedAt.Valid {
		g.CompletedAt = time.Unix(completedAt.Int64, 0)
	}
	return &g, nil
}

func nullableUnix(t time.Time) sql.NullInt64 {
	if t.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.Unix(), Valid: true}
}
