package sqlite

import (
	"database/sql"
	"time"

	"github.com/habitloop/habitloop/internal/domain"
)

// ─── Session History ────────────────────────────────────────────────────────

// InsertSession appends one session to the history.
func (d *DB) InsertSession(r domain.ActivityRecord) error {
	var completed sql.NullBool
	if r.Completed != nil {
		completed = sql.NullBool{Bool: *r.Completed, Valid: true}
	}
	_, err := d.db.Exec(
		`INSERT INTO sessions (id, mode, duration_seconds, timestamp, completed)
		 VALUES (?, ?, ?, ?, ?)`,
		r.ID, string(r.Mode), r.DurationSeconds, r.Timestamp.Unix(), completed,
	)
	return err
}

// ListSessions returns the full history, oldest first. Rows that fail to
// scan or carry an unknown mode are skipped — a corrupted row must never
// take the engine down with it.
func (d *DB) ListSessions() ([]domain.ActivityRecord, error) {
	return d.listSessions(
		`SELECT id, mode, duration_seconds, timestamp, completed
		 FROM sessions ORDER BY timestamp ASC`)
}

// ListSessionsByMode returns one mode's stream, oldest first. The original
// client kept a separate persisted stream per timer mode; this is the
// equivalent read.
func (d *DB) ListSessionsByMode(mode domain.TimerMode) ([]domain.ActivityRecord, error) {
	return d.listSessions(
		`SELECT id, mode, duration_seconds, timestamp, completed
		 FROM sessions WHERE mode = ? ORDER BY timestamp ASC`, string(mode))
}

// SessionCount returns the total number of stored sessions.
func (d *DB) SessionCount() (int, error) {
	var count int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count)
	return count, err
}

func (d *DB) listSessions(query string, args ...any) ([]domain.ActivityRecord, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.ActivityRecord
	for rows.Next() {
		r, err := scanSession(rows)
		if err != nil {
			continue // skip corrupted row
		}
		if !domain.ValidMode(r.Mode) {
			continue
		}
		records = append(records, *r)
	}
	return records, rows.Err()
}

func scanSession(s scanner) (*domain.ActivityRecord, error) {
	var r domain.ActivityRecord
	var ts int64
	var completed sql.NullBool

	if err := s.Scan(&r.ID, &r.Mode, &r.DurationSeconds, &ts, &completed); err != nil {
		return nil, err
	}
	r.Timestamp = time.Unix(ts, 0)
	// Old producers wrote milliseconds; normalize on the way out too.
	r.DurationSeconds = domain.NormalizeDuration(r.DurationSeconds)
	if completed.Valid {
		r.Completed = &completed.Bool
	}
	return &r, nil
}
