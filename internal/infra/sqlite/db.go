// Package sqlite provides SQLite-based persistent storage for habitloop.
// Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// Connection pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is single-writer
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Timer session history — append-only, written by the timer
		// subsystem, read-only to the progress/achievement engine.
		// completed is tri-state: NULL means the producer didn't say.
		`CREATE TABLE IF NOT EXISTS sessions (
			id               TEXT PRIMARY KEY,
			mode             TEXT NOT NULL,
			duration_seconds REAL NOT NULL DEFAULT 0,
			timestamp        INTEGER NOT NULL,
			completed        BOOLEAN
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_ts ON sessions(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_mode ON sessions(mode)`,

		// Goals with lifecycle state
		`CREATE TABLE IF NOT EXISTS goals (
			id           TEXT PRIMARY KEY,
			type         TEXT NOT NULL,
			target       REAL NOT NULL,
			current      REAL NOT NULL DEFAULT 0,
			period       TEXT NOT NULL,
			mode         TEXT NOT NULL DEFAULT '',
			name         TEXT NOT NULL,
			description  TEXT NOT NULL DEFAULT '',
			start_date   INTEGER NOT NULL,
			end_date     INTEGER NOT NULL,
			status       TEXT NOT NULL,
			created_at   INTEGER NOT NULL,
			completed_at INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_goals_status ON goals(status)`,

		// Unlocked achievements — insert-only, never deleted
		`CREATE TABLE IF NOT EXISTS achievements (
			id          TEXT PRIMARY KEY,
			unlocked_at INTEGER NOT NULL,
			notified    BOOLEAN DEFAULT 0
		)`,

		// Habits and their completion log (one row per habit per day)
		`CREATE TABLE IF NOT EXISTS habits (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			category   TEXT NOT NULL DEFAULT '',
			frequency  TEXT NOT NULL,
			archived   BOOLEAN DEFAULT 0,
			created_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS habit_completions (
			habit_id     TEXT NOT NULL,
			day          INTEGER NOT NULL,
			completed_at INTEGER NOT NULL,
			PRIMARY KEY (habit_id, day)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_completions_day ON habit_completions(day)`,

		// Flat key-value snapshots: theme, sound, notification toggles
		`CREATE TABLE IF NOT EXISTS settings (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Settings ───────────────────────────────────────────────────────────────

// SetSetting stores a settings key-value pair (theme, sound, toggles).
func (d *DB) SetSetting(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetSetting retrieves a settings value. Returns "" if the key is absent.
func (d *DB) GetSetting(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// AllSettings returns the full settings snapshot.
func (d *DB) AllSettings() (map[string]string, error) {
	rows, err := d.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, err
		}
		out[k] = v
	}
	return out, rows.Err()
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
