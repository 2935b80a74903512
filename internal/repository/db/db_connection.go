package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens or creates the SQLite journal file and ensures tables exist.
// ":memory:" is accepted for throwaway runs.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// One connection: SQLite has a single writer, and ":memory:" databases
	// are per-connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", pragma, err)
		}
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaDayRuns = `
CREATE TABLE IF NOT EXISTS day_runs (
    id TEXT PRIMARY KEY,
    employee TEXT NOT NULL,
    schedule_start TEXT NOT NULL,
    schedule_end TEXT NOT NULL,
    break TEXT NOT NULL DEFAULT '',
    ticks TEXT NOT NULL DEFAULT '',
    work_ticks INTEGER NOT NULL DEFAULT 0,
    break_ticks INTEGER NOT NULL DEFAULT 0,
    refills INTEGER NOT NULL DEFAULT 0,
    consumed_ml INTEGER NOT NULL DEFAULT 0,
    final_volume INTEGER NOT NULL DEFAULT 0,
    final_contents TEXT NOT NULL DEFAULT '',
    status TEXT NOT NULL,
    error TEXT NOT NULL DEFAULT '',
    started_at TIMESTAMP NOT NULL,
    finished_at TIMESTAMP NOT NULL
);
`

const schemaDayEvents = `
CREATE TABLE IF NOT EXISTS day_events (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT UNIQUE NOT NULL,
    run_id TEXT NOT NULL,
    tick TEXT NOT NULL,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const indexDayEventsRun = `
CREATE INDEX IF NOT EXISTS idx_day_events_run ON day_events (run_id, seq);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaDayRuns,
		schemaDayEvents,
		indexDayEventsRun,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
