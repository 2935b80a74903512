package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"glassjoke/internal/models"
)

type RunSQLite struct {
	db *sql.DB
}

func NewRunSQLite(db *sql.DB) *RunSQLite {
	return &RunSQLite{db: db}
}

var _ RunRepo = (*RunSQLite)(nil)

const (
	defaultRunListLimit = 50

	insertOrUpdateRunSQL = `
		INSERT INTO day_runs (id, employee, schedule_start, schedule_end, break, ticks, work_ticks, break_ticks,
			refills, consumed_ml, final_volume, final_contents, status, error, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			employee=excluded.employee,
			schedule_start=excluded.schedule_start,
			schedule_end=excluded.schedule_end,
			break=excluded.break,
			ticks=excluded.ticks,
			work_ticks=excluded.work_ticks,
			break_ticks=excluded.break_ticks,
			refills=excluded.refills,
			consumed_ml=excluded.consumed_ml,
			final_volume=excluded.final_volume,
			final_contents=excluded.final_contents,
			status=excluded.status,
			error=excluded.error,
			started_at=excluded.started_at,
			finished_at=excluded.finished_at
	`

	selectRunColumns = `
		SELECT id, employee, schedule_start, schedule_end, break, ticks, work_ticks, break_ticks,
			refills, consumed_ml, final_volume, final_contents, status, error, started_at, finished_at
		FROM day_runs
	`
)

// marshalJSON stores slices and maps as JSON text; nil becomes "".
func marshalJSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(b) == "null" {
		return "", nil
	}
	return string(b), nil
}

func unmarshalTicks(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var ticks []string
	if err := json.Unmarshal([]byte(s), &ticks); err != nil {
		return nil, err
	}
	return ticks, nil
}

func unmarshalContents(s string) (map[string]int, error) {
	if s == "" {
		return nil, nil
	}
	var contents map[string]int
	if err := json.Unmarshal([]byte(s), &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

// utcOrNow normalizes t to UTC, substituting now for the zero time.
func utcOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// Save inserts or replaces the run with r.ID.
func (r *RunSQLite) Save(ctx context.Context, run models.DayRun) error {
	if run.ID == "" {
		return errors.New("save day run: empty id")
	}
	ticks, err := marshalJSON(run.Ticks)
	if err != nil {
		return fmt.Errorf("marshal ticks: %w", err)
	}
	contents, err := marshalJSON(run.FinalContents)
	if err != nil {
		return fmt.Errorf("marshal final contents: %w", err)
	}

	_, err = r.db.ExecContext(ctx, insertOrUpdateRunSQL,
		run.ID,
		run.Employee,
		run.ScheduleStart,
		run.ScheduleEnd,
		run.Break,
		ticks,
		run.WorkTicks,
		run.BreakTicks,
		run.Refills,
		run.ConsumedML,
		run.FinalVolume,
		contents,
		run.Status,
		run.Error,
		utcOrNow(run.StartedAt),
		utcOrNow(run.FinishedAt),
	)
	if err != nil {
		return fmt.Errorf("save day run %s: %w", run.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (models.DayRun, error) {
	var (
		run               models.DayRun
		ticks, contents   string
		startedAt, doneAt time.Time
	)
	if err := row.Scan(
		&run.ID,
		&run.Employee,
		&run.ScheduleStart,
		&run.ScheduleEnd,
		&run.Break,
		&ticks,
		&run.WorkTicks,
		&run.BreakTicks,
		&run.Refills,
		&run.ConsumedML,
		&run.FinalVolume,
		&contents,
		&run.Status,
		&run.Error,
		&startedAt,
		&doneAt,
	); err != nil {
		return models.DayRun{}, err
	}

	var err error
	if run.Ticks, err = unmarshalTicks(ticks); err != nil {
		return models.DayRun{}, fmt.Errorf("decode ticks of %s: %w", run.ID, err)
	}
	if run.FinalContents, err = unmarshalContents(contents); err != nil {
		return models.DayRun{}, fmt.Errorf("decode contents of %s: %w", run.ID, err)
	}
	run.StartedAt = startedAt.UTC()
	run.FinishedAt = doneAt.UTC()
	return run, nil
}

// Get fetches one run by ID.
func (r *RunSQLite) Get(ctx context.Context, id string) (models.DayRun, error) {
	run, err := scanRun(r.db.QueryRowContext(ctx, selectRunColumns+" WHERE id=?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DayRun{}, ErrRunNotFound
		}
		return models.DayRun{}, err
	}
	return run, nil
}

// List returns the most recent runs first. limit <= 0 uses a default.
func (r *RunSQLite) List(ctx context.Context, limit int) ([]models.DayRun, error) {
	if limit <= 0 {
		limit = defaultRunListLimit
	}
	rows, err := r.db.QueryContext(ctx, selectRunColumns+" ORDER BY started_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.DayRun, 0, limit)
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
