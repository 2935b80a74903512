package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"glassjoke/internal/models"

	"github.com/google/uuid"
)

type EventSQLite struct {
	db *sql.DB
}

func NewEventSQLite(db *sql.DB) *EventSQLite { return &EventSQLite{db: db} }

var _ EventRepo = (*EventSQLite)(nil)

// normalizeEvent fills in a missing ID or timestamp and canonicalizes the type.
func normalizeEvent(e models.DayEvent) models.DayEvent {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	e.OccurredAt = utcOrNow(e.OccurredAt)
	e.Type = strings.ToUpper(strings.TrimSpace(e.Type))
	return e
}

// Append inserts a new event.
func (r *EventSQLite) Append(ctx context.Context, e models.DayEvent) error {
	e = normalizeEvent(e)

	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO day_events (id, run_id, tick, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		e.EventID,
		e.RunID,
		e.Tick,
		e.OccurredAt.Format("2006-01-02 15:04:05.000000"),
		e.Type,
		e.Description,
		metaPtr,
	)
	return err
}

// List returns events matching the filters in the order they were appended.
func (r *EventSQLite) List(ctx context.Context, runID string, from, to time.Time, typ string) ([]models.DayEvent, error) {
	var (
		conds []string
		args  []any
	)

	if runID = strings.TrimSpace(runID); runID != "" {
		conds = append(conds, "run_id = ?")
		args = append(args, runID)
	}
	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC().Format("2006-01-02 15:04:05.000000"))
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC().Format("2006-01-02 15:04:05.000000"))
	}
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		conds = append(conds, "type = ?")
		args = append(args, typ)
	}

	q := `SELECT id, run_id, tick, occurred_at, type, message, meta FROM day_events`
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY seq ASC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.DayEvent, 0, 64)
	for rows.Next() {
		var ev models.DayEvent
		var metaStr sql.NullString
		if err := rows.Scan(&ev.EventID, &ev.RunID, &ev.Tick, &ev.OccurredAt, &ev.Type, &ev.Description, &metaStr); err != nil {
			return nil, err
		}
		ev.OccurredAt = ev.OccurredAt.UTC()

		if metaStr.Valid && metaStr.String != "" {
			var v any
			if err := json.Unmarshal([]byte(metaStr.String), &v); err == nil {
				ev.Metadata = v
			} else {
				ev.Metadata = metaStr.String // keep raw if malformed
			}
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
