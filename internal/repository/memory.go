package repository

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"glassjoke/internal/models"
)

// RunMemory keeps runs in process memory. Safe for concurrent use.
type RunMemory struct {
	mu   sync.RWMutex
	runs map[string]models.DayRun
}

func NewRunMemory() *RunMemory {
	return &RunMemory{runs: make(map[string]models.DayRun)}
}

var _ RunRepo = (*RunMemory)(nil)

func cloneRun(r models.DayRun) models.DayRun {
	r.Ticks = slices.Clone(r.Ticks)
	r.FinalContents = maps.Clone(r.FinalContents)
	return r
}

func (m *RunMemory) Save(_ context.Context, r models.DayRun) error {
	r.StartedAt = utcOrNow(r.StartedAt)
	r.FinishedAt = utcOrNow(r.FinishedAt)
	m.mu.Lock()
	m.runs[r.ID] = cloneRun(r)
	m.mu.Unlock()
	return nil
}

func (m *RunMemory) Get(_ context.Context, id string) (models.DayRun, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.runs[id]
	if !ok {
		return models.DayRun{}, ErrRunNotFound
	}
	return cloneRun(r), nil
}

// List returns the most recent runs first.
func (m *RunMemory) List(_ context.Context, limit int) ([]models.DayRun, error) {
	if limit <= 0 {
		limit = defaultRunListLimit
	}
	m.mu.RLock()
	out := make([]models.DayRun, 0, len(m.runs))
	for _, r := range m.runs {
		out = append(out, cloneRun(r))
	}
	m.mu.RUnlock()

	slices.SortFunc(out, func(a, b models.DayRun) int {
		return b.StartedAt.Compare(a.StartedAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// EventMemory is an in-memory trace journal. Safe for concurrent use.
type EventMemory struct {
	mu     sync.RWMutex
	events []models.DayEvent
}

func NewEventMemory() *EventMemory {
	return &EventMemory{}
}

var _ EventRepo = (*EventMemory)(nil)

func (m *EventMemory) Append(_ context.Context, e models.DayEvent) error {
	e = normalizeEvent(e)
	m.mu.Lock()
	m.events = append(m.events, e)
	m.mu.Unlock()
	return nil
}

func (m *EventMemory) List(_ context.Context, runID string, from, to time.Time, typ string) ([]models.DayEvent, error) {
	runID = strings.TrimSpace(runID)
	typ = strings.ToUpper(strings.TrimSpace(typ))

	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.DayEvent, 0, len(m.events))
	for _, e := range m.events {
		if runID != "" && e.RunID != runID {
			continue
		}
		if !from.IsZero() && e.OccurredAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.OccurredAt.After(to) {
			continue
		}
		if typ != "" && e.Type != typ {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
