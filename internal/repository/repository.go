package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"glassjoke/internal/models"
)

// ErrRunNotFound is returned by RunRepo.Get for unknown IDs.
var ErrRunNotFound = errors.New("day run not found")

// RunRepo stores day summaries.
type RunRepo interface {
	Save(ctx context.Context, r models.DayRun) error
	Get(ctx context.Context, id string) (models.DayRun, error)
	List(ctx context.Context, limit int) ([]models.DayRun, error)
}

// EventRepo is the append-only trace journal. Zero from/to and empty
// runID/typ mean "no filter".
type EventRepo interface {
	Append(ctx context.Context, e models.DayEvent) error
	List(ctx context.Context, runID string, from, to time.Time, typ string) ([]models.DayEvent, error)
}

type Repository struct {
	RunRepo   RunRepo
	EventRepo EventRepo
}

// NewRepository returns SQLite-backed repositories sharing db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		RunRepo:   NewRunSQLite(db),
		EventRepo: NewEventSQLite(db),
	}
}

// NewMemoryRepository returns process-local repositories.
func NewMemoryRepository() *Repository {
	return &Repository{
		RunRepo:   NewRunMemory(),
		EventRepo: NewEventMemory(),
	}
}
