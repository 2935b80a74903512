package service

import (
	"context"

	"glassjoke/internal/config"
	"glassjoke/internal/logger"
	"glassjoke/internal/models"
	"glassjoke/internal/repository"
)

type Authorization interface {
	Enabled() bool
	IssueToken(operator, secret string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Days runs simulated days. extra, when non-nil, receives the trace as it
// is produced.
type Days interface {
	Run(ctx context.Context, p DayParams, extra Recorder) (models.DayRun, error)
}

// History exposes stored day summaries.
type History interface {
	List(ctx context.Context, limit int) ([]models.DayRun, error)
	Get(ctx context.Context, id string) (models.DayRun, error)
}

// EventLog exposes the append-only trace with filtering access.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]models.DayEvent, error)
}

// Service aggregates all sub-services.
type Service struct {
	Days
	History
	EventLog
	Authorization
}

// NewService wires the repository layer into concrete services. metrics may be nil.
func NewService(cfg config.Config, repos *repository.Repository, metrics *Metrics, log *logger.Logger) *Service {
	return &Service{
		Days:          NewDayService(cfg, repos.RunRepo, repos.EventRepo, metrics, log),
		History:       NewHistoryService(repos.RunRepo),
		EventLog:      NewEventLogService(repos.EventRepo),
		Authorization: NewAuthService(cfg.Auth),
	}
}
