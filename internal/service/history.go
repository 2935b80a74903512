package service

import (
	"context"

	"glassjoke/internal/models"
	"glassjoke/internal/repository"
)

// HistoryService reads stored day summaries.
type HistoryService struct {
	runRepo repository.RunRepo
}

func NewHistoryService(runRepo repository.RunRepo) *HistoryService {
	return &HistoryService{runRepo: runRepo}
}

// List returns up to limit runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]models.DayRun, error) {
	return s.runRepo.List(ctx, limit)
}

// Get returns repository.ErrRunNotFound for unknown IDs.
func (s *HistoryService) Get(ctx context.Context, id string) (models.DayRun, error) {
	return s.runRepo.Get(ctx, id)
}
