package service

import (
	"context"
	"testing"
	"time"

	"glassjoke/internal/models"
	"glassjoke/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_ListAndGet(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewRunMemory()
	base := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Save(ctx, models.DayRun{ID: "old", StartedAt: base}))
	require.NoError(t, repo.Save(ctx, models.DayRun{ID: "new", StartedAt: base.Add(time.Hour)}))

	h := NewHistoryService(repo)

	runs, err := h.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "new", runs[0].ID)

	got, err := h.Get(ctx, "old")
	require.NoError(t, err)
	assert.Equal(t, "old", got.ID)

	_, err = h.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrRunNotFound)
}
