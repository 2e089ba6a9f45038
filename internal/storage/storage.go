package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pellrad/sitegen/internal/models"
)

type Store interface {
	Initialize() error
	Close() error

	// Run operations
	CreateRun(ctx context.Context, run *models.GenerationRun) error
	GetRun(ctx context.Context, id uuid.UUID) (*models.GenerationRun, error)
	ListRuns(ctx context.Context, limit, offset int) ([]*models.GenerationRun, error)

	// Entry operations
	SaveEntries(ctx context.Context, runID uuid.UUID, entries []models.SitemapEntry) error
	ListEntries(ctx context.Context, runID uuid.UUID, limit, offset int) ([]models.SitemapEntry, error)
	SearchEntries(ctx context.Context, query string, limit, offset int) ([]models.SitemapEntry, error)
}
