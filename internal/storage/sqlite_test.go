package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pellrad/sitegen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sitegen_test.db"))
	require.NoError(t, err)
	require.NoError(t, store.Initialize())
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRunLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := &models.GenerationRun{
		ID:             uuid.New(),
		BaseURL:        "https://example.com",
		RouteEntries:   10,
		ContentEntries: 4,
		TotalEntries:   12,
		SkippedFiles:   1,
		SitemapPath:    "public/sitemap.xml",
		RobotsPath:     "public/robots.txt",
		StartedAt:      time.Now().Add(-time.Second).UTC(),
		CompletedAt:    time.Now().UTC(),
	}

	require.NoError(t, store.CreateRun(ctx, run))

	got, err := store.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, run.BaseURL, got.BaseURL)
	assert.Equal(t, run.TotalEntries, got.TotalEntries)
	assert.Equal(t, run.SkippedFiles, got.SkippedFiles)

	runs, err := store.ListRuns(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}

func TestGetRunMissing(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetRun(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveAndListEntries(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	run := &models.GenerationRun{ID: uuid.New(), BaseURL: "https://example.com", StartedAt: time.Now(), CompletedAt: time.Now()}
	require.NoError(t, store.CreateRun(ctx, run))

	entries := []models.SitemapEntry{
		{Loc: "https://example.com/", LastMod: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Source: "routes"},
		{Loc: "https://example.com/blog/hello", LastMod: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Source: "content"},
	}
	require.NoError(t, store.SaveEntries(ctx, run.ID, entries))

	got, err := store.ListEntries(ctx, run.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Re-saving the same loc updates in place instead of duplicating.
	updated := []models.SitemapEntry{
		{Loc: "https://example.com/", LastMod: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Source: "routes"},
	}
	require.NoError(t, store.SaveEntries(ctx, run.ID, updated))

	got, err = store.ListEntries(ctx, run.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)

	found, err := store.SearchEntries(ctx, "blog", 10, 0)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "https://example.com/blog/hello", found[0].Loc)
}
