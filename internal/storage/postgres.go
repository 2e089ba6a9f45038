package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/pellrad/sitegen/internal/models"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
            id UUID PRIMARY KEY,
            base_url VARCHAR(2048) NOT NULL,
            route_entries INTEGER NOT NULL,
            content_entries INTEGER NOT NULL,
            total_entries INTEGER NOT NULL,
            skipped_files INTEGER NOT NULL,
            sitemap_path TEXT,
            robots_path TEXT,
            started_at TIMESTAMP NOT NULL,
            completed_at TIMESTAMP NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS entries (
            run_id UUID NOT NULL REFERENCES runs(id),
            loc VARCHAR(2048) NOT NULL,
            lastmod TIMESTAMP NOT NULL,
            source VARCHAR(32),
            PRIMARY KEY (run_id, loc)
        )`,
		`CREATE INDEX IF NOT EXISTS idx_entries_run_id ON entries(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_loc ON entries(loc)`,
	}

	for _, query := range queries {
		if _, err := s.db.Exec(query); err != nil {
			return fmt.Errorf("error executing query %s: %w", query, err)
		}
	}

	return nil
}

func (s *PostgresStore) CreateRun(ctx context.Context, run *models.GenerationRun) error {
	query := `
        INSERT INTO runs (id, base_url, route_entries, content_entries, total_entries, skipped_files, sitemap_path, robots_path, started_at, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `

	_, err := s.db.ExecContext(ctx, query,
		run.ID,
		run.BaseURL,
		run.RouteEntries,
		run.ContentEntries,
		run.TotalEntries,
		run.SkippedFiles,
		run.SitemapPath,
		run.RobotsPath,
		run.StartedAt,
		run.CompletedAt,
	)

	return err
}

func (s *PostgresStore) GetRun(ctx context.Context, id uuid.UUID) (*models.GenerationRun, error) {
	query := `
        SELECT base_url, route_entries, content_entries, total_entries, skipped_files, sitemap_path, robots_path, started_at, completed_at
        FROM runs
        WHERE id = $1
    `

	run := &models.GenerationRun{}

	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&run.BaseURL,
		&run.RouteEntries,
		&run.ContentEntries,
		&run.TotalEntries,
		&run.SkippedFiles,
		&run.SitemapPath,
		&run.RobotsPath,
		&run.StartedAt,
		&run.CompletedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	run.ID = id
	return run, nil
}

func (s *PostgresStore) ListRuns(ctx context.Context, limit, offset int) ([]*models.GenerationRun, error) {
	query := `
        SELECT id, base_url, route_entries, content_entries, total_entries, skipped_files, sitemap_path, robots_path, started_at, completed_at
        FROM runs
        ORDER BY started_at DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.GenerationRun
	for rows.Next() {
		var run models.GenerationRun

		err := rows.Scan(
			&run.ID,
			&run.BaseURL,
			&run.RouteEntries,
			&run.ContentEntries,
			&run.TotalEntries,
			&run.SkippedFiles,
			&run.SitemapPath,
			&run.RobotsPath,
			&run.StartedAt,
			&run.CompletedAt,
		)

		if err != nil {
			return nil, err
		}

		runs = append(runs, &run)
	}

	return runs, nil
}

func (s *PostgresStore) SaveEntries(ctx context.Context, runID uuid.UUID, entries []models.SitemapEntry) error {
	query := `
        INSERT INTO entries (run_id, loc, lastmod, source)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (run_id, loc) DO UPDATE SET
            lastmod = EXCLUDED.lastmod,
            source = EXCLUDED.source
    `

	for _, entry := range entries {
		_, err := s.db.ExecContext(ctx, query,
			runID,
			entry.Loc,
			entry.LastMod,
			entry.Source,
		)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *PostgresStore) ListEntries(ctx context.Context, runID uuid.UUID, limit, offset int) ([]models.SitemapEntry, error) {
	query := `
        SELECT loc, lastmod, source
        FROM entries
        WHERE run_id = $1
        ORDER BY loc
        LIMIT $2 OFFSET $3
    `

	return s.queryEntries(ctx, query, runID, limit, offset)
}

func (s *PostgresStore) SearchEntries(ctx context.Context, searchTerm string, limit, offset int) ([]models.SitemapEntry, error) {
	query := `
        SELECT loc, lastmod, source
        FROM entries
        WHERE loc ILIKE $1
        ORDER BY loc
        LIMIT $2 OFFSET $3
    `

	searchPattern := "%" + searchTerm + "%"
	return s.queryEntries(ctx, query, searchPattern, limit, offset)
}

func (s *PostgresStore) queryEntries(ctx context.Context, query string, args ...interface{}) ([]models.SitemapEntry, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.SitemapEntry
	for rows.Next() {
		var entry models.SitemapEntry

		err := rows.Scan(
			&entry.Loc,
			&entry.LastMod,
			&entry.Source,
		)

		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
