package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pellrad/sitegen/internal/models"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Initialize() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS runs (
            id TEXT PRIMARY KEY,
            base_url TEXT NOT NULL,
            route_entries INTEGER NOT NULL,
            content_entries INTEGER NOT NULL,
            total_entries INTEGER NOT NULL,
            skipped_files INTEGER NOT NULL,
            sitemap_path TEXT,
            robots_path TEXT,
            started_at DATETIME NOT NULL,
            completed_at DATETIME NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS entries (
            run_id TEXT NOT NULL,
            loc TEXT NOT NULL,
            lastmod DATETIME NOT NULL,
            source TEXT,
            PRIMARY KEY (run_id, loc),
            FOREIGN KEY(run_id) REFERENCES runs(id)
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

func (s *SQLiteStore) CreateRun(ctx context.Context, run *models.GenerationRun) error {
	query := `
        INSERT INTO runs (id, base_url, route_entries, content_entries, total_entries, skipped_files, sitemap_path, robots_path, started_at, completed_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `

	_, err := s.db.ExecContext(ctx, query,
		run.ID.String(),
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

func (s *SQLiteStore) GetRun(ctx context.Context, id uuid.UUID) (*models.GenerationRun, error) {
	query := `
        SELECT base_url, route_entries, content_entries, total_entries, skipped_files, sitemap_path, robots_path, started_at, completed_at
        FROM runs
        WHERE id = ?
    `

	run := &models.GenerationRun{}

	err := s.db.QueryRowContext(ctx, query, id.String()).Scan(
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

func (s *SQLiteStore) ListRuns(ctx context.Context, limit, offset int) ([]*models.GenerationRun, error) {
	query := `
        SELECT id, base_url, route_entries, content_entries, total_entries, skipped_files, sitemap_path, robots_path, started_at, completed_at
        FROM runs
        ORDER BY started_at DESC
        LIMIT ? OFFSET ?
    `

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*models.GenerationRun
	for rows.Next() {
		var run models.GenerationRun
		var idStr string

		err := rows.Scan(
			&idStr,
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

		run.ID, _ = uuid.Parse(idStr)
		runs = append(runs, &run)
	}

	return runs, nil
}

func (s *SQLiteStore) SaveEntries(ctx context.Context, runID uuid.UUID, entries []models.SitemapEntry) error {
	query := `
        INSERT INTO entries (run_id, loc, lastmod, source)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(run_id, loc) DO UPDATE SET
            lastmod = excluded.lastmod,
            source = excluded.source
    `

	for _, entry := range entries {
		_, err := s.db.ExecContext(ctx, query,
			runID.String(),
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

func (s *SQLiteStore) ListEntries(ctx context.Context, runID uuid.UUID, limit, offset int) ([]models.SitemapEntry, error) {
	query := `
        SELECT loc, lastmod, source
        FROM entries
        WHERE run_id = ?
        ORDER BY loc
        LIMIT ? OFFSET ?
    `

	return s.queryEntries(ctx, query, runID.String(), limit, offset)
}

func (s *SQLiteStore) SearchEntries(ctx context.Context, searchTerm string, limit, offset int) ([]models.SitemapEntry, error) {
	query := `
        SELECT loc, lastmod, source
        FROM entries
        WHERE loc LIKE ?
        ORDER BY loc
        LIMIT ? OFFSET ?
    `

	searchPattern := "%" + searchTerm + "%"
	return s.queryEntries(ctx, query, searchPattern, limit, offset)
}

func (s *SQLiteStore) queryEntries(ctx context.Context, query string, args ...interface{}) ([]models.SitemapEntry, error) {
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

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
