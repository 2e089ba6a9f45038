package main

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pellrad/sitegen/config"
	"github.com/pellrad/sitegen/internal/api"
	"github.com/pellrad/sitegen/internal/fsys"
	"github.com/pellrad/sitegen/internal/generator"
	"github.com/pellrad/sitegen/internal/models"
	"github.com/pellrad/sitegen/internal/storage"
	"github.com/pellrad/sitegen/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Site.BaseURL == "" {
		log.Fatal("site.baseurl is required")
	}

	base, err := url.Parse(cfg.Site.BaseURL)
	if err != nil || base.Host == "" {
		log.Fatalf("Invalid site.baseurl %q", cfg.Site.BaseURL)
	}

	// Initialize generator
	gen, err := generator.New(fsys.NewOS(), cfg.Paths.Routes, cfg.Paths.Content, cfg.SitemapOptions())
	if err != nil {
		log.Fatalf("Failed to initialize generator: %v", err)
	}

	// Initialize storage (optional run history)
	var store storage.Store
	if cfg.Database.URL != "" {
		store, err = openStore(cfg)
		if err != nil {
			log.Fatalf("Failed to initialize storage: %v", err)
		}
		defer store.Close()

		if err := store.Initialize(); err != nil {
			log.Fatalf("Failed to initialize database tables: %v", err)
		}
	}

	logger, err := utils.NewGeneratorLogger(base.Host)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runGeneration(ctx, gen, store, cfg, logger); err != nil {
		logger.LogError("Generation failed: %v", err)
		os.Exit(1)
	}

	if !cfg.Server.Enabled {
		return
	}

	// Initialize preview server
	server := api.NewServer(cfg.Server.Port, store, cfg.Paths.Sitemap, cfg.Paths.Robots)

	// Setup periodic regeneration
	ticker := time.NewTicker(cfg.GetRegenDuration())

	go func() {
		for {
			select {
			case <-ticker.C:
				logger.LogInfo("Starting periodic regeneration...")
				if err := runGeneration(ctx, gen, store, cfg, logger); err != nil {
					logger.LogError("Regeneration failed: %v", err)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	// Start the preview server
	go func() {
		log.Printf("Starting preview server on port %d", cfg.Server.Port)
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start preview server: %v", err)
		}
	}()

	// Wait for shutdown
	waitForShutdown(cancel, server)
}

func runGeneration(ctx context.Context, gen *generator.Generator, store storage.Store, cfg *config.Config, logger *utils.GeneratorLogger) error {
	startedAt := time.Now()

	result, err := gen.WriteSitemapAndRobots(cfg.Site.BaseURL, cfg.Paths.Sitemap, cfg.Paths.Robots)
	if err != nil {
		return err
	}

	logger.LogInfo("Generated %d URLs (%d from routes, %d from content, %d skipped) to %s and %s",
		len(result.Entries), result.RouteEntries, result.ContentEntries, result.SkippedFiles,
		cfg.Paths.Sitemap, cfg.Paths.Robots)

	if store == nil {
		return nil
	}

	run := &models.GenerationRun{
		ID:             uuid.New(),
		BaseURL:        cfg.Site.BaseURL,
		RouteEntries:   result.RouteEntries,
		ContentEntries: result.ContentEntries,
		TotalEntries:   len(result.Entries),
		SkippedFiles:   result.SkippedFiles,
		SitemapPath:    cfg.Paths.Sitemap,
		RobotsPath:     cfg.Paths.Robots,
		StartedAt:      startedAt,
		CompletedAt:    time.Now(),
	}

	if err := store.CreateRun(ctx, run); err != nil {
		logger.LogError("Failed to record run %s: %v", run.ID, err)
		return nil
	}

	if err := store.SaveEntries(ctx, run.ID, result.Entries); err != nil {
		logger.LogError("Failed to save entries for run %s: %v", run.ID, err)
	}

	return nil
}

func openStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Database.Driver == "postgres" {
		return storage.NewPostgresStore(cfg.Database.URL)
	}
	return storage.NewSQLiteStore(cfg.Database.URL)
}

func waitForShutdown(cancel context.CancelFunc, server *api.Server) {
	// Handle system signals for shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Println("Shutting down...")
	cancel()

	// Graceful server shutdown
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}
	log.Println("Server shut down gracefully")
}
