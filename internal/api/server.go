package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pellrad/sitegen/internal/storage"
)

type Server struct {
	router *gin.Engine
	port   int
	server *http.Server
}

// NewServer builds the preview server: it serves the generated artifacts
// directly plus a JSON API over the run history store. store may be nil
// when run history is disabled.
func NewServer(port int, store storage.Store, sitemapPath, robotsPath string) *Server {
	router := gin.Default()

	// Setup CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Create handler
	handler := NewHandler(store, sitemapPath, robotsPath)

	// Generated artifacts
	router.GET("/sitemap.xml", handler.ServeSitemap)
	router.GET("/robots.txt", handler.ServeRobots)

	// Setup routes
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		// Run history routes
		runs := api.Group("/runs")
		{
			runs.GET("", handler.ListRuns)
			runs.GET("/:id", handler.GetRun)
			runs.GET("/:id/entries", handler.ListRunEntries)
		}

		// Entry routes
		entries := api.Group("/entries")
		{
			entries.GET("/search", handler.SearchEntries)
		}
	}

	return &Server{
		router: router,
		port:   port,
	}
}

func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
