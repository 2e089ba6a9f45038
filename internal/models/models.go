package models

import (
	"time"

	"github.com/google/uuid"
)

// SitemapOptions controls how canonical paths are expanded into URL entries.
type SitemapOptions struct {
	Languages         []string `json:"languages"`
	DefaultLanguage   string   `json:"defaultLanguage,omitempty"`
	Include           []string `json:"include,omitempty"`
	Exclude           []string `json:"exclude,omitempty"`
	RouteExtensions   []string `json:"routeExtensions,omitempty"`
	ContentExtensions []string `json:"contentExtensions,omitempty"`
}

// RouteBinding links a content file to the route directory that renders it.
type RouteBinding struct {
	ContentPath string   `json:"contentPath"`
	RouteDir    string   `json:"routeDir"`
	BasePath    string   `json:"basePath"`
	Slug        []string `json:"slug,omitempty"`
}

type GenerationRun struct {
	ID             uuid.UUID `json:"id"`
	BaseURL        string    `json:"baseUrl"`
	RouteEntries   int       `json:"routeEntries"`
	ContentEntries int       `json:"contentEntries"`
	TotalEntries   int       `json:"totalEntries"`
	SkippedFiles   int       `json:"skippedFiles"`
	SitemapPath    string    `json:"sitemapPath"`
	RobotsPath     string    `json:"robotsPath"`
	StartedAt      time.Time `json:"startedAt"`
	CompletedAt    time.Time `json:"completedAt"`
}
