package generator

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/pellrad/sitegen/internal/fsys"
	"github.com/pellrad/sitegen/internal/models"
	"github.com/pellrad/sitegen/internal/routes"
)

// Generator scans the routes and content trees and assembles the sitemap
// entry set. It only reads through the fsys.FS collaborator.
type Generator struct {
	fs          fsys.FS
	routesRoot  string
	contentRoot string
	opts        *models.SitemapOptions
	classifier  *routes.Classifier
	resolver    *routes.Resolver
}

// Result is what one full generation produced.
type Result struct {
	Entries        []models.SitemapEntry
	RouteEntries   int
	ContentEntries int
	SkippedFiles   int
}

func New(fs fsys.FS, routesRoot, contentRoot string, opts *models.SitemapOptions) (*Generator, error) {
	if opts == nil {
		opts = &models.SitemapOptions{}
	}

	classifier, err := routes.NewClassifier(opts)
	if err != nil {
		return nil, err
	}

	return &Generator{
		fs:          fs,
		routesRoot:  routesRoot,
		contentRoot: contentRoot,
		opts:        opts,
		classifier:  classifier,
		resolver:    routes.NewResolver(fs, routesRoot, opts),
	}, nil
}

// GenerateEntries runs both scan phases and merges their entries,
// deduplicating by URL with the later modification time winning.
func (g *Generator) GenerateEntries(baseURL string) (*Result, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	routeEntries, err := g.routeEntries(base)
	if err != nil {
		return nil, fmt.Errorf("scanning routes tree: %w", err)
	}

	contentEntries, skipped, err := g.contentEntries(base)
	if err != nil {
		return nil, fmt.Errorf("scanning content tree: %w", err)
	}

	merged := mergeEntries(append(routeEntries, contentEntries...))

	return &Result{
		Entries:        merged,
		RouteEntries:   len(routeEntries),
		ContentEntries: len(contentEntries),
		SkippedFiles:   skipped,
	}, nil
}

// GenerateSitemapDocument scans both trees and renders the sitemap XML.
func (g *Generator) GenerateSitemapDocument(baseURL string) (string, error) {
	result, err := g.GenerateEntries(baseURL)
	if err != nil {
		return "", err
	}
	return RenderSitemap(result.Entries)
}

// WriteSitemapAndRobots generates both documents and writes them to disk.
// Both documents are fully rendered before the first write, so a
// generation failure never leaves torn output. Writes happen sequentially
// with no rollback: a failed robots write can leave a fresh sitemap behind.
func (g *Generator) WriteSitemapAndRobots(baseURL, sitemapPath, robotsPath string) (*Result, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	result, err := g.GenerateEntries(baseURL)
	if err != nil {
		return nil, err
	}

	sitemapDoc, err := RenderSitemap(result.Entries)
	if err != nil {
		return nil, err
	}
	robotsDoc := RenderRobots(base.Host)

	if err := g.fs.WriteText(sitemapPath, sitemapDoc); err != nil {
		return nil, err
	}
	if err := g.fs.WriteText(robotsPath, robotsDoc); err != nil {
		return nil, err
	}

	return result, nil
}

func (g *Generator) routeEntries(base *url.URL) ([]models.SitemapEntry, error) {
	var entries []models.SitemapEntry

	err := routes.Walk(g.fs, g.routesRoot, func(rel string) error {
		if !g.classifier.HasRouteExtension(rel) {
			return nil
		}

		canonical, ok := g.classifier.Classify(rel)
		if !ok {
			return nil
		}

		lastMod, err := g.modTime(path.Join(g.routesRoot, rel))
		if err != nil {
			return err
		}

		entries = append(entries, g.expand(base, canonical, lastMod, "routes")...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (g *Generator) contentEntries(base *url.URL) ([]models.SitemapEntry, int, error) {
	// A missing content root is not an error: the sitemap is generated
	// from routes alone.
	if !g.fs.Exists(g.contentRoot) {
		return nil, 0, nil
	}

	var entries []models.SitemapEntry
	skipped := 0

	err := routes.Walk(g.fs, g.contentRoot, func(rel string) error {
		if !g.resolver.HasContentExtension(rel) {
			return nil
		}

		urlPath, _, err := g.resolver.Resolve(rel)
		if errors.Is(err, routes.ErrNoMatchingRoute) {
			log.Printf("No route directory matches content file %s, skipping", rel)
			skipped++
			return nil
		}
		if err != nil {
			return err
		}

		lastMod, err := g.modTime(path.Join(g.contentRoot, rel))
		if err != nil {
			return err
		}

		entries = append(entries, g.expand(base, urlPath, lastMod, "content")...)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return entries, skipped, nil
}

func (g *Generator) expand(base *url.URL, canonical string, lastMod time.Time, source string) []models.SitemapEntry {
	paths := routes.ExpandLanguages(canonical, g.opts)
	entries := make([]models.SitemapEntry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, models.SitemapEntry{
			Loc:     absoluteURL(base, p),
			LastMod: lastMod,
			Source:  source,
		})
	}
	return entries
}

// modTime stats a file, falling back to the current time when the
// file-system reports no usable modification time.
func (g *Generator) modTime(filePath string) (time.Time, error) {
	lastMod, err := g.fs.ModTime(filePath)
	if err != nil {
		return time.Time{}, err
	}
	if lastMod.IsZero() {
		return time.Now(), nil
	}
	return lastMod, nil
}

// mergeEntries deduplicates by URL keeping the later LastMod. First-seen
// insertion order is preserved.
func mergeEntries(entries []models.SitemapEntry) []models.SitemapEntry {
	index := make(map[string]int, len(entries))
	merged := make([]models.SitemapEntry, 0, len(entries))

	for _, entry := range entries {
		if i, ok := index[entry.Loc]; ok {
			if entry.LastMod.After(merged[i].LastMod) {
				merged[i].LastMod = entry.LastMod
				merged[i].Source = entry.Source
			}
			continue
		}
		index[entry.Loc] = len(merged)
		merged = append(merged, entry)
	}

	return merged
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("malformed base URL %q: %w", baseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("malformed base URL %q: missing scheme or host", baseURL)
	}
	return base, nil
}

func absoluteURL(base *url.URL, urlPath string) string {
	return strings.TrimRight(base.String(), "/") + urlPath
}
