package routes

import (
	"fmt"
	"path"
	"strings"

	"github.com/gobwas/glob"
	"github.com/pellrad/sitegen/internal/models"
)

// Classifier decides whether a route file contributes a public URL and, if
// so, derives its canonical path.
type Classifier struct {
	extensions []string
	include    []glob.Glob
	exclude    []glob.Glob
}

func NewClassifier(opts *models.SitemapOptions) (*Classifier, error) {
	extensions := normalizeExtensions(opts.RouteExtensions, ".html")

	include, err := compileGlobs(opts.Include)
	if err != nil {
		return nil, fmt.Errorf("invalid include pattern: %w", err)
	}

	exclude, err := compileGlobs(opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("invalid exclude pattern: %w", err)
	}

	return &Classifier{
		extensions: extensions,
		include:    include,
		exclude:    exclude,
	}, nil
}

// HasRouteExtension reports whether relPath ends in a configured route
// extension.
func (c *Classifier) HasRouteExtension(relPath string) bool {
	return hasExtension(relPath, c.extensions)
}

// Classify converts a route file path, relative to the routes root, into
// its canonical public path. ok is false when the route is excluded.
func (c *Classifier) Classify(relPath string) (canonical string, ok bool) {
	rel := strings.Trim(relPath, "/")
	rel = strings.TrimSuffix(rel, path.Ext(rel))

	canonical, ok = canonicalize(strings.Split(rel, "/"))
	if !ok {
		return "", false
	}

	// Glob filters are tested without the leading slash.
	probe := strings.TrimPrefix(canonical, "/")
	for _, g := range c.exclude {
		if g.Match(probe) {
			return "", false
		}
	}
	if len(c.include) > 0 {
		matched := false
		for _, g := range c.include {
			if g.Match(probe) {
				matched = true
				break
			}
		}
		if !matched {
			return "", false
		}
	}

	return canonical, true
}

// canonicalize applies the per-segment rules to extension-stripped path
// segments: a "_"-prefixed segment or a bracketed dynamic segment
// ("[param]", "[...slug]") excludes the whole route; a "(group)" segment is
// dropped from the URL but keeps the route; a trailing "index" segment
// collapses away. An empty result is the site root "/".
func canonicalize(segments []string) (string, bool) {
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		switch {
		case seg == "":
			continue
		case strings.HasPrefix(seg, "_"):
			return "", false
		case strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]"):
			return "", false
		case strings.HasPrefix(seg, "(") && strings.HasSuffix(seg, ")"):
			continue
		default:
			kept = append(kept, seg)
		}
	}

	if n := len(kept); n > 0 && kept[n-1] == "index" {
		kept = kept[:n-1]
	}

	return "/" + strings.Join(kept, "/"), true
}

func compileGlobs(patterns []string) ([]glob.Glob, error) {
	if len(patterns) == 0 {
		return nil, nil
	}

	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}

	return globs, nil
}

func normalizeExtensions(extensions []string, fallback string) []string {
	if len(extensions) == 0 {
		return []string{fallback}
	}

	normalized := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}

	if len(normalized) == 0 {
		return []string{fallback}
	}
	return normalized
}

func hasExtension(relPath string, extensions []string) bool {
	ext := strings.ToLower(path.Ext(relPath))
	for _, candidate := range extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
