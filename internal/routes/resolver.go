package routes

import (
	"errors"
	"path"
	"strings"

	"github.com/pellrad/sitegen/internal/fsys"
	"github.com/pellrad/sitegen/internal/models"
)

// ErrNoMatchingRoute means a content file's type has no corresponding
// directory in the routes tree. Callers skip the file and continue.
var ErrNoMatchingRoute = errors.New("no matching route directory")

// Resolver binds content files to the route directory that renders them.
type Resolver struct {
	fs         fsys.FS
	routesRoot string
	extensions []string
}

func NewResolver(fs fsys.FS, routesRoot string, opts *models.SitemapOptions) *Resolver {
	return &Resolver{
		fs:         fs,
		routesRoot: routesRoot,
		extensions: normalizeExtensions(opts.ContentExtensions, ".md"),
	}
}

// HasContentExtension reports whether relPath ends in a configured content
// extension.
func (r *Resolver) HasContentExtension(relPath string) bool {
	return hasExtension(relPath, r.extensions)
}

// Resolve computes the public URL path for a content file, relative to the
// content root. The first path segment names the content type; the routes
// tree is searched depth-first for a directory of that name, the directory
// path is canonicalized into the base, and the remaining content segments
// become the slug.
func (r *Resolver) Resolve(contentRel string) (string, *models.RouteBinding, error) {
	rel := strings.Trim(contentRel, "/")
	rel = strings.TrimSuffix(rel, path.Ext(rel))

	segments := strings.Split(rel, "/")
	contentType := segments[0]
	slug := segments[1:]

	routeDir, found, err := r.findRouteDir("", contentType)
	if err != nil {
		return "", nil, err
	}
	if !found {
		return "", nil, ErrNoMatchingRoute
	}

	base, ok := canonicalize(strings.Split(routeDir, "/"))
	if !ok {
		// The matched directory sits under a private segment.
		return "", nil, ErrNoMatchingRoute
	}

	binding := &models.RouteBinding{
		ContentPath: contentRel,
		RouteDir:    routeDir,
		BasePath:    base,
		Slug:        slug,
	}

	return joinURLPath(base, slug), binding, nil
}

// findRouteDir searches the routes tree depth-first for a directory named
// name, checking siblings in lexicographic order before descending. The
// first match wins. Routes trees are assumed to be cycle-free.
func (r *Resolver) findRouteDir(rel, name string) (string, bool, error) {
	dir := r.routesRoot
	if rel != "" {
		dir = path.Join(r.routesRoot, rel)
	}

	entries, err := r.fs.ListEntries(dir)
	if err != nil {
		return "", false, err
	}

	for _, entry := range entries {
		if !entry.IsDir {
			continue
		}

		childRel := entry.Name
		if rel != "" {
			childRel = rel + "/" + entry.Name
		}

		if entry.Name == name {
			return childRel, true, nil
		}

		if match, found, err := r.findRouteDir(childRel, name); err != nil || found {
			return match, found, err
		}
	}

	return "", false, nil
}

func joinURLPath(base string, slug []string) string {
	if len(slug) == 0 {
		return base
	}
	if base == "/" {
		return "/" + strings.Join(slug, "/")
	}
	return base + "/" + strings.Join(slug, "/")
}
