package routes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pellrad/sitegen/internal/fsys"
	"github.com/pellrad/sitegen/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(t *testing.T, routeDirs ...string) *Resolver {
	t.Helper()
	root := t.TempDir()
	for _, dir := range routeDirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0755))
	}
	return NewResolver(fsys.NewOS(), root, &models.SitemapOptions{})
}

func TestResolveSimpleBinding(t *testing.T) {
	r := newTestResolver(t, "blog", "about")

	urlPath, binding, err := r.Resolve("blog/my-first-post.md")
	require.NoError(t, err)

	assert.Equal(t, "/blog/my-first-post", urlPath)
	assert.Equal(t, "blog", binding.RouteDir)
	assert.Equal(t, "/blog", binding.BasePath)
	assert.Equal(t, []string{"my-first-post"}, binding.Slug)
}

func TestResolveNestedRouteDir(t *testing.T) {
	r := newTestResolver(t, "docs/(v2)/guides")

	urlPath, binding, err := r.Resolve("guides/getting-started.md")
	require.NoError(t, err)

	// The grouping segment is stripped from the base path.
	assert.Equal(t, "/docs/guides/getting-started", urlPath)
	assert.Equal(t, "docs/(v2)/guides", binding.RouteDir)
	assert.Equal(t, "/docs/guides", binding.BasePath)
}

func TestResolveDeepSlug(t *testing.T) {
	r := newTestResolver(t, "blog")

	urlPath, _, err := r.Resolve("blog/2024/06/release-notes.md")
	require.NoError(t, err)
	assert.Equal(t, "/blog/2024/06/release-notes", urlPath)
}

func TestResolveNoMatchingRoute(t *testing.T) {
	r := newTestResolver(t, "blog")

	_, _, err := r.Resolve("podcast/episode-1.md")
	assert.ErrorIs(t, err, ErrNoMatchingRoute)
}

func TestResolveRouteDirUnderPrivateSegment(t *testing.T) {
	r := newTestResolver(t, "_internal/news")

	_, _, err := r.Resolve("news/launch.md")
	assert.ErrorIs(t, err, ErrNoMatchingRoute)
}

func TestResolveFirstMatchWins(t *testing.T) {
	// Lexicographically, "archive/blog" is reached before "zone/blog".
	r := newTestResolver(t, "archive/blog", "zone/blog")

	_, binding, err := r.Resolve("blog/post.md")
	require.NoError(t, err)
	assert.Equal(t, "archive/blog", binding.RouteDir)
}

func TestHasContentExtension(t *testing.T) {
	r := newTestResolver(t, "blog")
	assert.True(t, r.HasContentExtension("blog/post.md"))
	assert.False(t, r.HasContentExtension("blog/cover.png"))
}
