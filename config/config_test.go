package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
site:
  baseurl: https://example.com

paths:
  routes: web/routes
  content: web/content

generator:
  languages: ["en", "ja"]
  defaultlanguage: en
  exclude: ["drafts/*"]

database:
  driver: sqlite3
  url: sitegen.db

server:
  enabled: true
`

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0644))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cfg.Site.BaseURL)
	assert.Equal(t, "web/routes", cfg.Paths.Routes)
	assert.Equal(t, "web/content", cfg.Paths.Content)
	assert.Equal(t, []string{"en", "ja"}, cfg.Generator.Languages)
	assert.Equal(t, "en", cfg.Generator.DefaultLanguage)
	assert.Equal(t, []string{"drafts/*"}, cfg.Generator.Exclude)
	assert.True(t, cfg.Server.Enabled)

	// Defaults
	assert.Equal(t, "public/sitemap.xml", cfg.Paths.Sitemap)
	assert.Equal(t, "public/robots.txt", cfg.Paths.Robots)
	assert.Equal(t, []string{".html"}, cfg.Generator.RouteExtensions)
	assert.Equal(t, []string{".md"}, cfg.Generator.ContentExtensions)
	assert.Equal(t, 8080, cfg.Server.Port)

	opts := cfg.SitemapOptions()
	assert.Equal(t, []string{"en", "ja"}, opts.Languages)
	assert.Equal(t, "en", opts.DefaultLanguage)
}
