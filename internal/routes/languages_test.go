package routes

import (
	"testing"

	"github.com/pellrad/sitegen/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestExpandLanguagesDefaultUnprefixed(t *testing.T) {
	opts := &models.SitemapOptions{
		Languages:       []string{"en", "ja"},
		DefaultLanguage: "en",
	}

	paths := ExpandLanguages("/about", opts)
	assert.Equal(t, []string{"/about", "/ja/about"}, paths)
}

func TestExpandLanguagesNoDefault(t *testing.T) {
	opts := &models.SitemapOptions{
		Languages: []string{"en", "ja", "de"},
	}

	paths := ExpandLanguages("/about", opts)
	assert.Equal(t, []string{"/en/about", "/ja/about", "/de/about"}, paths)
}

func TestExpandLanguagesNoneConfigured(t *testing.T) {
	paths := ExpandLanguages("/about", &models.SitemapOptions{})
	assert.Equal(t, []string{"/about"}, paths)
}

func TestExpandLanguagesEmptyListBehavesLikeUnset(t *testing.T) {
	opts := &models.SitemapOptions{
		Languages:       []string{},
		DefaultLanguage: "en",
	}

	paths := ExpandLanguages("/about", opts)
	assert.Equal(t, []string{"/about"}, paths, "must yield the bare path once, never zero entries")
}

func TestExpandLanguagesRoot(t *testing.T) {
	opts := &models.SitemapOptions{
		Languages:       []string{"en", "ja"},
		DefaultLanguage: "en",
	}

	paths := ExpandLanguages("/", opts)
	assert.Equal(t, []string{"/", "/ja/"}, paths)
}
