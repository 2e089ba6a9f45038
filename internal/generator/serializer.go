package generator

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/pellrad/sitegen/internal/models"
)

// RenderSitemap serializes entries as a sitemaps.org 0.9 urlset document,
// one <url> element per line.
func RenderSitemap(entries []models.SitemapEntry) (string, error) {
	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<urlset xmlns="` + models.NSSitemap + `">` + "\n")

	for _, entry := range entries {
		u := models.URL{
			Loc:     entry.Loc,
			LastMod: entry.LastMod.UTC().Format(time.RFC3339),
		}
		data, err := xml.Marshal(u)
		if err != nil {
			return "", fmt.Errorf("marshalling entry %s: %w", entry.Loc, err)
		}
		b.WriteString("  ")
		b.Write(data)
		b.WriteString("\n")
	}

	b.WriteString("</urlset>\n")
	return b.String(), nil
}

// ParseSitemap reads a sitemap XML document back into its entries.
func ParseSitemap(doc string) ([]models.SitemapEntry, error) {
	var sitemap models.Sitemap
	if err := xml.Unmarshal([]byte(doc), &sitemap); err != nil {
		return nil, fmt.Errorf("parsing sitemap: %w", err)
	}

	entries := make([]models.SitemapEntry, 0, len(sitemap.URLs))
	for _, u := range sitemap.URLs {
		entry := models.SitemapEntry{Loc: u.Loc}
		if u.LastMod != "" {
			lastMod, err := time.Parse(time.RFC3339, u.LastMod)
			if err != nil {
				return nil, fmt.Errorf("invalid lastmod %q for %s: %w", u.LastMod, u.Loc, err)
			}
			entry.LastMod = lastMod
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
