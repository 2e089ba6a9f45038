package models

import "time"

// SitemapEntry is one URL in the generated sitemap. Loc is always an
// absolute URL (scheme + host + path); LastMod feeds the <lastmod> element.
type SitemapEntry struct {
	Loc     string    `json:"loc"`
	LastMod time.Time `json:"lastmod"`
	Source  string    `json:"source,omitempty"` // "routes" or "content"
}
