// internal/models/sitemap.go
package models

import "encoding/xml"

// NSSitemap is the sitemaps.org 0.9 urlset namespace.
const NSSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Sitemap represents the structure of an XML sitemap.
type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL represents a single URL entry in the sitemap.
type URL struct {
	XMLName xml.Name `xml:"url"`
	Loc     string   `xml:"loc"`
	LastMod string   `xml:"lastmod,omitempty"`
}
