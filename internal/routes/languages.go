package routes

import "github.com/pellrad/sitegen/internal/models"

// ExpandLanguages maps one canonical path to its per-language URL paths.
// Every configured language yields "/{lang}{path}", except the default
// language which is served from the bare path and skipped in the prefixed
// loop. With no languages configured the canonical path is used verbatim.
// A configured default always contributes the bare path exactly once, even
// when the languages list is empty.
func ExpandLanguages(canonical string, opts *models.SitemapOptions) []string {
	if len(opts.Languages) == 0 {
		return []string{canonical}
	}

	var paths []string
	if opts.DefaultLanguage != "" {
		paths = append(paths, canonical)
	}

	for _, lang := range opts.Languages {
		if lang == opts.DefaultLanguage {
			continue
		}
		paths = append(paths, "/"+lang+canonical)
	}

	return paths
}
