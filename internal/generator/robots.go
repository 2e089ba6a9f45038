package generator

import "strings"

// RenderRobots emits the robots.txt document for a bare domain (host
// without scheme). The Host directive is non-standard but harmless.
func RenderRobots(domain string) string {
	lines := []string{
		"User-agent: *",
		"Allow: /",
		"",
		"Host: https://" + domain,
		"Sitemap: https://" + domain + "/sitemap.xml",
	}
	return strings.Join(lines, "\n") + "\n"
}
