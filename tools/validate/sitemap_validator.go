package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	URLs    []URL    `xml:"url"`
}

type URL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func main() {
	sitemapPath := flag.String("sitemap", "public/sitemap.xml", "path to the generated sitemap.xml")
	baseURL := flag.String("base", "", "base URL every <loc> must start with (optional)")
	flag.Parse()

	data, err := os.ReadFile(*sitemapPath)
	if err != nil {
		log.Fatalf("Error reading sitemap: %v", err)
	}

	var sitemap Sitemap
	if err := xml.Unmarshal(data, &sitemap); err != nil {
		log.Fatalf("Error parsing sitemap: %v", err)
	}

	fmt.Printf("Total URLs found: %d\n\n", len(sitemap.URLs))

	problems := 0
	seen := make(map[string]bool, len(sitemap.URLs))

	for i, u := range sitemap.URLs {
		if u.Loc == "" {
			fmt.Printf("URL %d: empty <loc>\n", i+1)
			problems++
			continue
		}

		if seen[u.Loc] {
			fmt.Printf("URL %d: duplicate <loc> %s\n", i+1, u.Loc)
			problems++
		}
		seen[u.Loc] = true

		if *baseURL != "" && !strings.HasPrefix(u.Loc, *baseURL) {
			fmt.Printf("URL %d: %s does not start with %s\n", i+1, u.Loc, *baseURL)
			problems++
		}

		if u.LastMod != "" {
			if _, err := time.Parse(time.RFC3339, u.LastMod); err != nil {
				fmt.Printf("URL %d: invalid <lastmod> %q: %v\n", i+1, u.LastMod, err)
				problems++
			}
		}
	}

	if problems > 0 {
		fmt.Printf("\n%d problem(s) found\n", problems)
		os.Exit(1)
	}

	fmt.Println("Sitemap is valid")
}
