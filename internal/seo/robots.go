// Package seo builds the crawler-facing documents of the site: the robots
// directive document and the XML sitemap. Builders are pure functions of
// their inputs and safe for concurrent use.
package seo

import (
	"strings"

	"yhdfc/internal/site"
)

// CacheControl is the shared-cache policy for crawler documents: fresh for
// a day at the edge, then served stale while revalidating.
const CacheControl = "public, s-maxage=86400, stale-while-revalidate"

// CrawlDelay is the advisory delay, in seconds, between crawler requests.
const CrawlDelay = "1"

var (
	// DisallowedPaths are closed to all crawlers.
	DisallowedPaths = []string{"/admin/", "/api/", "/_next/", "/static/"}

	// AllowedPaths are the sections explicitly opened after the root Allow.
	AllowedPaths = []string{"/blog", "/digital-forensic", "/press", "/training", "/contact", "/about"}
)

// Robots returns the robots.txt body for the given origin. baseURL is
// trimmed of trailing slashes before the sitemap URL is formed.
func Robots(baseURL string) string {
	var b strings.Builder

	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("\n")

	for _, p := range DisallowedPaths {
		b.WriteString("Disallow: " + p + "\n")
	}
	b.WriteString("\n")

	for _, p := range AllowedPaths {
		b.WriteString("Allow: " + p + "\n")
	}
	b.WriteString("\n")

	b.WriteString("Sitemap: " + site.Join(baseURL, "sitemap.xml") + "\n")
	b.WriteString("Crawl-delay: " + CrawlDelay)

	return b.String()
}
