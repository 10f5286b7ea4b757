package seo

import (
	"encoding/xml"
	"io"
	"time"

	"yhdfc/internal/site"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Entry is one sitemap location, relative to the site origin.
type Entry struct {
	Path       string
	ChangeFreq string
	Priority   string
}

// StaticPages lists the fixed routes of the site in sitemap order.
var StaticPages = []Entry{
	{Path: "", ChangeFreq: "daily", Priority: "1.0"},
	{Path: "/about", ChangeFreq: "monthly", Priority: "0.8"},
	{Path: "/digital-forensic", ChangeFreq: "weekly", Priority: "0.9"},
	{Path: "/digital-forensic/computer-forensics", ChangeFreq: "monthly", Priority: "0.8"},
	{Path: "/digital-forensic/mobile-forensics", ChangeFreq: "monthly", Priority: "0.8"},
	{Path: "/digital-forensic/cloud-forensics", ChangeFreq: "monthly", Priority: "0.8"},
	{Path: "/digital-forensic/data-recovery", ChangeFreq: "monthly", Priority: "0.8"},
	{Path: "/digital-forensic/expert-witness", ChangeFreq: "monthly", Priority: "0.8"},
	{Path: "/digital-forensic/general-forensics", ChangeFreq: "monthly", Priority: "0.7"},
	{Path: "/press", ChangeFreq: "weekly", Priority: "0.7"},
	{Path: "/training", ChangeFreq: "monthly", Priority: "0.7"},
	{Path: "/blog", ChangeFreq: "daily", Priority: "0.8"},
	{Path: "/contact", ChangeFreq: "monthly", Priority: "0.6"},
	{Path: "/privacy-policy", ChangeFreq: "yearly", Priority: "0.3"},
	{Path: "/terms-of-service", ChangeFreq: "yearly", Priority: "0.3"},
}

type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// WriteSitemap encodes StaticPages as a sitemap document rooted at baseURL.
// Every entry is stamped with now. Only routes the server answers with 200
// are listed.
func WriteSitemap(w io.Writer, baseURL string, now time.Time) error {
	mod := now.UTC().Format(time.RFC3339)
	set := urlSet{XMLNS: sitemapNS, URLs: make([]url, 0, len(StaticPages))}
	for _, e := range StaticPages {
		set.URLs = append(set.URLs, url{
			Loc:        site.Join(baseURL, e.Path),
			LastMod:    mod,
			ChangeFreq: e.ChangeFreq,
			Priority:   e.Priority,
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	return enc.Encode(set)
}
