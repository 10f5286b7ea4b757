package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"yhdfc/internal/seo"
	"yhdfc/internal/site"
)

// SEO serves the crawler documents. The base URL is resolved on every
// request, so both documents always reflect the configured origin.
type SEO struct {
	baseURL site.BaseURLFunc
	now     func() time.Time
}

// NewSEO creates the crawler document handlers. A nil baseURL falls back to
// site.DefaultBaseURL.
func NewSEO(baseURL site.BaseURLFunc) *SEO {
	if baseURL == nil {
		baseURL = site.Static("")
	}
	return &SEO{baseURL: baseURL, now: time.Now}
}

// Robots answers GET /robots.txt with the crawl policy document.
func (s *SEO) Robots(w http.ResponseWriter, r *http.Request) {
	body := seo.Robots(s.baseURL())

	h := w.Header()
	h.Set("Content-Type", "text/plain")
	h.Set("Cache-Control", seo.CacheControl)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// Sitemap answers GET /sitemap.xml with the static page list.
func (s *SEO) Sitemap(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := seo.WriteSitemap(&buf, s.baseURL(), s.now()); err != nil {
		slog.Error("sitemap encode failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "application/xml")
	h.Set("Cache-Control", seo.CacheControl)
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
