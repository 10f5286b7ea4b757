// Package metadata resolves the per-page document metadata (title,
// description, keywords, social cards) from the backend site settings,
// falling back to built-in defaults when the settings are unavailable.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"yhdfc/internal/site"
)

const (
	SiteName      = "YH Digital Forensic Center"
	TitleTemplate = "%s | " + SiteName

	DefaultTitle       = "YH Digital Forensic Center - Digital Forensics & Cybersecurity Experts in Korea"
	DefaultDescription = "Professional digital forensics services including mobile forensics, computer forensics, and cyber investigation training."
	DefaultKeywords    = "digital forensics, mobile forensics, computer forensics, cyber investigation, data recovery"

	OGImage   = "/images/og-image.jpg"
	Icon      = "/images/logo.png"
	TwitterID = "@yhdfc"
)

// fixedKeywords are appended after the configured keywords on every page.
var fixedKeywords = []string{
	"digital forensics",
	"computer forensics",
	"mobile forensics",
	"cloud forensics",
	"data recovery",
	"expert witness",
	"cybersecurity",
	"Korea",
	"Seoul",
	"digital investigation",
	"eDiscovery",
	"corporate investigation",
	"legal forensics",
	"incident response",
}

// Settings mirrors the SEO fields of the backend site-settings resource.
type Settings struct {
	DefaultMetaTitle       string `json:"default_meta_title"`
	DefaultMetaDescription string `json:"default_meta_description"`
	DefaultKeywords        string `json:"default_keywords"`
}

// Metadata is everything the document head needs for one page.
type Metadata struct {
	BaseURL     string
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Robots      string
	Icon        string
	OGImage     string
	SiteName    string
	Locale      string
	TwitterSite string
}

// PageTitle renders a page-specific title through the title template.
// An empty page title yields the default title.
func (m *Metadata) PageTitle(page string) string {
	if page == "" {
		return m.Title
	}
	return fmt.Sprintf(TitleTemplate, page)
}

// CanonicalURL is the canonical address of the page at path. The home page
// is the bare canonical origin.
func (m *Metadata) CanonicalURL(path string) string {
	return site.Join(m.Canonical, path)
}

// Resolver produces Metadata for each render. Settings are fetched fresh
// every time.
type Resolver struct {
	apiURL  string
	baseURL site.BaseURLFunc
	client  *http.Client
}

// NewResolver creates a Resolver. An empty apiURL skips the settings fetch
// and always uses the defaults. A nil client gets a 5 second timeout.
func NewResolver(apiURL string, baseURL site.BaseURLFunc, client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	if baseURL == nil {
		baseURL = site.Static("")
	}
	return &Resolver{apiURL: site.TrimSlash(apiURL), baseURL: baseURL, client: client}
}

// Resolve builds the metadata for the current request. Settings failures
// fall back to defaults; only a cancelled context is returned as an error.
func (r *Resolver) Resolve(ctx context.Context) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("resolve metadata: %w", err)
	}

	s := r.fetchSettings(ctx)
	base := r.baseURL()

	return &Metadata{
		BaseURL:     base,
		Title:       orDefault(s.DefaultMetaTitle, DefaultTitle),
		Description: orDefault(s.DefaultMetaDescription, DefaultDescription),
		Keywords:    append(splitKeywords(s.DefaultKeywords), fixedKeywords...),
		Canonical:   base,
		Robots:      "index, follow, max-video-preview:-1, max-image-preview:large, max-snippet:-1",
		Icon:        Icon,
		OGImage:     OGImage,
		SiteName:    SiteName,
		Locale:      "en_US",
		TwitterSite: TwitterID,
	}, nil
}

func (r *Resolver) fetchSettings(ctx context.Context) Settings {
	defaults := Settings{
		DefaultMetaTitle:       DefaultTitle,
		DefaultMetaDescription: DefaultDescription,
		DefaultKeywords:        DefaultKeywords,
	}
	if r.apiURL == "" {
		return defaults
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiURL+"/api/site-settings/", nil)
	if err != nil {
		slog.Warn("site settings request failed", "error", err)
		return defaults
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	resp, err := r.client.Do(req)
	if err != nil {
		slog.Warn("site settings fetch failed", "error", err)
		return defaults
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("site settings fetch failed", "status", resp.StatusCode)
		return defaults
	}

	var s Settings
	if err := json.NewDecoder(resp.Body).Decode(&s); err != nil {
		slog.Warn("site settings decode failed", "error", err)
		return defaults
	}
	return s
}

// splitKeywords splits a comma-separated keyword list, dropping blanks.
func splitKeywords(raw string) []string {
	var out []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
