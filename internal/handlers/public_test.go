// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"yhdfc/internal/cache"
	"yhdfc/internal/metadata"
	"yhdfc/internal/render"
	"yhdfc/internal/seo"
	"yhdfc/internal/site"
)

type failingResolver struct{ err error }

func (f failingResolver) Resolve(ctx context.Context) (*metadata.Metadata, error) {
	return nil, f.err
}

// newTestPublic builds a Public handler group without a page cache, using
// default metadata for example.org.
func newTestPublic(t *testing.T) *Public {
	t.Helper()
	resolver := metadata.NewResolver("", site.Static("https://example.org"), nil)
	renderer, err := render.New(resolver, "en", "https://api.example.org")
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return NewPublic(renderer, nil, nil)
}

// serveRouted runs a request through a minimal chi router so URL params
// resolve the same way as in production.
func serveRouted(p *Public, pattern string, h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Get(pattern, h)
	r.NotFound(p.NotFound)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHomepage(t *testing.T) {
	p := newTestPublic(t)
	rec := httptest.NewRecorder()
	p.Homepage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}

	body := rec.Body.String()
	for _, want := range []string{
		`<html lang="en" class="dark">`,
		"Digital Forensics &amp; Cybersecurity Experts in Korea",
		`href="/digital-forensic/mobile-forensics"`,
		"data-visit-tracker",
		"data-fab",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("homepage missing %q", want)
		}
	}
}

func TestStaticPages(t *testing.T) {
	p := newTestPublic(t)

	for _, sp := range StaticPages {
		t.Run(sp.Path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			p.Static(sp)(rec, httptest.NewRequest(http.MethodGet, sp.Path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status: got %d, want 200", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "| YH Digital Forensic Center</title>") {
				t.Error("page title should use the site title template")
			}
		})
	}
}

func TestContactPageShowsDetails(t *testing.T) {
	p := newTestPublic(t)
	var contact StaticPage
	for _, sp := range StaticPages {
		if sp.Fragment == "contact" {
			contact = sp
		}
	}

	rec := httptest.NewRecorder()
	p.Static(contact)(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))

	if !strings.Contains(rec.Body.String(), "mailto:yh@yhforensic.com") {
		t.Error("contact page should link the contact email")
	}
}

func TestService(t *testing.T) {
	p := newTestPublic(t)

	t.Run("known slug", func(t *testing.T) {
		rec := serveRouted(p, "/digital-forensic/{slug}", p.Service, "/digital-forensic/cloud-forensics")
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}
		body := rec.Body.String()
		if !strings.Contains(body, "<title>Cloud Forensics | YH Digital Forensic Center</title>") {
			t.Error("service title missing")
		}
		if !strings.Contains(body, `<a href="/digital-forensic" class="active" aria-current="page">`) {
			t.Error("Digital Forensic nav entry should be active")
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		rec := serveRouted(p, "/digital-forensic/{slug}", p.Service, "/digital-forensic/no-such-service")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("status: got %d, want 404", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "could not be found") {
			t.Error("not-found fragment should render")
		}
	})
}

func TestServices(t *testing.T) {
	p := newTestPublic(t)
	rec := httptest.NewRecorder()
	p.Services(rec, httptest.NewRequest(http.MethodGet, "/digital-forensic", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	for _, svc := range services {
		if !strings.Contains(rec.Body.String(), "/digital-forensic/"+svc.Slug) {
			t.Errorf("index should link %s", svc.Slug)
		}
	}
}

func TestNotFoundUnknownRoute(t *testing.T) {
	p := newTestPublic(t)
	rec := serveRouted(p, "/", p.Homepage, "/definitely-missing")

	if rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `<html lang="en" class="dark">`) {
		t.Error("not-found page should render inside the shell")
	}
}

func TestMetadataFailureReturns500(t *testing.T) {
	renderer, err := render.New(failingResolver{err: errors.New("settings down")}, "en", "")
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	p := NewPublic(renderer, nil, nil)

	rec := httptest.NewRecorder()
	p.Homepage(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "<html") {
		t.Error("no partial document should be written")
	}
}

func TestFindService(t *testing.T) {
	if _, ok := findService("expert-witness"); !ok {
		t.Error("expert-witness should exist")
	}
	if _, ok := findService(""); ok {
		t.Error("empty slug should not match")
	}
}

func TestLegalPagesRenderMarkdown(t *testing.T) {
	p := newTestPublic(t)

	tests := map[string]string{
		"/privacy-policy":   `<h1 id="privacy-policy">Privacy Policy</h1>`,
		"/terms-of-service": `<h1 id="terms-of-service">Terms of Service</h1>`,
	}
	for _, sp := range StaticPages {
		want, ok := tests[sp.Path]
		if !ok {
			continue
		}
		rec := httptest.NewRecorder()
		p.Static(sp)(rec, httptest.NewRequest(http.MethodGet, sp.Path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: status %d", sp.Path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), want) {
			t.Errorf("%s: rendered Markdown heading missing", sp.Path)
		}
	}
}

func TestLegalPageMissingDocument(t *testing.T) {
	p := newTestPublic(t)
	sp := StaticPage{Path: "/gone", Title: "Gone", Fragment: "legal", Markdown: "gone.md"}

	rec := httptest.NewRecorder()
	p.Static(sp)(rec, httptest.NewRequest(http.MethodGet, "/gone", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}

func TestServiceSlugsInSitemap(t *testing.T) {
	paths := make(map[string]bool)
	for _, e := range seo.StaticPages {
		paths[e.Path] = true
	}
	for _, svc := range services {
		if svc.Slug == "" {
			t.Fatalf("service %q has no slug", svc.Title)
		}
		if !paths["/digital-forensic/"+svc.Slug] {
			t.Errorf("sitemap missing /digital-forensic/%s", svc.Slug)
		}
	}
	for _, sp := range StaticPages {
		if !paths[sp.Path] {
			t.Errorf("sitemap missing %s", sp.Path)
		}
	}
}

// countingLoader returns a document loader that records how often it runs.
func countingLoader(calls *int) func(string) (template.HTML, error) {
	return func(name string) (template.HTML, error) {
		*calls++
		return template.HTML("<h1>" + name + "</h1>"), nil
	}
}

func TestLegalDocumentLoadedPerRender(t *testing.T) {
	p := newTestPublic(t)
	calls := 0
	p.loadDoc = countingLoader(&calls)
	h := p.Static(StaticPage{Path: "/terms-of-service", Title: "Terms of Service", Fragment: "legal", Markdown: "terms-of-service.md"})

	for _i := 0; _i < 2; _i++ {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/terms-of-service", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "<h1>terms-of-service.md</h1>") {
			t.Error("loaded document should be placed in the legal fragment")
		}
	}
	if calls != 2 {
		t.Errorf("without a page cache every request renders: loads = %d, want 2", calls)
	}
}

func TestLegalDocumentSkippedOnCacheHit(t *testing.T) {
	host := os.Getenv("VALKEY_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("VALKEY_PORT")
	if port == "" {
		port = "6379"
	}
	client, err := cache.ConnectValkey(context.Background(), host, port, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping integration test: %v", err)
	}
	defer client.Close()

	pc := cache.NewPageCache(client, time.Minute)
	path := "/legal-cache-check"
	t.Cleanup(func() { pc.Invalidate(context.Background(), cache.PathKey(path)) })
	pc.Invalidate(context.Background(), cache.PathKey(path))

	p := newTestPublic(t)
	p.pageCache = pc
	calls := 0
	p.loadDoc = countingLoader(&calls)
	h := p.Static(StaticPage{Path: path, Title: "Terms", Fragment: "legal", Markdown: "terms-of-service.md"})

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status %d", i, rec.Code)
		}
	}
	if calls != 1 {
		t.Errorf("cache hits should not convert the document: loads = %d, want 1", calls)
	}
}
