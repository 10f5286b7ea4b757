// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"yhdfc/internal/cache"
	"yhdfc/internal/markdown"
	"yhdfc/internal/middleware"
	"yhdfc/internal/render"
	"yhdfc/internal/slug"
	"yhdfc/web"
)

// Public groups handlers for the public-facing site. Every page goes through
// the site shell; successful renders are stored in the L2 Valkey page cache
// and served from it until the TTL expires.
type Public struct {
	renderer  *render.Renderer
	pageCache *cache.PageCache
	metrics   *middleware.Metrics
	loadDoc   func(name string) (template.HTML, error)
}

// NewPublic creates a new Public handler group. pageCache and metrics may be
// nil.
func NewPublic(renderer *render.Renderer, pageCache *cache.PageCache, metrics *middleware.Metrics) *Public {
	return &Public{renderer: renderer, pageCache: pageCache, metrics: metrics, loadDoc: legalDocument}
}

// legalDocument converts a Markdown source embedded under web/content/.
func legalDocument(name string) (template.HTML, error) {
	return markdown.File(web.ContentFS, "content/"+name)
}

// Homepage renders the landing page with the service overview.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, render.Page{Path: "/", Fragment: "home", Data: services}, http.StatusOK, nil)
}

// Static returns a handler for a fixed content page. Pages backed by a
// Markdown document are converted only when the page is rendered, never on a
// cache hit.
func (p *Public) Static(sp StaticPage) http.HandlerFunc {
	var load func() (any, error)
	if sp.Markdown != "" {
		load = func() (any, error) {
			return p.loadDoc(sp.Markdown)
		}
	}
	return func(w http.ResponseWriter, r *http.Request) {
		p.serve(w, r, render.Page{
			Path:     r.URL.Path,
			Title:    sp.Title,
			Fragment: sp.Fragment,
			Data:     sp.Data,
		}, http.StatusOK, load)
	}
}

// Services renders the digital forensic service index.
func (p *Public) Services(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, render.Page{
		Path:     r.URL.Path,
		Title:    "Digital Forensic Services",
		Fragment: "services",
		Data:     services,
	}, http.StatusOK, nil)
}

// Service renders a single digital forensic service page by its slug.
func (p *Public) Service(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "slug")
	if !slug.Valid(name) {
		p.NotFound(w, r)
		return
	}
	svc, ok := findService(name)
	if !ok {
		p.NotFound(w, r)
		return
	}
	p.serve(w, r, render.Page{
		Path:     r.URL.Path,
		Title:    svc.Title,
		Fragment: "service",
		Data:     svc,
	}, http.StatusOK, nil)
}

// NotFound renders the not-found page inside the shell with status 404.
func (p *Public) NotFound(w http.ResponseWriter, r *http.Request) {
	p.serve(w, r, render.Page{Path: r.URL.Path, Title: "Page Not Found", Fragment: "not-found"}, http.StatusNotFound, nil)
}

// serve writes page through the shell. Only 200 responses are cached. A
// non-nil load replaces page.Data and runs only when the page is rendered.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, page render.Page, status int, load func() (any, error)) {
	ctx := r.Context()
	renderPage := func(buf *bytes.Buffer) error {
		if load != nil {
			data, err := load()
			if err != nil {
				return fmt.Errorf("load page data: %w", err)
			}
			page.Data = data
		}
		return p.renderer.Render(ctx, buf, page)
	}

	var (
		doc []byte
		err error
	)
	if status == http.StatusOK {
		var hit bool
		doc, hit, err = p.pageCache.GetOrRender(ctx, cache.PathKey(page.Path), renderPage)
		if p.pageCache != nil && err == nil {
			p.metrics.CacheLookup(hit)
		}
	} else {
		var buf bytes.Buffer
		err = renderPage(&buf)
		doc = buf.Bytes()
	}

	if err != nil {
		slog.Error("render page failed",
			"error", err,
			"path", page.Path,
			"request_id", middleware.RequestIDFromCtx(ctx),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	writeHTML(w, status, doc)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(body)
}
