// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides the site shell: the document root that wraps every
// public page. Page fragments and the shell layout are html/template files
// embedded in the binary.
package render

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"yhdfc/internal/metadata"
)

//go:embed templates/shell/*.html templates/pages/*.html
var templateFS embed.FS

const (
	// Theme is the fixed colour scheme class on <html>.
	Theme = "dark"

	// Stylesheet is the single global stylesheet served from web/static.
	Stylesheet = "/static/css/globals.css"
)

// SiteFont is the body font for every page.
var SiteFont = LoadFont("Inter", "latin")

// MetadataResolver produces document metadata before each render.
type MetadataResolver interface {
	Resolve(ctx context.Context) (*metadata.Metadata, error)
}

// Page is one public page handed to the shell.
type Page struct {
	Path     string // request path, drives active navigation and widgets
	Title    string // page title; empty uses the site default
	Fragment string // name of the embedded content fragment
	Data     any    // passed to the fragment template
}

// shellData is the root template context.
type shellData struct {
	Lang       string
	Theme      string
	Stylesheet string
	Font       Font
	Meta       *metadata.Metadata
	Title      string
	Path       string
	Tracker    *Tracker
	Chrome     Chrome
	Actions    []Action
}

// Renderer holds the parsed templates and the collaborators of the shell.
type Renderer struct {
	tmpl   *template.Template
	meta   MetadataResolver
	locale string
	apiURL string
}

// New parses all embedded templates. locale is the <html lang> value
// ("en" when empty); apiURL is where the visit tracker posts beacons and may
// be empty to disable tracking.
func New(meta MetadataResolver, locale, apiURL string) (*Renderer, error) {
	if locale == "" {
		locale = "en"
	}

	funcMap := template.FuncMap{
		"pageTitle": func(m *metadata.Metadata, title string) string {
			return m.PageTitle(title)
		},
		"absURL": func(m *metadata.Metadata, path string) string {
			return m.BaseURL + path
		},
		"join": strings.Join,
	}

	tmpl, err := template.New("shell").Funcs(funcMap).ParseFS(templateFS,
		"templates/shell/*.html",
		"templates/pages/*.html",
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl, meta: meta, locale: locale, apiURL: apiURL}, nil
}

// HasFragment reports whether a content fragment with that name exists.
func (rn *Renderer) HasFragment(name string) bool {
	return rn.tmpl.Lookup("page:"+name) != nil
}

// Render writes the complete document for page to w. Metadata is resolved
// first; a resolver error is returned untouched and nothing is written.
func (rn *Renderer) Render(ctx context.Context, w io.Writer, page Page) error {
	md, err := rn.meta.Resolve(ctx)
	if err != nil {
		return err
	}

	var content bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&content, "page:"+page.Fragment, page.Data); err != nil {
		return fmt.Errorf("render fragment %s: %w", page.Fragment, err)
	}

	data := shellData{
		Lang:       rn.locale,
		Theme:      Theme,
		Stylesheet: Stylesheet,
		Font:       SiteFont,
		Meta:       md,
		Title:      page.Title,
		Path:       page.Path,
		Tracker:    VisitTracker(rn.apiURL, page.Path),
		Chrome:     LayoutChrome(page.Path, template.HTML(content.String())),
		Actions:    ConditionalActionButton(page.Path),
	}

	var doc bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&doc, "document", data); err != nil {
		return fmt.Errorf("render document: %w", err)
	}
	_, err = doc.WriteTo(w)
	return err
}
