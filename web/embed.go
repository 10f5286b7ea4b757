// Package web provides the embedded assets of the public site. The global
// stylesheet and images are served at /static/; the legal documents are
// Markdown sources rendered into the site shell.
package web

import "embed"

// StaticFS embeds the web/static/ directory tree.
//
//go:embed all:static
var StaticFS embed.FS

// ContentFS embeds the Markdown documents under web/content/.
//
//go:embed content/*.md
var ContentFS embed.FS
