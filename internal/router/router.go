// Package router sets up the HTTP routes and middleware chain of the public
// site: crawler documents, static assets and the shell-rendered pages.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"yhdfc/internal/handlers"
	"yhdfc/internal/middleware"
	"yhdfc/web"
)

// New creates the chi router with the global middleware and every route
// wired up. limiter may be nil to disable rate limiting.
func New(public *handlers.Public, seo *handlers.SEO, metrics *middleware.Metrics, limiter *middleware.RateLimiter, gatherer prometheus.Gatherer) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	if metrics != nil {
		r.Use(metrics.Middleware)
	}

	// Operational endpoints are not rate limited.
	r.Get("/health", healthHandler)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		// Crawler documents.
		r.Get("/robots.txt", seo.Robots)
		r.Get("/sitemap.xml", seo.Sitemap)

		// Embedded assets.
		r.Handle("/static/*", assetHandler("/static/", "static"))
		r.Handle("/images/*", assetHandler("/images/", "static/images"))

		// Pages.
		r.Get("/", public.Homepage)
		for _, sp := range handlers.StaticPages {
			r.Get(sp.Path, public.Static(sp))
		}
		r.Get("/digital-forensic", public.Services)
		r.Get("/digital-forensic/{slug}", public.Service)
	})

	r.NotFound(public.NotFound)

	return r
}

// assetHandler serves the embedded directory dir under prefix.
func assetHandler(prefix, dir string) http.Handler {
	sub, err := fs.Sub(web.StaticFS, dir)
	if err != nil {
		panic("router: embedded asset directory missing: " + dir)
	}
	return http.StripPrefix(prefix, http.FileServer(http.FS(sub)))
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
