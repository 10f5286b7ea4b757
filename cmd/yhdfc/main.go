// Package main is the entry point for the YH Digital Forensic Center site
// server. It loads configuration, connects the optional page cache, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"yhdfc/internal/cache"
	"yhdfc/internal/config"
	"yhdfc/internal/handlers"
	"yhdfc/internal/metadata"
	"yhdfc/internal/middleware"
	"yhdfc/internal/render"
	"yhdfc/internal/router"
	"yhdfc/internal/site"
)

func main() {
	// Load configuration from environment variables (and .env, if present).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Structured logger: text in development, JSON everywhere else.
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	slog.SetDefault(slog.New(handler))

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"site_url", cfg.SiteURL,
	)

	// Connect to Valkey for the L2 page cache (optional).
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		valkeyClient, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		cancel()
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()

		pageCache = cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)

		// Pages rendered by a previous build may carry stale markup.
		if n := pageCache.InvalidateAll(context.Background()); n > 0 {
			slog.Info("page cache cleared", "keys", n)
		}
	} else {
		slog.Warn("valkey not configured, page cache disabled")
	}

	// The canonical origin is re-read on every request.
	baseURL := site.FromEnv(nil)

	resolver := metadata.NewResolver(cfg.APIURL, baseURL, nil)
	renderer, err := render.New(resolver, cfg.Locale, cfg.APIURL)
	if err != nil {
		slog.Error("failed to initialize site shell", "error", err)
		os.Exit(1)
	}

	// Prometheus registry with runtime collectors and the HTTP metrics.
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := middleware.NewMetrics(reg)

	var limiter *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	publicHandlers := handlers.NewPublic(renderer, pageCache, metrics)
	seoHandlers := handlers.NewSEO(baseURL)

	r := router.New(publicHandlers, seoHandlers, metrics, limiter, reg)

	// The settings fetch has its own 5s client timeout.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
