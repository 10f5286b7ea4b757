// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// page.go provides the L2 full-page cache: documents produced by the site
// shell are kept in Valkey under their request path for a fixed TTL.
package cache

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// pageKeyPrefix namespaces page entries inside a shared Valkey.
	pageKeyPrefix = "yhdfc:page:"

	// DefaultPageTTL is how long a rendered page stays cached.
	DefaultPageTTL = 5 * time.Minute

	// unlinkBatch is the number of keys removed per UNLINK call.
	unlinkBatch = 100
)

// PageCache stores rendered documents in Valkey. A nil *PageCache is a
// disabled cache: lookups miss, writes are dropped, and GetOrRender always
// renders.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPageCache creates a page cache on client. A zero ttl uses
// DefaultPageTTL.
func NewPageCache(client *redis.Client, ttl time.Duration) *PageCache {
	if ttl <= 0 {
		ttl = DefaultPageTTL
	}
	return &PageCache{client: client, ttl: ttl}
}

// Get returns the cached document for key. Valkey errors count as a miss.
func (pc *PageCache) Get(ctx context.Context, key string) ([]byte, bool) {
	if pc == nil {
		return nil, false
	}
	val, err := pc.client.Get(ctx, pageKeyPrefix+key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, false
	case err != nil:
		slog.Warn("page cache get failed", "key", key, "error", err)
		return nil, false
	}
	return val, true
}

// Set stores a document for key with the cache TTL.
func (pc *PageCache) Set(ctx context.Context, key string, doc []byte) {
	if pc == nil {
		return
	}
	if err := pc.client.Set(ctx, pageKeyPrefix+key, doc, pc.ttl).Err(); err != nil {
		slog.Warn("page cache set failed", "key", key, "error", err)
	}
}

// GetOrRender returns the cached document for key, or calls render, stores
// its output and returns it. A render error is returned as-is and nothing
// is cached.
func (pc *PageCache) GetOrRender(ctx context.Context, key string, render func(*bytes.Buffer) error) (doc []byte, hit bool, err error) {
	if cached, ok := pc.Get(ctx, key); ok {
		return cached, true, nil
	}

	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		return nil, false, err
	}
	pc.Set(ctx, key, buf.Bytes())
	return buf.Bytes(), false, nil
}

// Invalidate removes a single page.
func (pc *PageCache) Invalidate(ctx context.Context, key string) {
	if pc == nil {
		return
	}
	if err := pc.client.Unlink(ctx, pageKeyPrefix+key).Err(); err != nil {
		slog.Warn("page cache invalidate failed", "key", key, "error", err)
	}
}

// InvalidateAll removes every cached page and returns how many keys were
// unlinked. main calls it on startup so a new build never serves documents
// from the previous shell.
func (pc *PageCache) InvalidateAll(ctx context.Context) int {
	if pc == nil {
		return 0
	}

	var removed int
	batch := make([]string, 0, unlinkBatch)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		n, err := pc.client.Unlink(ctx, batch...).Result()
		if err != nil {
			slog.Warn("page cache unlink failed", "error", err)
		}
		removed += int(n)
		batch = batch[:0]
	}

	iter := pc.client.Scan(ctx, 0, pageKeyPrefix+"*", unlinkBatch).Iterator()
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == unlinkBatch {
			flush()
		}
	}
	flush()
	if err := iter.Err(); err != nil {
		slog.Warn("page cache scan failed", "error", err)
	}
	return removed
}

// PathKey returns the cache key for a request path. The root path maps to
// "_homepage" so it never collides with an empty key.
func PathKey(path string) string {
	p := strings.Trim(path, "/")
	if p == "" {
		return "_homepage"
	}
	return p
}
