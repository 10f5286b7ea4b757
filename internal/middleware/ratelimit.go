// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// maxTrackedClients bounds the per-client map before idle entries are swept.
const maxTrackedClients = 10_000

// clientLimiter is the token bucket of a single client.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter applies a global token bucket and one bucket per client IP.
type RateLimiter struct {
	global *rate.Limiter

	mu      sync.Mutex
	clients map[string]*clientLimiter

	rps   rate.Limit
	burst int
	idle  time.Duration
}

// NewRateLimiter allows rps requests per second per client with the given
// burst. The global bucket admits ten clients' worth of traffic.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	return &RateLimiter{
		global:  rate.NewLimiter(rate.Limit(rps*10), burst*10),
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
		idle:    10 * time.Minute,
	}
}

// allow checks whether the given key is within the rate limit. The client
// bucket is consulted first so rejected requests never spend global tokens.
func (rl *RateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, ok := rl.clients[key]
	if !ok {
		entry = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[key] = entry
	}
	entry.lastSeen = now

	if len(rl.clients) > maxTrackedClients {
		rl.sweepLocked(now.Add(-rl.idle))
	}

	if !entry.limiter.AllowN(now, 1) {
		return false
	}
	return rl.global.AllowN(now, 1)
}

// sweepLocked drops clients not seen since threshold. rl.mu must be held.
func (rl *RateLimiter) sweepLocked(threshold time.Time) {
	for key, entry := range rl.clients {
		if entry.lastSeen.Before(threshold) {
			delete(rl.clients, key)
		}
	}
}

// Middleware returns an HTTP middleware that rate-limits by client IP.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(ClientIP(r)) {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP extracts the client's IP address, checking X-Forwarded-For
// and X-Real-IP headers for proxied requests.
func ClientIP(r *http.Request) string {
	// Take the first (leftmost) X-Forwarded-For entry: the original client.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
