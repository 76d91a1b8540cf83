// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package middleware

import (
	"log/slog"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// limiterCache is a generic rate limiter cache with double-check locking.
type limiterCache[K comparable] struct {
	limiters map[K]*rate.Limiter
	mu       sync.RWMutex
	rate     rate.Limit
	burst    int
}

// newLimiterCache creates a new limiter cache.
func newLimiterCache[K comparable](rps float64, burst int) *limiterCache[K] {
	return &limiterCache[K]{
		limiters: make(map[K]*rate.Limiter),
		rate:     rate.Limit(rps),
		burst:    burst,
	}
}

// get returns the rate limiter for a specific key, creating one if needed.
func (lc *limiterCache[K]) get(key K) *rate.Limiter {
	lc.mu.RLock()
	limiter, exists := lc.limiters[key]
	lc.mu.RUnlock()

	if exists {
		return limiter
	}

	lc.mu.Lock()
	defer lc.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists = lc.limiters[key]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(lc.rate, lc.burst)
	lc.limiters[key] = limiter
	return limiter
}

// clearIfExceeds clears all entries if the cache exceeds maxSize.
// Returns true if the cache was cleared.
func (lc *limiterCache[K]) clearIfExceeds(maxSize int) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()

	if len(lc.limiters) > maxSize {
		lc.limiters = make(map[K]*rate.Limiter)
		return true
	}
	return false
}

// maxTrackedIPs bounds the per-IP limiter map so a scan of spoofed
// addresses cannot grow it without limit.
const maxTrackedIPs = 10000

// PublicFormLimiter rate limits anonymous form submissions per client IP.
// It protects the registration and appointment endpoints, which accept
// unauthenticated writes.
type PublicFormLimiter struct {
	cache *limiterCache[string]
}

// NewPublicFormLimiter creates a limiter allowing perMinute submissions
// per IP with a small burst.
func NewPublicFormLimiter(perMinute int) *PublicFormLimiter {
	if perMinute <= 0 {
		perMinute = 10
	}
	return &PublicFormLimiter{
		cache: newLimiterCache[string](float64(perMinute)/60.0, perMinute),
	}
}

// Middleware returns the rate limiting middleware. Rejected requests get
// the standard JSON envelope with a 429 status.
func (pl *PublicFormLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := getClientIP(r)
			if !pl.cache.get(ip).Allow() {
				slog.Warn("public form rate limit exceeded", "ip", ip, "path", r.URL.Path)
				writeJSONMessage(w, http.StatusTooManyRequests, "Quá nhiều yêu cầu, vui lòng thử lại sau")
				return
			}
			if pl.cache.clearIfExceeds(maxTrackedIPs) {
				slog.Warn("public form limiter cache cleared", "max_size", maxTrackedIPs)
			}
			next.ServeHTTP(w, r)
		})
	}
}

// getClientIP extracts the client IP from the request.
func getClientIP(r *http.Request) string {
	// Check X-Real-IP header (set by reverse proxies)
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	// Check X-Forwarded-For header
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		// X-Forwarded-For can contain multiple IPs; take the first one
		return ip
	}

	// Fall back to RemoteAddr
	return r.RemoteAddr
}
