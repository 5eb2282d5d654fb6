// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/eco-ideas/internal/app"
	"github.com/MKhiriev/eco-ideas/internal/logger"
	"github.com/MKhiriev/eco-ideas/internal/utils"
)

const limiterMaxAge = 10 * time.Minute

// RateLimiter keeps one token bucket per key. Buckets idle for longer than
// limiterMaxAge are dropped. A limiter with a non-positive rate lets
// everything through.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu    sync.Mutex
	store map[string]*limiterEntry
	now   func() time.Time
}

type limiterEntry struct {
	limiter *rate.Limiter
	updated time.Time
}

func NewRateLimiter(reqPerSec float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit: rate.Limit(reqPerSec),
		burst: burst,
		store: make(map[string]*limiterEntry),
		now:   time.Now,
	}
}

func (l *RateLimiter) enabled() bool {
	return l != nil && l.limit > 0
}

func (l *RateLimiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if entry, ok := l.store[key]; ok {
		entry.updated = now
		return entry.limiter
	}

	for k, entry := range l.store {
		if now.Sub(entry.updated) > limiterMaxAge {
			delete(l.store, k)
		}
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	l.store[key] = &limiterEntry{limiter: lim, updated: now}
	return lim
}

// Allow reports whether one more request for key fits in its bucket.
func (l *RateLimiter) Allow(key string) bool {
	if !l.enabled() {
		return true
	}
	return l.get(key).AllowN(l.now(), 1)
}

// LimitByKey rejects requests over the limit with 429. Requests for which
// keyFunc finds no key are not limited.
func (l *RateLimiter) LimitByKey(next http.Handler, keyFunc func(*http.Request) (string, bool)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, ok := keyFunc(r)
		if !ok || key == "" || l.Allow(key) {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().Str("key", key).Str("uri", r.RequestURI).Msg("rate limit exceeded")
		w.Header().Set("Retry-After", "1")
		utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
	})
}

// IPRateLimit keys the limiter by the client address.
func IPRateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return limiter.LimitByKey(next, func(r *http.Request) (string, bool) {
			return realIPFromRequest(r), true
		})
	}
}

// UserRateLimit keys the limiter by the authenticated user id; it must run
// after auth.
func UserRateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return limiter.LimitByKey(next, func(r *http.Request) (string, bool) {
			return utils.GetUserIDFromContext(r.Context())
		})
	}
}

func realIPFromRequest(r *http.Request) string {
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
