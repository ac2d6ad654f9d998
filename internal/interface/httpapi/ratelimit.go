package httpapi

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimitConfig defines rate limiting parameters
type RateLimitConfig struct {
	Requests int           // Max requests per window
	Window   time.Duration // Time window duration
}

type rateWindow struct {
	count int
	start time.Time
}

// RateLimiter enforces a fixed-window quota per client address with an
// in-process store. State is per-instance; rejection is the only form
// of backpressure.
type RateLimiter struct {
	config  RateLimitConfig
	mu      sync.Mutex
	windows map[string]*rateWindow
	now     func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config:  config,
		windows: make(map[string]*rateWindow),
		now:     time.Now,
	}
}

// Middleware returns the rate limiting middleware
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(clientIP(r)) {
				writeJSON(w, http.StatusTooManyRequests, ErrorEnvelope{
					Status:     "error",
					StatusCode: http.StatusTooManyRequests,
					Message:    "Too many search requests. Please wait and try again.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Allow records a request for the key and reports whether it is still
// within quota.
func (rl *RateLimiter) Allow(key string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Drop stale windows opportunistically so the map stays bounded.
	if len(rl.windows) > 1024 {
		for k, w := range rl.windows {
			if now.Sub(w.start) >= rl.config.Window {
				delete(rl.windows, k)
			}
		}
	}

	w, ok := rl.windows[key]
	if !ok || now.Sub(w.start) >= rl.config.Window {
		rl.windows[key] = &rateWindow{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= rl.config.Requests
}

// clientIP extracts the real client IP from the request
func clientIP(r *http.Request) string {
	// Check X-Forwarded-For header first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
