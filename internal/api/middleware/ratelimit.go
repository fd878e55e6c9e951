package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// RateLimiter is a fixed-window in-memory rate limiter keyed by
// client IP. Good enough for a single-process deployment; a shared
// store would be needed behind multiple replicas.
type RateLimiter struct {
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	mu       sync.Mutex
}

type visitor struct {
	windowEnd time.Time
	count     int
}

// NewRateLimiter creates a rate limiter allowing limit requests per
// window per client IP and starts its background cleanup.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
	}
	go rl.cleanupLoop()
	return rl
}

// Middleware rejects clients over their budget with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now().UTC()
	v, ok := rl.visitors[ip]
	if !ok || now.After(v.windowEnd) {
		rl.visitors[ip] = &visitor{count: 1, windowEnd: now.Add(rl.window)}
		return true
	}

	if v.count >= rl.limit {
		return false
	}
	v.count++
	return true
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now().UTC()
		rl.mu.Lock()
		for ip, v := range rl.visitors {
			if now.After(v.windowEnd) {
				delete(rl.visitors, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// clientIP prefers X-Forwarded-For so the limiter works behind a
// reverse proxy, falling back to the connection address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
