package handlers

import (
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"kelaskata/internal/security"
)

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		next.ServeHTTP(w, r)

		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// RateLimit throttles an endpoint per client IP
func RateLimit(limiter *security.RateLimiter, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !limiter.Allow(ip) {
			respondWithError(w, http.StatusTooManyRequests, "Too many requests", "", nil)
			return
		}
		next(w, r)
	}
}

// hostToken extracts the bearer token from the Authorization header, or ""
// when none was sent. Observer requests carry no token at all.
func hostToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
