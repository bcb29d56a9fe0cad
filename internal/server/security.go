package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/metrics"
)

// isPublicPath reports whether path may be served without an API key
func isPublicPath(path string) bool {
	for _, p := range PublicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// AuthMiddleware rejects non-public requests without the configured API key
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	want := []byte(apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(provided), want) != 1 {
				ip := extractIP(r, trustedProxies)
				detector.RecordFailedAuth(ip)
				metrics.AuthFailuresTotal.Inc()

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"ip", ip,
					"path", r.URL.Path,
					"has_key", provided != "")

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// ipWindow counts one client's activity since start
type ipWindow struct {
	start    time.Time
	requests int
	failures int
}

// SuspiciousActivityDetector keeps a fixed window of counters per client IP.
// Each IP's window restarts on its first hit after RateLimitWindow.
type SuspiciousActivityDetector struct {
	mu      sync.Mutex
	windows map[string]*ipWindow
	now     func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		windows: make(map[string]*ipWindow),
		now:     time.Now,
	}
}

// window returns the live window for ip. Caller holds mu.
func (s *SuspiciousActivityDetector) window(ip string) *ipWindow {
	now := s.now()
	w, ok := s.windows[ip]
	if !ok || now.Sub(w.start) > RateLimitWindow {
		w = &ipWindow{start: now}
		s.windows[ip] = w
	}
	return w
}

// RecordFailedAuth counts a failed authentication and alerts past the threshold
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.failures++
	if w.failures >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", w.failures)
	}
}

// FailedAuths returns the failures counted in ip's current window
func (s *SuspiciousActivityDetector) FailedAuths(ip string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.windows[ip]; ok {
		return w.failures
	}
	return 0
}

// RecordRequest counts a request and returns false once ip is over budget
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.window(ip)
	w.requests++
	if w.requests <= RateLimitPerWindow {
		return true
	}
	if w.requests%RateLimitLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", w.requests)
	}
	return false
}

// Sweep drops windows that have expired. Run it periodically so idle
// clients do not accumulate.
func (s *SuspiciousActivityDetector) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for ip, w := range s.windows {
		if now.Sub(w.start) > RateLimitWindow {
			delete(s.windows, ip)
			removed++
		}
	}
	return removed
}

// SecurityLoggingMiddleware enforces the per-IP request budget
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !detector.RecordRequest(ip) {
				metrics.RateLimitedTotal.Inc()
				logger.FromContext(r.Context()).Warn(LogMsgRateLimited, "ip", ip, "path", r.URL.Path)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is honoured only
// when the direct peer is a trusted proxy, and then only its last hop.
func extractIP(r *http.Request, trustedProxies []string) string {
	remote, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remote = r.RemoteAddr
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" || !isTrustedProxy(remote, trustedProxies) {
		return remote
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

func isTrustedProxy(ip string, trusted []string) bool {
	for _, p := range trusted {
		if p == ip {
			return true
		}
	}
	return false
}

var securityHeaders = [][2]string{
	{HeaderContentType, HeaderValueNoSniff},
	{HeaderFrameOptions, HeaderValueSameOrigin},
	{HeaderXSSProtection, HeaderValueXSSBlock},
	{HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin},
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, h := range securityHeaders {
				w.Header().Set(h[0], h[1])
			}
			next.ServeHTTP(w, r)
		})
	}
}
