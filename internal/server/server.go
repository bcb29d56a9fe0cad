package server

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/yumbiru/yumvalues/internal/database"
	"github.com/yumbiru/yumvalues/internal/handler"
	"github.com/yumbiru/yumvalues/internal/logger"
	"github.com/yumbiru/yumvalues/internal/metrics"
	"github.com/yumbiru/yumvalues/internal/sse"
	"github.com/yumbiru/yumvalues/internal/valuation"
)

// Catalog is what the HTTP surface reads from the item catalog
type Catalog interface {
	handler.CatalogReader
	valuation.ItemLookup
}

// Deps are the collaborators the routes are bound to
type Deps struct {
	Port           int
	APIKey         string
	TrustedProxies []string

	DBPool   database.Pool
	Catalog  Catalog
	Sessions handler.SessionStore
	Trades   handler.PendingLister
	Presence handler.PresenceTracker
	Hub      *sse.Hub

	// Detector is created when nil. Pass one in to sweep it with SweepJob.
	Detector *SuspiciousActivityDetector
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(deps Deps) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", deps.Port),
			Handler:           NewRouter(deps),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := deps.Detector
	if detector == nil {
		detector = NewSuspiciousActivityDetector()
	}

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(deps.APIKey, deps.TrustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(deps.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(handler.DatabaseCheck(deps.DBPool), handler.CatalogCheck(deps.Catalog)))

	r.Get("/version", handler.HandleVersion(deps.Catalog))
	r.Handle("/metrics", promhttp.Handler())

	// Live event stream
	r.Get("/events", sse.Handler(deps.Hub))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", handler.HandleGetCatalog(deps.Catalog))
			r.Get("/filters", handler.HandleGetFilters())
		})

		r.Get("/trades/pending", handler.HandleListPendingTrades(deps.Trades, deps.Catalog))

		r.Route("/presence", func(r chi.Router) {
			r.Get("/", handler.HandleGetViewerCount(deps.Presence))
			r.Get("/ws", handler.HandleViewerSocket(deps.Presence))
		})

		r.Route("/session", func(r chi.Router) {
			r.Get("/", handler.HandleGetSession(deps.Sessions))
			r.Post("/", handler.HandleOpenSession(deps.Sessions))
			r.Delete("/", handler.HandleCloseSession(deps.Sessions))
			r.Post("/actions", handler.HandleSessionAction(deps.Sessions))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps event streams working behind the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Hijack lets the viewer socket upgrade through the wrapper
func (rw *responseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rw.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	rw.statusCode = http.StatusSwitchingProtocols
	rw.written = true
	return h.Hijack()
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
