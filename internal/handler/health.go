package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/yumbiru/yumvalues/internal/database"
	"github.com/yumbiru/yumvalues/internal/logger"
)

const readinessTimeout = 2 * time.Second

var errEmptyCatalog = errors.New("catalog has no items")

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ReadinessCheck is one dependency consulted by /readyz
type ReadinessCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

// DatabaseCheck pings the trade database
func DatabaseCheck(pool database.Pool) ReadinessCheck {
	return ReadinessCheck{Name: "database", Check: pool.Ping}
}

// CatalogCheck fails while the catalog is empty
func CatalogCheck(cat CatalogReader) ReadinessCheck {
	return ReadinessCheck{Name: "catalog", Check: func(context.Context) error {
		if cat.Len() == 0 {
			return errEmptyCatalog
		}
		return nil
	}}
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready only when every check passes. The first
// failing check names itself in the message.
// @Summary Readiness check
// @Description Returns OK once the database answers and the catalog is loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for _, c := range checks {
			if err := c.Check(ctx); err != nil {
				logger.FromContext(ctx).Error("Readiness check failed", "check", c.Name, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: c.Name + " check failed",
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
