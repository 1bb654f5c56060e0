package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/nikhil-r0/Green-Terrace/internal/database"
)

// ReadinessTimeout bounds all readiness checks of one request
const ReadinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CategoryLister is the part of the recommendation service readiness needs
type CategoryLister interface {
	Categories(ctx context.Context) ([]string, error)
}

// CatalogChecker reports healthy when the catalog can be loaded
type CatalogChecker struct {
	Catalog CategoryLister
}

// CheckHealth loads the catalog categories
func (c CatalogChecker) CheckHealth(ctx context.Context) error {
	_, err := c.Catalog.Categories(ctx)
	return err
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
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz provides a readiness check. dbPool is nil when the catalog is file backed.
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (database and catalog reachable)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, checkers ...HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		if dbPool != nil {
			if err := dbPool.Ping(ctx); err != nil {
				slog.Error("Readiness check failed", "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  HealthStatusUnavailable,
					Message: "database connection failed",
				})
				return
			}
		}

		for _, checker := range checkers {
			if err := checker.CheckHealth(ctx); err != nil {
				slog.Error("Readiness check failed", "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  HealthStatusUnavailable,
					Message: "catalog unavailable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}
