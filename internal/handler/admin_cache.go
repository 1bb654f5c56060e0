package handler

import (
	"net/http"

	"github.com/nikhil-r0/Green-Terrace/internal/logger"
)

// CacheInvalidator is a cache that can be emptied on demand
type CacheInvalidator interface {
	Invalidate()
}

// AdminCacheHandler handles admin cache operations
type AdminCacheHandler struct {
	catalogCache CacheInvalidator
}

// NewAdminCacheHandler creates a new admin cache handler. catalogCache may be nil.
func NewAdminCacheHandler(catalogCache CacheInvalidator) *AdminCacheHandler {
	return &AdminCacheHandler{catalogCache: catalogCache}
}

// HandleInvalidateCatalog drops every cached catalog so the next request reloads it
// POST /api/v1/admin/cache/catalog/invalidate
// @Summary Invalidate catalog cache
// @Description Forces the next request to reload the plant catalog (admin only)
// @Tags admin
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/cache/catalog/invalidate [post]
func (h *AdminCacheHandler) HandleInvalidateCatalog(w http.ResponseWriter, r *http.Request) {
	if h.catalogCache == nil {
		respondError(w, http.StatusNotFound, ErrMsgCacheNotConfigured)
		return
	}
	h.catalogCache.Invalidate()
	logger.FromContext(r.Context()).Info("Catalog cache invalidated")
	respondJSON(w, http.StatusOK, SuccessResponse{Message: "catalog cache invalidated"})
}
