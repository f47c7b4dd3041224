package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/database"
)

// HealthChecker reports the state of the database connection
type HealthChecker interface {
	Health(ctx context.Context) (database.ConnectionPoolMetrics, error)
}

// HealthHandler handles the health endpoint
type HealthHandler struct {
	db      HealthChecker
	locales usecase.LocaleContext
	logger  coreport.Logger
}

// NewHealthHandler creates a health handler. db may be nil when the
// database is disabled.
func NewHealthHandler(db HealthChecker, locales usecase.LocaleContext, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{db: db, locales: locales, logger: logger}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Locale: h.locales.Settings().Identifier}
	if h.db == nil {
		c.JSON(http.StatusOK, resp)
		return
	}

	metrics, err := h.db.Health(c.Request.Context())
	if err != nil {
		h.logger.Warn("Health check degraded", map[string]any{"error": err.Error()})
		resp.Status = "degraded"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}
	resp.Database = metrics
	c.JSON(http.StatusOK, resp)
}
