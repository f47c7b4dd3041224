package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to a status code. Client errors echo the
// error text; server errors are logged and hidden.
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	if domainerr.IsClientError(err) {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	logger.Error(message, map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
		Message: "Internal server error",
	})
}

// respondBadRequest rejects a body that could not be bound
func respondBadRequest(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
