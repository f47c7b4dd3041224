package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/locale"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/api/dto"
)

// LocaleHandler handles locale-related HTTP requests
type LocaleHandler struct {
	locales usecase.LocaleUseCase
	store   persistence.LocaleStore
	logger  coreport.Logger
}

// NewLocaleHandler creates a new locale handler. store may be nil, in which
// case registered bundles live only in memory.
func NewLocaleHandler(locales usecase.LocaleUseCase, store persistence.LocaleStore, logger coreport.Logger) *LocaleHandler {
	return &LocaleHandler{
		locales: locales,
		store:   store,
		logger:  logger,
	}
}

func (h *LocaleHandler) listing() dto.LocalesResponse {
	active := h.locales.Get()
	ids := h.locales.ListAvailable()
	resp := dto.LocalesResponse{Active: active, Locales: make([]dto.LocaleResponse, 0, len(ids))}
	for _, id := range ids {
		resp.Locales = append(resp.Locales, dto.LocaleResponse{
			Identifier:  id,
			DisplayName: locale.DisplayName(id),
			Active:      id == active,
		})
	}
	return resp
}

// List handles the GET /v1/locales endpoint
func (h *LocaleHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.listing())
}

// SetActive handles the PUT /v1/locale endpoint
func (h *LocaleHandler) SetActive(c *gin.Context) {
	var req dto.SetLocaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	if _, err := h.locales.Set(req.Identifier); err != nil {
		respondError(c, h.logger, "Error activating locale", err)
		return
	}
	c.JSON(http.StatusOK, h.listing())
}

// Register handles the POST /v1/locales endpoint. The bundle is persisted
// first when a store is configured, so a failed save registers nothing.
func (h *LocaleHandler) Register(c *gin.Context) {
	var bundle entity.LocaleSettings
	if err := c.ShouldBindJSON(&bundle); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	normalized, err := bundle.Normalize()
	if err != nil {
		respondError(c, h.logger, "Error registering locale", err)
		return
	}

	if h.store != nil {
		if err := h.store.Save(c.Request.Context(), normalized); err != nil {
			respondError(c, h.logger, "Error saving locale bundle", err)
			return
		}
	}
	if err := h.locales.Register(normalized); err != nil {
		respondError(c, h.logger, "Error registering locale", err)
		return
	}

	h.logger.Info("Locale bundle registered", map[string]any{
		"identifier": normalized.Identifier,
		"persisted":  h.store != nil,
	})
	c.JSON(http.StatusCreated, h.listing())
}
