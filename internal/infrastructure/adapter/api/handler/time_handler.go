package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/timewriter/internal/domain/error"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/locale"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/writer"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/api/dto"
)

// TimeHandler handles formatting requests
type TimeHandler struct {
	locales  usecase.LocaleUseCase
	settings entity.Settings
	logger   coreport.Logger
}

// NewTimeHandler creates a handler whose writers use settings as their
// instance layer
func NewTimeHandler(locales usecase.LocaleUseCase, settings entity.Settings, logger coreport.Logger) *TimeHandler {
	return &TimeHandler{
		locales:  locales,
		settings: settings,
		logger:   logger,
	}
}

// writerFor builds a writer for one request. An empty identifier uses the
// active locale, anything else is resolved without activating it.
func (h *TimeHandler) writerFor(identifier string) (usecase.TimeWriterUseCase, string, error) {
	if identifier == "" {
		bundle := h.locales.Settings()
		return writer.NewTimeWriter(locale.Fixed(bundle), h.logger, h.settings), bundle.Identifier, nil
	}
	bundle, err := h.locales.Lookup(identifier)
	if err != nil {
		return nil, "", err
	}
	return writer.NewTimeWriter(locale.Fixed(bundle), h.logger, h.settings), bundle.Identifier, nil
}

// unitRef leaves an empty name unset so the writer can apply its defaults
func unitRef(name string) entity.TimeUnitRef {
	if name == "" {
		return nil
	}
	return entity.UnitName(name)
}

// Write handles the POST /v1/write endpoint
func (h *TimeHandler) Write(c *gin.Context) {
	var req dto.WriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	w, id, err := h.writerFor(req.Locale)
	if err != nil {
		respondError(c, h.logger, "Error resolving locale", err)
		return
	}

	result, err := w.Write(string(req.Value), usecase.WriteOptions{
		From:     unitRef(req.From),
		To:       unitRef(req.To),
		Settings: req.Settings,
	})
	if err != nil {
		respondError(c, h.logger, "Error writing time", err)
		return
	}

	c.JSON(http.StatusOK, dto.ResultResponse{Result: result, Locale: id})
}

// Countdown handles the POST /v1/countdown endpoint
func (h *TimeHandler) Countdown(c *gin.Context) {
	var req dto.CountdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, h.logger, err)
		return
	}

	w, id, err := h.writerFor(req.Locale)
	if err != nil {
		respondError(c, h.logger, "Error resolving locale", err)
		return
	}

	from := unitRef(req.From)
	if from == nil {
		from = entity.Nanosecond
	}
	t, err := entity.TimeFrom(string(req.Value), from)
	if err != nil {
		respondError(c, h.logger, "Error reading countdown value", err)
		return
	}

	groups, err := countdownGroups(req)
	if err != nil {
		respondError(c, h.logger, "Error resolving countdown units", err)
		return
	}

	result, err := w.Countdown(t, req.Settings, groups...)
	if err != nil {
		respondError(c, h.logger, "Error writing countdown", err)
		return
	}

	c.JSON(http.StatusOK, dto.ResultResponse{Result: result, Locale: id})
}

func countdownGroups(req dto.CountdownRequest) ([]entity.Segment, error) {
	groups := make([]entity.Segment, 0, len(req.Groups)+1)
	for _, name := range req.Groups {
		segment, ok := entity.LookupSegment(name)
		if !ok {
			return nil, domainerr.NewArgumentError(name, "unknown segment group")
		}
		groups = append(groups, segment)
	}
	if len(req.Units) > 0 {
		units := make(entity.Segment, 0, len(req.Units))
		for _, name := range req.Units {
			units = append(units, entity.UnitName(name))
		}
		groups = append(groups, units)
	}
	return groups, nil
}

// Units handles the GET /v1/units endpoint
func (h *TimeHandler) Units(c *gin.Context) {
	units := entity.TimeUnits()
	resp := make([]dto.UnitResponse, 0, len(units))
	for _, u := range units {
		resp = append(resp, dto.UnitResponse{
			Name:         u.Name,
			ReadableName: u.DisplayName(),
			Symbol:       u.Symbol,
			Nanoseconds:  u.Factor.String(),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Segments handles the GET /v1/segments endpoint
func (h *TimeHandler) Segments(c *gin.Context) {
	names := entity.SegmentNames()
	resp := make([]dto.SegmentResponse, 0, len(names))
	for _, name := range names {
		segment, _ := entity.LookupSegment(name)
		units, err := entity.FlattenSegments(segment)
		if err != nil {
			respondError(c, h.logger, "Error listing segments", err)
			return
		}
		unitNames := make([]string, 0, len(units))
		for _, u := range units {
			unitNames = append(unitNames, u.Name)
		}
		resp = append(resp, dto.SegmentResponse{Name: name, Units: unitNames})
	}
	c.JSON(http.StatusOK, resp)
}
