package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	timeHandler *handler.TimeHandler,
	localeHandler *handler.LocaleHandler,
	healthHandler *handler.HealthHandler,
) {
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/v1")
	{
		// POST /v1/write
		v1.POST("/write", timeHandler.Write)
		// POST /v1/countdown
		v1.POST("/countdown", timeHandler.Countdown)
		v1.GET("/units", timeHandler.Units)
		v1.GET("/segments", timeHandler.Segments)

		v1.GET("/locales", localeHandler.List)
		v1.POST("/locales", localeHandler.Register)
		// PUT /v1/locale switches the active locale
		v1.PUT("/locale", localeHandler.SetActive)
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, clock coreport.TimeProvider, w usecase.TimeWriterUseCase) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, clock, w))
}
