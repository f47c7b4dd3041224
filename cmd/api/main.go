package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timewriter/internal/domain/port/core"
	"github.com/amirhossein-jamali/timewriter/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/locale"
	"github.com/amirhossein-jamali/timewriter/internal/domain/usecase/writer"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/localefs"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/timewriter/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/timewriter/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Production: cfg.IsProduction() || cfg.Logger.Format == "json",
		Level:      coreport.ParseLogLevel(cfg.Logger.Level),
		Service:    "timewriter",
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	locales, err := locale.NewService(appLogger)
	if err != nil {
		appLogger.Error("Failed to create locale service", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	if err := loadFileLocales(ctx, cfg.Locale, locales); err != nil {
		appLogger.Error("Failed to load locale bundles", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	// The database is optional; without it registered bundles live in memory
	var (
		store   persistence.LocaleStore
		checker handler.HealthChecker
	)
	if cfg.Database.Enabled {
		conn, err := database.Connect(ctx, database.FromAppConfig(cfg.Database, cfg.Database.LogLevel), appLogger, tp)
		if err != nil {
			appLogger.Error("Failed to connect to database", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer func() { _ = conn.Close() }()

		if err := migration.NewMigrationManager(conn.DB, appLogger, tp).MigrateAll(ctx); err != nil {
			appLogger.Error("Failed to run migrations", map[string]any{"error": err.Error()})
			os.Exit(1)
		}

		localeRepo := repository.NewLocaleRepository(conn.DB, appLogger)
		if cfg.Database.Seed {
			if _, err := migration.SeedDefaultLocales(ctx, localeRepo, localefs.Bundled(), appLogger); err != nil {
				appLogger.Error("Failed to seed default locales", map[string]any{"error": err.Error()})
			}
		}
		if _, err := locales.Load(ctx, localeRepo); err != nil {
			appLogger.Error("Failed to load stored locale bundles", map[string]any{"error": err.Error()})
			os.Exit(1)
		}

		store = localeRepo
		checker = conn
	}

	if _, err := locales.Set(cfg.Locale.Default); err != nil {
		appLogger.Error("Failed to activate default locale", map[string]any{
			"locale":    cfg.Locale.Default,
			"available": locales.ListAvailable(),
		})
		os.Exit(1)
	}

	// Initialize API handlers
	timeHandler := handler.NewTimeHandler(locales, cfg.Writer, appLogger)
	localeHandler := handler.NewLocaleHandler(locales, store, appLogger)
	healthHandler := handler.NewHealthHandler(checker, locales, appLogger)

	router := gin.New()
	latencyWriter := writer.NewTimeWriter(nil, appLogger, entity.Settings{})
	routes.SetupMiddlewares(router, appLogger, tp, latencyWriter)
	routes.SetupRoutes(router, timeHandler, localeHandler, healthHandler)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":     server.Addr,
			"env":      cfg.Environment,
			"locale":   locales.Get(),
			"database": cfg.Database.Enabled,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// loadFileLocales registers the compiled-in bundles and those of the
// configured directory
func loadFileLocales(ctx context.Context, conf config.LocaleConfig, locales *locale.Service) error {
	if conf.Bundled {
		if _, err := locales.Load(ctx, localefs.Bundled()); err != nil {
			return fmt.Errorf("bundled locales: %w", err)
		}
	}
	if conf.Directory != "" {
		if _, err := locales.Load(ctx, localefs.NewRepository(os.DirFS(conf.Directory), ".")); err != nil {
			return fmt.Errorf("locale directory %s: %w", conf.Directory, err)
		}
	}
	return nil
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if cfg.Database.Enabled {
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or TW_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or TW_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or TW_DB_NAME environment variable)")
		}
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	switch cfg.Environment {
	case config.Development, config.Production, config.Test:
	default:
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if err := cfg.Writer.Validate(); err != nil {
		return fmt.Errorf("writer settings: %w", err)
	}

	if cfg.IsProduction() && cfg.Database.Enabled {
		switch cfg.Database.SSLMode {
		case "require", "verify-ca", "verify-full":
		default:
			log.Printf("Warning: database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production, got %q", cfg.Database.SSLMode)
		}
	}

	return nil
}
