package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. TW_SERVER_PORT
const EnvPrefix = "TW"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// envOverrides maps environment variables to configuration keys. Unmarshal
// only sees keys viper knows about, so overrides are applied explicitly.
var envOverrides = map[string]string{
	"TW_SERVER_HOST":       "server.host",
	"TW_SERVER_PORT":       "server.port",
	"TW_LOGGER_LEVEL":      "logger.level",
	"TW_LOGGER_FORMAT":     "logger.format",
	"TW_LOCALE_DEFAULT":    "locale.default",
	"TW_LOCALE_DIRECTORY":  "locale.directory",
	"TW_DB_ENABLED":        "database.enabled",
	"TW_DB_SEED":           "database.seed",
	"TW_DB_HOST":           "database.host",
	"TW_DB_PORT":           "database.port",
	"TW_DB_USERNAME":       "database.username",
	"TW_DB_PASSWORD":       "database.password",
	"TW_DB_NAME":           "database.database",
	"TW_DB_SSL_MODE":       "database.sslMode",
	"TW_DB_RETRY_ATTEMPTS": "database.retryAttempts",
}

// LoadConfig loads configuration for the environment named by TW_ENV
func LoadConfig() (*Config, error) {
	if path, err := loadDotEnvFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load %s: %v\n", path, err)
	}
	return Load(getEnvironment(), ConfigPaths...)
}

// Load reads configs/<env>.yaml from the first of paths that has it, then
// applies defaults and environment overrides. A missing file is not an error.
func Load(env string, paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile loads the first .env file found. It returns the path and
// error of a file that exists but cannot be parsed.
func loadDotEnvFile() (string, error) {
	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return path, godotenv.Load(path)
	}
	return "", nil
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.enabled", false)
	v.SetDefault("database.seed", true)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.logLevel", "warn")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("locale.default", "en-us")
	v.SetDefault("locale.directory", "")
	v.SetDefault("locale.bundled", true)
}

// getEnvironment determines the environment from TW_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	for env, key := range envOverrides {
		if value, ok := os.LookupEnv(env); ok && value != "" {
			v.Set(key, value)
		}
	}
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second
}

// IsProduction reports whether the production environment is configured
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}
