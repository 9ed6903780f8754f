package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/hrms-lite/hrms-backend/internal/pkg/validators"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults applied before the config file and the environment are read
const (
	DefaultPort     = "8000"
	DefaultTimezone = "UTC"
)

// RestConfig holds everything the HTTP server needs at startup
type RestConfig struct {
	Port        string           `mapstructure:"port" validate:"required,numeric"`
	FrontendURL string           `mapstructure:"frontend_url" validate:"required,http_url"`
	Timezone    string           `mapstructure:"timezone" validate:"required,timezone"`
	Database    DatabaseSettings `mapstructure:"database"`
	Logger      LoggerSettings   `mapstructure:"logger"`
}

// CLIConfig is the subset of settings used by the administrative CLI
type CLIConfig struct {
	Timezone string           `mapstructure:"timezone" validate:"required,timezone"`
	Database DatabaseSettings `mapstructure:"database"`
	Logger   LoggerSettings   `mapstructure:"logger"`
}

// envBindings maps config keys to the environment variables that override them
var envBindings = map[string]string{
	"port":               "PORT",
	"frontend_url":       "FRONTEND_URL",
	"timezone":           "TIMEZONE",
	"database.type":      "DATABASE_TYPE",
	"database.dsn":       "DATABASE_URL",
	"database.name":      "DATABASE_NAME",
	"logger.log_level":   "LOG_LEVEL",
	"logger.log_type":    "LOG_TYPE",
	"logger.file_path":   "LOG_FILE_PATH",
	"logger.max_size":    "LOG_MAX_SIZE",
	"logger.max_backups": "LOG_MAX_BACKUPS",
	"logger.max_age":     "LOG_MAX_AGE",
}

// InitializeRestConfig loads the server configuration. configPath may be empty,
// in which case only defaults, .env and the process environment are used.
func InitializeRestConfig(configPath string) (*RestConfig, error) {
	v, err := load(configPath)
	if err != nil {
		return nil, err
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.FrontendURL = strings.TrimRight(strings.TrimSpace(cfg.FrontendURL), "/")
	applyDatabaseDefaults(&cfg.Database)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitializeCLIConfig loads the CLI configuration; FRONTEND_URL is not required here.
func InitializeCLIConfig(configPath string) (*CLIConfig, error) {
	v, err := load(configPath)
	if err != nil {
		return nil, err
	}

	var cfg CLIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	applyDatabaseDefaults(&cfg.Database)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the server configuration including nested settings
func (c *RestConfig) Validate() error {
	if err := validators.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Logger.Validate()
}

// Validate checks the CLI configuration including nested settings
func (c *CLIConfig) Validate() error {
	if err := validators.New().Struct(c); err != nil {
		return fmt.Errorf("validation failed for CLIConfig: %w", err)
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	return c.Logger.Validate()
}

func load(configPath string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("timezone", DefaultTimezone)
	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
}

func applyDatabaseDefaults(s *DatabaseSettings) {
	if s.Type == SqliteDbType && s.DSN == "" {
		s.DSN = DefaultSqliteDSN
	}
}
