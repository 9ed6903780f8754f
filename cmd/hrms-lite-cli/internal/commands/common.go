package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/hrms-lite/hrms-backend/internal/bootstrap"
	"github.com/hrms-lite/hrms-backend/internal/infrastructure/persistence"
	"github.com/hrms-lite/hrms-backend/internal/pkg/config"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ConfigLoader supplies the CLI configuration once flags are parsed.
type ConfigLoader func() (*config.CLIConfig, error)

// Session opens the database and builds the services the first time a
// command needs them, so help output never touches storage.
type Session struct {
	loadConfig ConfigLoader

	once     sync.Once
	db       *gorm.DB
	services *bootstrap.Services
	logger   logger.Logger
	err      error
}

// NewSession creates a Session that loads its configuration with loader.
func NewSession(loader ConfigLoader) *Session {
	return &Session{loadConfig: loader}
}

// Services returns the application services, opening storage on first use.
func (s *Session) Services() (*bootstrap.Services, error) {
	s.once.Do(func() {
		s.err = s.open()
	})
	return s.services, s.err
}

func (s *Session) open() error {
	cfg, err := s.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	s.logger = logger.NewConsoleLoggerWithWriter(cfg.Logger.LogLevel, os.Stderr)

	location, err := bootstrap.LoadLocation(cfg.Timezone)
	if err != nil {
		return err
	}

	db, err := bootstrap.OpenDatabase(cfg.Database, s.logger)
	if err != nil {
		return err
	}

	services, err := bootstrap.NewServices(db, location, s.logger)
	if err != nil {
		_ = persistence.CloseDB(db)
		return err
	}

	s.db = db
	s.services = services
	return nil
}

// Close releases the database connection if one was opened. Later calls are no-ops.
func (s *Session) Close() error {
	if s.db == nil {
		return nil
	}
	db := s.db
	s.db = nil
	return persistence.CloseDB(db)
}

func writeJSON(cmd *cobra.Command, value interface{}) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
