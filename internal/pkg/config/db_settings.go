package config

import (
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/pkg/validators"
)

// Supported database types
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DefaultSqliteDSN is the database file used when no DSN is configured for sqlite
const DefaultSqliteDSN = "hrms.db"

// DatabaseSettings describes how to reach the relational store backing the ORM.
// Name is only honoured for postgres, where the database is created when missing.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name" validate:"omitempty,sqlident"`
}

// Validate checks that the settings are complete for the selected database type
func (s *DatabaseSettings) Validate() error {
	if err := validators.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for database type %s", s.Type)
	}

	return nil
}
