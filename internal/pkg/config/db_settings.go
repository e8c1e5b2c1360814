package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DatabaseSettings holds the connection settings of the key registry database
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.Name == "" {
		return fmt.Errorf("database name is required for postgres")
	}

	return nil
}
