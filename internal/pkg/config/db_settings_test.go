//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid sqlite settings",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
				DSN:  ":memory:",
			},
			expectedError: false,
		},
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
				Name: "rsa_keys",
			},
			expectedError: false,
		},
		{
			name: "postgres without database name",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "host=localhost user=postgres password=postgres port=5432 sslmode=disable",
			},
			expectedError: true,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN: ":memory:",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name: "missing DSN",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
