//go:build integration
// +build integration

package persistence

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/keys"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/config"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestModulusDigits = 199
	TestExponent      = "65537"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB      *gorm.DB
	KeyRepo keys.KeyRepository
}

// SetupTestDB initializes a migrated test database and registers its cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  filepath.Join(t.TempDir(), "rsa-keys.db"),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	keyRepo, err := NewGormKeyRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key repository")

	return &TestContext{
		DB:      db,
		KeyRepo: keyRepo,
	}
}

// CreateTestKey creates public key metadata with default values
func CreateTestKey(t *testing.T) *keys.KeyMeta {
	t.Helper()

	return CreateTestKeyWithOptions(t, uuid.NewString(), crypto.KeyTypePublic, time.Now())
}

// CreateTestKeyWithOptions creates key metadata of keyType belonging to keyPairID
func CreateTestKeyWithOptions(t *testing.T, keyPairID, keyType string, created time.Time) *keys.KeyMeta {
	t.Helper()

	meta := &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Type:            keyType,
		ModulusDigits:   TestModulusDigits,
		FilePath:        filepath.Join(t.TempDir(), keyPairID+"-"+keyType+"-key"),
		DateTimeCreated: created,
	}
	if keyType == crypto.KeyTypePublic {
		meta.Exponent = TestExponent
	}

	return meta
}
