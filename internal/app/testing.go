//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/keys"
	"github.com/nolanchancellor/RSAImplementation/internal/infrastructure/cryptography"
	"github.com/nolanchancellor/RSAImplementation/internal/infrastructure/persistence"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/config"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyService    keys.KeyService
	CipherService crypto.CipherService

	// Infrastructure
	RSAProcessor crypto.RSAProcessor
	DBContext    *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	settings := config.DefaultKeyGenSettings()

	dbContext := persistence.SetupTestDB(t, dbType)

	keyGenerator, err := cryptography.NewKeyGeneratorFromSettings(settings, logger)
	require.NoError(t, err, "Failed to create key generator")

	rsaProcessor, err := cryptography.NewRSAProcessor(settings.BlockSize, logger)
	require.NoError(t, err, "Failed to create RSA processor")

	keyService, err := NewKeyService(keyGenerator, rsaProcessor, dbContext.KeyRepo, logger)
	require.NoError(t, err, "Failed to create KeyService")

	cipherService, err := NewCipherService(keyGenerator, rsaProcessor, logger)
	require.NoError(t, err, "Failed to create CipherService")

	return &TestServices{
		KeyService:    keyService,
		CipherService: cipherService,
		RSAProcessor:  rsaProcessor,
		DBContext:     dbContext,
	}
}
