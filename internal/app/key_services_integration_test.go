//go:build integration
// +build integration

package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/keys"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyService_Generate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	keyDir := filepath.Join(t.TempDir(), "keys")

	pair, err := services.KeyService.Generate(context.Background(), keyDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(keyDir, pair.KeyPairID+"-public-key"), pair.Public.FilePath)
	assert.Equal(t, filepath.Join(keyDir, pair.KeyPairID+"-private-key"), pair.Private.FilePath)
	assert.Equal(t, "65537", pair.Public.Exponent)
	assert.Empty(t, pair.Private.Exponent)

	publicKey, err := services.RSAProcessor.ReadPublicKey(pair.Public.FilePath)
	require.NoError(t, err)
	privateKey, err := services.RSAProcessor.ReadPrivateKey(pair.Private.FilePath)
	require.NoError(t, err)
	require.NoError(t, privateKey.ValidateFor(publicKey))
	assert.Equal(t, len(publicKey.N.String()), pair.Public.ModulusDigits)

	listed, err := services.KeyService.List(context.Background(), &keys.KeyQuery{KeyPairID: pair.KeyPairID})
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	privateOnly, err := services.KeyService.List(context.Background(), &keys.KeyQuery{Type: crypto.KeyTypePrivate})
	require.NoError(t, err)
	require.Len(t, privateOnly, 1)
	assert.Equal(t, pair.Private.ID, privateOnly[0].ID)
}

func TestKeyService_Delete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	keyDir := t.TempDir()

	pair, err := services.KeyService.Generate(context.Background(), keyDir)
	require.NoError(t, err)
	kept, err := services.KeyService.Generate(context.Background(), keyDir)
	require.NoError(t, err)

	require.NoError(t, services.KeyService.Delete(context.Background(), pair.KeyPairID))

	_, err = os.Stat(pair.Public.FilePath)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(pair.Private.FilePath)
	assert.True(t, os.IsNotExist(err))

	remaining, err := services.KeyService.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	for _, meta := range remaining {
		assert.Equal(t, kept.KeyPairID, meta.KeyPairID)
	}

	err = services.KeyService.Delete(context.Background(), pair.KeyPairID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = services.KeyService.Delete(context.Background(), "not-a-uuid")
	assert.Error(t, err)

	err = services.KeyService.Delete(context.Background(), uuid.NewString())
	assert.Error(t, err)
}
