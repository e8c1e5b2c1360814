//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/keys"
	"github.com/nolanchancellor/RSAImplementation/internal/infrastructure/cryptography"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func toyKeyGenerator() *MockKeyGenerator {
	generator := new(MockKeyGenerator)
	generator.On("GenerateKeys", mock.Anything).Return(
		&crypto.PublicKey{N: big.NewInt(3233), E: big.NewInt(17)},
		&crypto.PrivateKey{D: big.NewInt(2753)},
		nil,
	)
	return generator
}

func setupToyProcessor(t *testing.T) crypto.RSAProcessor {
	t.Helper()
	processor, err := cryptography.NewRSAProcessor(1, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return processor
}

func TestKeyService_Generate_RegistersBothRecords(t *testing.T) {
	repo := new(MockKeyRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*keys.KeyMeta")).Return(nil)

	service, err := NewKeyService(toyKeyGenerator(), setupToyProcessor(t), repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	keyDir := t.TempDir()
	pair, err := service.Generate(context.Background(), keyDir)
	require.NoError(t, err)

	assert.Equal(t, crypto.KeyTypePublic, pair.Public.Type)
	assert.Equal(t, "17", pair.Public.Exponent)
	assert.Equal(t, 4, pair.Public.ModulusDigits)
	assert.Equal(t, crypto.KeyTypePrivate, pair.Private.Type)
	assert.Equal(t, pair.KeyPairID, pair.Private.KeyPairID)

	record, err := os.ReadFile(pair.Public.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "3233 17", string(record))
	record, err = os.ReadFile(pair.Private.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "2753", string(record))

	repo.AssertNumberOfCalls(t, "Create", 2)
}

func TestKeyService_Generate_RepositoryFailureRemovesRecords(t *testing.T) {
	repo := new(MockKeyRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(k *keys.KeyMeta) bool { return k.Type == crypto.KeyTypePublic })).Return(nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(k *keys.KeyMeta) bool { return k.Type == crypto.KeyTypePrivate })).Return(errors.New("disk full"))
	repo.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)

	service, err := NewKeyService(toyKeyGenerator(), setupToyProcessor(t), repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	keyDir := t.TempDir()
	pair, err := service.Generate(context.Background(), keyDir)
	assert.Nil(t, pair)
	assert.EqualError(t, err, "disk full")

	entries, err := os.ReadDir(keyDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	repo.AssertNumberOfCalls(t, "DeleteByID", 1)
}

func TestKeyService_Generate_KeyGenerationFailure(t *testing.T) {
	generator := new(MockKeyGenerator)
	generator.On("GenerateKeys", mock.Anything).Return(nil, nil, crypto.ErrGenerationExhausted)
	repo := new(MockKeyRepository)

	service, err := NewKeyService(generator, setupToyProcessor(t), repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	keyDir := filepath.Join(t.TempDir(), "keys")
	_, err = service.Generate(context.Background(), keyDir)
	assert.ErrorIs(t, err, crypto.ErrGenerationExhausted)
	assert.NoDirExists(t, keyDir)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestKeyService_List_DefaultQuery(t *testing.T) {
	repo := new(MockKeyRepository)
	repo.On("List", mock.Anything, keys.NewKeyQuery()).Return([]*keys.KeyMeta{}, nil)

	service, err := NewKeyService(toyKeyGenerator(), setupToyProcessor(t), repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	listed, err := service.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, listed)
	repo.AssertExpectations(t)
}

func TestCipherService_RunPipeline_ToyKey(t *testing.T) {
	service, err := NewCipherService(toyKeyGenerator(), setupToyProcessor(t), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	workDir := filepath.Join(t.TempDir(), "run")
	decrypted, err := service.RunPipeline(context.Background(), workDir, []byte("HELLO"))
	require.NoError(t, err)
	assert.Equal(t, []byte("HELLO"), decrypted)

	record, err := os.ReadFile(filepath.Join(workDir, crypto.PublicKeyFileName))
	require.NoError(t, err)
	assert.Equal(t, "3233 17", string(record))

	record, err = os.ReadFile(filepath.Join(workDir, crypto.CiphertextFileName))
	require.NoError(t, err)
	assert.Equal(t, "3000 28 2726 2726 1307", string(record))
}

func TestCipherService_CancelledContext(t *testing.T) {
	service, err := NewCipherService(toyKeyGenerator(), setupToyProcessor(t), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = service.DecryptFile(ctx, "ciphertext", "out", "public_key", "private_key")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewServices_MissingDependencies(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	_, err := NewKeyService(nil, setupToyProcessor(t), new(MockKeyRepository), log)
	assert.Error(t, err)

	_, err = NewCipherService(toyKeyGenerator(), nil, log)
	assert.Error(t, err)
}
