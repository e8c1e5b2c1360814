//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/keys"
	"github.com/stretchr/testify/mock"
)

// MockKeyGenerator is a mock implementation of crypto.KeyGenerator
type MockKeyGenerator struct {
	mock.Mock
}

func (m *MockKeyGenerator) GenerateKeys(ctx context.Context) (*crypto.PublicKey, *crypto.PrivateKey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*crypto.PublicKey), args.Get(1).(*crypto.PrivateKey), args.Error(2)
}

// MockKeyRepository is a mock implementation of keys.KeyRepository
type MockKeyRepository struct {
	mock.Mock
}

func (m *MockKeyRepository) Create(ctx context.Context, key *keys.KeyMeta) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockKeyRepository) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyRepository) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}
