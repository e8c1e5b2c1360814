package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/domain/keys"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
)

// keyService implements the keys.KeyService interface
type keyService struct {
	keyGenerator crypto.KeyGenerator
	rsaProcessor crypto.RSAProcessor
	keyRepo      keys.KeyRepository
	logger       logger.Logger
}

// NewKeyService creates a new keyService instance
func NewKeyService(
	keyGenerator crypto.KeyGenerator,
	rsaProcessor crypto.RSAProcessor,
	keyRepo keys.KeyRepository,
	logger logger.Logger,
) (keys.KeyService, error) {
	if keyGenerator == nil || rsaProcessor == nil || keyRepo == nil {
		return nil, fmt.Errorf("key generator, RSA processor and key repository are required")
	}

	return &keyService{
		keyGenerator: keyGenerator,
		rsaProcessor: rsaProcessor,
		keyRepo:      keyRepo,
		logger:       logger.With("component", "key-service"),
	}, nil
}

// Generate writes <keyPairID>-public-key and <keyPairID>-private-key into keyDir and registers both records.
// Records already written are removed again when a later step fails.
func (s *keyService) Generate(ctx context.Context, keyDir string) (*keys.GeneratedKeyPair, error) {
	publicKey, privateKey, err := s.keyGenerator.GenerateKeys(ctx)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(keyDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create key directory: %w", err)
	}

	keyPairID := uuid.New().String()
	publicKeyPath := filepath.Join(keyDir, keyPairID+"-public-key")
	privateKeyPath := filepath.Join(keyDir, keyPairID+"-private-key")

	var written []string
	cleanup := func() {
		for _, path := range written {
			if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
				s.logger.Warn("Failed to remove key record ", path, ": ", err)
			}
		}
	}

	if err := s.rsaProcessor.SavePublicKeyToFile(publicKey, publicKeyPath); err != nil {
		return nil, err
	}
	written = append(written, publicKeyPath)

	if err := s.rsaProcessor.SavePrivateKeyToFile(privateKey, privateKeyPath); err != nil {
		cleanup()
		return nil, err
	}
	written = append(written, privateKeyPath)

	now := time.Now()
	modulusDigits := len(publicKey.N.String())
	pair := &keys.GeneratedKeyPair{
		KeyPairID: keyPairID,
		Public: &keys.KeyMeta{
			ID:              uuid.New().String(),
			KeyPairID:       keyPairID,
			Type:            crypto.KeyTypePublic,
			ModulusDigits:   modulusDigits,
			Exponent:        publicKey.E.String(),
			FilePath:        publicKeyPath,
			DateTimeCreated: now,
		},
		Private: &keys.KeyMeta{
			ID:              uuid.New().String(),
			KeyPairID:       keyPairID,
			Type:            crypto.KeyTypePrivate,
			ModulusDigits:   modulusDigits,
			FilePath:        privateKeyPath,
			DateTimeCreated: now,
		},
	}

	if err := s.keyRepo.Create(ctx, pair.Public); err != nil {
		cleanup()
		return nil, err
	}
	if err := s.keyRepo.Create(ctx, pair.Private); err != nil {
		if delErr := s.keyRepo.DeleteByID(ctx, pair.Public.ID); delErr != nil {
			s.logger.Warn("Failed to remove metadata of key ", pair.Public.ID, ": ", delErr)
		}
		cleanup()
		return nil, err
	}

	s.logger.Info("Generated key pair ", keyPairID, " in ", keyDir)
	return pair, nil
}

// List returns the registry entries matching query
func (s *keyService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	if query == nil {
		query = keys.NewKeyQuery()
	}
	return s.keyRepo.List(ctx, query)
}

// Delete removes both records of keyPairID from disk and from the registry
func (s *keyService) Delete(ctx context.Context, keyPairID string) error {
	metas, err := s.keyRepo.List(ctx, &keys.KeyQuery{KeyPairID: keyPairID})
	if err != nil {
		return err
	}
	if len(metas) == 0 {
		return fmt.Errorf("key pair with ID %s not found", keyPairID)
	}

	for _, meta := range metas {
		if err := os.Remove(meta.FilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove key record %s: %w", meta.FilePath, err)
		}
		if err := s.keyRepo.DeleteByID(ctx, meta.ID); err != nil {
			return err
		}
	}

	s.logger.Info("Deleted key pair ", keyPairID)
	return nil
}
