package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
)

// cipherService implements the crypto.CipherService interface
type cipherService struct {
	keyGenerator crypto.KeyGenerator
	rsaProcessor crypto.RSAProcessor
	logger       logger.Logger
}

// NewCipherService creates a new cipherService instance
func NewCipherService(keyGenerator crypto.KeyGenerator, rsaProcessor crypto.RSAProcessor, logger logger.Logger) (crypto.CipherService, error) {
	if keyGenerator == nil || rsaProcessor == nil {
		return nil, fmt.Errorf("key generator and RSA processor are required")
	}

	return &cipherService{
		keyGenerator: keyGenerator,
		rsaProcessor: rsaProcessor,
		logger:       logger.With("component", "cipher-service"),
	}, nil
}

// EncryptFile encrypts the file at inputPath and writes the ciphertext record to outputPath
func (s *cipherService) EncryptFile(ctx context.Context, inputPath, outputPath, publicKeyPath string) error {
	plainText, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return fmt.Errorf("failed to read plaintext file: %w", err)
	}

	return s.encrypt(ctx, plainText, outputPath, publicKeyPath)
}

// DecryptFile decrypts the ciphertext record at inputPath and writes the plaintext to outputPath
func (s *cipherService) DecryptFile(ctx context.Context, inputPath, outputPath, publicKeyPath, privateKeyPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	publicKey, err := s.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}
	privateKey, err := s.rsaProcessor.ReadPrivateKey(privateKeyPath)
	if err != nil {
		return err
	}
	ciphertext, err := s.rsaProcessor.ReadCiphertext(inputPath)
	if err != nil {
		return err
	}

	plainText, err := s.rsaProcessor.Decrypt(ciphertext, publicKey, privateKey)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputPath), plainText, 0600); err != nil {
		return fmt.Errorf("failed to write decrypted file: %w", err)
	}

	s.logger.Info("Decrypted ", inputPath, " into ", outputPath)
	return nil
}

// RunPipeline writes public_key and private_key, encrypts message into ciphertext and decrypts it into
// decrypted_message. Every step reads its inputs back from the records in workDir.
func (s *cipherService) RunPipeline(ctx context.Context, workDir string, message []byte) ([]byte, error) {
	if err := os.MkdirAll(workDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create work directory: %w", err)
	}

	publicKeyPath := filepath.Join(workDir, crypto.PublicKeyFileName)
	privateKeyPath := filepath.Join(workDir, crypto.PrivateKeyFileName)
	ciphertextPath := filepath.Join(workDir, crypto.CiphertextFileName)
	decryptedPath := filepath.Join(workDir, crypto.DecryptedMessageFileName)

	publicKey, privateKey, err := s.keyGenerator.GenerateKeys(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.rsaProcessor.SavePublicKeyToFile(publicKey, publicKeyPath); err != nil {
		return nil, err
	}
	if err := s.rsaProcessor.SavePrivateKeyToFile(privateKey, privateKeyPath); err != nil {
		return nil, err
	}

	if err := s.encrypt(ctx, message, ciphertextPath, publicKeyPath); err != nil {
		return nil, err
	}
	if err := s.DecryptFile(ctx, ciphertextPath, decryptedPath, publicKeyPath, privateKeyPath); err != nil {
		return nil, err
	}

	decrypted, err := os.ReadFile(filepath.Clean(decryptedPath))
	if err != nil {
		return nil, fmt.Errorf("failed to read decrypted message: %w", err)
	}

	s.logger.Info("Pipeline finished in ", workDir)
	return decrypted, nil
}

func (s *cipherService) encrypt(ctx context.Context, plainText []byte, outputPath, publicKeyPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	publicKey, err := s.rsaProcessor.ReadPublicKey(publicKeyPath)
	if err != nil {
		return err
	}

	ciphertext, err := s.rsaProcessor.Encrypt(plainText, publicKey)
	if err != nil {
		return err
	}

	if err := s.rsaProcessor.SaveCiphertextToFile(ciphertext, outputPath); err != nil {
		return err
	}

	s.logger.Info("Encrypted ", len(plainText), " bytes into ", outputPath)
	return nil
}
