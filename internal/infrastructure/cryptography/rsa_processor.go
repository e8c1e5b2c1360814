package cryptography

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
)

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	blockSize int
	logger    logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor.
// blockSize is the maximum number of plaintext bytes encoded into one integer.
func NewRSAProcessor(blockSize int, logger logger.Logger) (crypto.RSAProcessor, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("block size must be positive, got %d", blockSize)
	}

	return &rsaProcessor{
		blockSize: blockSize,
		logger:    logger.With("component", "rsa-processor"),
	}, nil
}

// Encrypt splits plainText into ceil(len/blockSize) blocks and computes
// EncodeBlock(block)^e mod n for each of them. Empty input gives an empty ciphertext.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *crypto.PublicKey) (crypto.Ciphertext, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
	if err := publicKey.Validate(); err != nil {
		return nil, fmt.Errorf("invalid public key: %w", err)
	}

	blocks := splitBlocks(plainText, r.blockSize)
	ciphertext := make(crypto.Ciphertext, 0, len(blocks))

	for i, block := range blocks {
		encoded, err := EncodeBlock(block)
		if err != nil {
			return nil, fmt.Errorf("failed to encode block %d: %w", i, err)
		}
		if encoded.Cmp(publicKey.N) >= 0 {
			return nil, crypto.Errorf("Encrypt", "%w: block %d encodes to an integer not below the modulus", crypto.ErrInvalidInput, i)
		}

		encrypted, err := ModExp(encoded, publicKey.E, publicKey.N)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt block %d: %w", i, err)
		}
		ciphertext = append(ciphertext, encrypted)
	}

	r.logger.Info("RSA encryption succeeded for ", len(ciphertext), " blocks")
	return ciphertext, nil
}

// Decrypt computes c^d mod n for every ciphertext integer, decodes the results and concatenates
// them in order. Every integer must be below n.
func (r *rsaProcessor) Decrypt(ciphertext crypto.Ciphertext, publicKey *crypto.PublicKey, privateKey *crypto.PrivateKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}
	if privateKey == nil {
		return nil, errors.New("private key cannot be nil")
	}
	if err := privateKey.ValidateFor(publicKey); err != nil {
		return nil, fmt.Errorf("invalid key pair: %w", err)
	}

	var plainText []byte
	for i, encrypted := range ciphertext {
		if encrypted == nil || encrypted.Sign() < 0 || encrypted.Cmp(publicKey.N) >= 0 {
			return nil, crypto.Errorf("Decrypt", "%w: ciphertext block %d is not in [0, n)", crypto.ErrInvalidInput, i)
		}

		decrypted, err := ModExp(encrypted, privateKey.D, publicKey.N)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt block %d: %w", i, err)
		}

		block, err := DecodeBlock(decrypted)
		if err != nil {
			return nil, fmt.Errorf("failed to decode block %d: %w", i, err)
		}
		plainText = append(plainText, block...)
	}

	r.logger.Info("RSA decryption succeeded for ", len(ciphertext), " blocks")
	return plainText, nil
}

// SavePublicKeyToFile writes the "n e" record to filename.
func (r *rsaProcessor) SavePublicKeyToFile(publicKey *crypto.PublicKey, filename string) error {
	if publicKey == nil {
		return errors.New("public key cannot be nil")
	}

	if err := writeRecord(filename, FormatPublicKey(publicKey)); err != nil {
		return fmt.Errorf("failed to save public key: %w", err)
	}

	r.logger.Info("Saved RSA public key ", filename)
	return nil
}

// SavePrivateKeyToFile writes the "d" record to filename.
func (r *rsaProcessor) SavePrivateKeyToFile(privateKey *crypto.PrivateKey, filename string) error {
	if privateKey == nil {
		return errors.New("private key cannot be nil")
	}

	if err := writeRecord(filename, FormatPrivateKey(privateKey)); err != nil {
		return fmt.Errorf("failed to save private key: %w", err)
	}

	r.logger.Info("Saved RSA private key ", filename)
	return nil
}

// ReadPublicKey reads and validates the "n e" record at publicKeyPath.
func (r *rsaProcessor) ReadPublicKey(publicKeyPath string) (*crypto.PublicKey, error) {
	record, err := os.ReadFile(filepath.Clean(publicKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read public key file: %w", err)
	}

	publicKey, err := ParsePublicKey(string(record))
	if err != nil {
		return nil, fmt.Errorf("unable to parse public key file %s: %w", publicKeyPath, err)
	}

	return publicKey, nil
}

// ReadPrivateKey reads and validates the "d" record at privateKeyPath.
func (r *rsaProcessor) ReadPrivateKey(privateKeyPath string) (*crypto.PrivateKey, error) {
	record, err := os.ReadFile(filepath.Clean(privateKeyPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read private key file: %w", err)
	}

	privateKey, err := ParsePrivateKey(string(record))
	if err != nil {
		return nil, fmt.Errorf("unable to parse private key file %s: %w", privateKeyPath, err)
	}

	return privateKey, nil
}

// SaveCiphertextToFile writes the space separated ciphertext record to filename.
func (r *rsaProcessor) SaveCiphertextToFile(ciphertext crypto.Ciphertext, filename string) error {
	if err := writeRecord(filename, FormatCiphertext(ciphertext)); err != nil {
		return fmt.Errorf("failed to save ciphertext: %w", err)
	}

	r.logger.Info("Saved ciphertext ", filename)
	return nil
}

// ReadCiphertext reads the ciphertext record at ciphertextPath.
func (r *rsaProcessor) ReadCiphertext(ciphertextPath string) (crypto.Ciphertext, error) {
	record, err := os.ReadFile(filepath.Clean(ciphertextPath))
	if err != nil {
		return nil, fmt.Errorf("unable to read ciphertext file: %w", err)
	}

	ciphertext, err := ParseCiphertext(string(record))
	if err != nil {
		return nil, fmt.Errorf("unable to parse ciphertext file %s: %w", ciphertextPath, err)
	}

	return ciphertext, nil
}

func writeRecord(filename, record string) error {
	return os.WriteFile(filepath.Clean(filename), []byte(record), 0600)
}
