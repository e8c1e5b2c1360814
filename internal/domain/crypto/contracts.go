package crypto

import (
	"context"
	"math/big"
)

// PrimalityTester decides whether an integer is probably prime.
// A true result may be a false positive; a false result is certain.
type PrimalityTester interface {
	IsProbablyPrime(n *big.Int) (bool, error)
}

// PrimeGenerator produces random probable primes with the given number of decimal digits
type PrimeGenerator interface {
	GeneratePrime(ctx context.Context, digits int) (*big.Int, error)
}

// KeyGenerator produces textbook RSA key pairs.
// The primes and the totient never leave the implementation.
type KeyGenerator interface {
	GenerateKeys(ctx context.Context) (*PublicKey, *PrivateKey, error)
}

// RSAProcessor handles textbook RSA encryption and the plain text key and ciphertext records.
type RSAProcessor interface {
	// Encrypt splits plainText into blocks, encodes each block as an integer and raises it
	// to the public exponent modulo N. Blocks must not contain null bytes.
	Encrypt(plainText []byte, publicKey *PublicKey) (Ciphertext, error)

	// Decrypt raises every ciphertext integer to the private exponent modulo N,
	// decodes the blocks and concatenates them.
	Decrypt(ciphertext Ciphertext, publicKey *PublicKey, privateKey *PrivateKey) ([]byte, error)

	// SavePublicKeyToFile writes the "n e" record.
	SavePublicKeyToFile(publicKey *PublicKey, filename string) error

	// SavePrivateKeyToFile writes the "d" record.
	SavePrivateKeyToFile(privateKey *PrivateKey, filename string) error

	// ReadPublicKey reads and validates an "n e" record.
	ReadPublicKey(publicKeyPath string) (*PublicKey, error)

	// ReadPrivateKey reads and validates a "d" record.
	ReadPrivateKey(privateKeyPath string) (*PrivateKey, error)

	// SaveCiphertextToFile writes the space separated ciphertext record.
	SaveCiphertextToFile(ciphertext Ciphertext, filename string) error

	// ReadCiphertext reads a space separated ciphertext record.
	ReadCiphertext(ciphertextPath string) (Ciphertext, error)
}

// CipherService runs encryption and decryption over files holding plaintext, ciphertext and key records
type CipherService interface {
	// EncryptFile encrypts the file at inputPath with the public key record at publicKeyPath
	// and writes the ciphertext record to outputPath.
	EncryptFile(ctx context.Context, inputPath, outputPath, publicKeyPath string) error

	// DecryptFile decrypts the ciphertext record at inputPath and writes the plaintext to outputPath.
	DecryptFile(ctx context.Context, inputPath, outputPath, publicKeyPath, privateKeyPath string) error

	// RunPipeline generates a key pair and takes message through encryption and decryption,
	// leaving every intermediate record in workDir. It returns the decrypted message.
	RunPipeline(ctx context.Context, workDir string, message []byte) ([]byte, error)
}

// Record file names written by CipherService.RunPipeline
const (
	PublicKeyFileName        = "public_key"
	PrivateKeyFileName       = "private_key"
	CiphertextFileName       = "ciphertext"
	DecryptedMessageFileName = "decrypted_message"
)
