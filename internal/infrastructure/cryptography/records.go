package cryptography

import (
	"math/big"
	"strings"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
)

// FormatPublicKey renders the public key record "n e".
func FormatPublicKey(publicKey *crypto.PublicKey) string {
	return publicKey.N.String() + " " + publicKey.E.String()
}

// ParsePublicKey parses and validates a public key record "n e".
func ParsePublicKey(record string) (*crypto.PublicKey, error) {
	const op = "ParsePublicKey"

	values, err := parseDecimals(op, record)
	if err != nil {
		return nil, err
	}
	if len(values) != 2 {
		return nil, crypto.Errorf(op, "%w: expected 2 integers, got %d", crypto.ErrInvalidInput, len(values))
	}

	publicKey := &crypto.PublicKey{N: values[0], E: values[1]}
	if err := publicKey.Validate(); err != nil {
		return nil, err
	}

	return publicKey, nil
}

// FormatPrivateKey renders the private key record "d".
func FormatPrivateKey(privateKey *crypto.PrivateKey) string {
	return privateKey.D.String()
}

// ParsePrivateKey parses and validates a private key record "d".
func ParsePrivateKey(record string) (*crypto.PrivateKey, error) {
	const op = "ParsePrivateKey"

	values, err := parseDecimals(op, record)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, crypto.Errorf(op, "%w: expected 1 integer, got %d", crypto.ErrInvalidInput, len(values))
	}

	privateKey := &crypto.PrivateKey{D: values[0]}
	if err := privateKey.Validate(); err != nil {
		return nil, err
	}

	return privateKey, nil
}

// FormatCiphertext renders the ciphertext record, one decimal integer per block separated by spaces.
func FormatCiphertext(ciphertext crypto.Ciphertext) string {
	return ciphertext.String()
}

// ParseCiphertext parses a ciphertext record. An empty record is an empty ciphertext.
func ParseCiphertext(record string) (crypto.Ciphertext, error) {
	values, err := parseDecimals("ParseCiphertext", record)
	if err != nil {
		return nil, err
	}
	return crypto.Ciphertext(values), nil
}

// parseDecimals splits record on whitespace and parses every token as an unsigned decimal integer.
func parseDecimals(op, record string) ([]*big.Int, error) {
	tokens := strings.Fields(record)
	values := make([]*big.Int, 0, len(tokens))

	for i, token := range tokens {
		if strings.TrimLeft(token, "0123456789") != "" {
			return nil, crypto.Errorf(op, "%w: token %d is not an unsigned decimal integer", crypto.ErrInvalidInput, i)
		}

		value, ok := new(big.Int).SetString(token, 10)
		if !ok {
			return nil, crypto.Errorf(op, "%w: token %d is not an unsigned decimal integer", crypto.ErrInvalidInput, i)
		}
		values = append(values, value)
	}

	return values, nil
}
