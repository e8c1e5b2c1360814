package crypto

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PublicKey is the public half of a textbook RSA key pair: modulus N = p*q and exponent E
type PublicKey struct {
	N *big.Int `validate:"required"`
	E *big.Int `validate:"required"`
}

// PrivateKey holds the private exponent D. It is only meaningful together with the modulus
// of the matching PublicKey.
type PrivateKey struct {
	D *big.Int `validate:"required"`
}

// Ciphertext is one integer per plaintext block, in block order
type Ciphertext []*big.Int

// String renders the ciphertext as space separated decimal integers
func (c Ciphertext) String() string {
	parts := make([]string, len(c))
	for i, value := range c {
		parts[i] = value.String()
	}
	return strings.Join(parts, " ")
}

// Validate checks the invariants of a public key that hold without knowing p and q:
// N > 1 and 1 < E < N.
func (k *PublicKey) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}

	if k.N.Cmp(big.NewInt(1)) <= 0 {
		return Errorf("PublicKey.Validate", "%w: modulus must be greater than 1", ErrInvalidInput)
	}
	if k.E.Cmp(big.NewInt(1)) <= 0 || k.E.Cmp(k.N) >= 0 {
		return Errorf("PublicKey.Validate", "%w: exponent must satisfy 1 < e < n", ErrInvalidInput)
	}

	return nil
}

// Validate checks that D is positive
func (k *PrivateKey) Validate() error {
	if err := validateStruct(k); err != nil {
		return err
	}

	if k.D.Sign() <= 0 {
		return Errorf("PrivateKey.Validate", "%w: private exponent must be positive", ErrInvalidInput)
	}

	return nil
}

// ValidateFor additionally checks that D is below the modulus of pub
func (k *PrivateKey) ValidateFor(pub *PublicKey) error {
	if err := k.Validate(); err != nil {
		return err
	}
	if err := pub.Validate(); err != nil {
		return err
	}

	if k.D.Cmp(pub.N) >= 0 {
		return Errorf("PrivateKey.ValidateFor", "%w: private exponent must be below the modulus", ErrInvalidInput)
	}

	return nil
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
