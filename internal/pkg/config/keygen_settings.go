package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/validators"
)

// Key generation defaults of the reference scheme
const (
	DefaultPrimeDigits         = 100
	DefaultFermatTrials        = 100
	DefaultMaxPrimeAttempts    = 10000
	DefaultPublicExponent      = 65537
	DefaultExponentMin         = 3
	DefaultExponentMax         = 100000
	DefaultMaxExponentAttempts = 1000
	DefaultBlockSize           = 82
)

// KeyGenSettings holds the parameters of prime generation, key generation and block chunking
type KeyGenSettings struct {
	PrimeDigits         int   `mapstructure:"prime_digits" validate:"required,min=2,max=1000"`
	FermatTrials        int   `mapstructure:"fermat_trials" validate:"required,min=1,max=1000"`
	MaxPrimeAttempts    int   `mapstructure:"max_prime_attempts" validate:"required,min=1"`
	DefaultExponent     int64 `mapstructure:"default_exponent" validate:"required,min=3"`
	ExponentMin         int64 `mapstructure:"exponent_min" validate:"required,min=3"`
	ExponentMax         int64 `mapstructure:"exponent_max" validate:"required,gtefield=ExponentMin"`
	MaxExponentAttempts int   `mapstructure:"max_exponent_attempts" validate:"required,min=1"`
	BlockSize           int   `mapstructure:"block_size" validate:"required,min=1,blockSizeFitsModulus"`
}

// DefaultKeyGenSettings returns the settings of the reference scheme:
// 100 digit primes, 100 Fermat trials, e = 65537 and 82 byte blocks.
func DefaultKeyGenSettings() *KeyGenSettings {
	return &KeyGenSettings{
		PrimeDigits:         DefaultPrimeDigits,
		FermatTrials:        DefaultFermatTrials,
		MaxPrimeAttempts:    DefaultMaxPrimeAttempts,
		DefaultExponent:     DefaultPublicExponent,
		ExponentMin:         DefaultExponentMin,
		ExponentMax:         DefaultExponentMax,
		MaxExponentAttempts: DefaultMaxExponentAttempts,
		BlockSize:           DefaultBlockSize,
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation(validators.BlockSizeFitsModulusTag, validators.BlockSizeFitsModulus); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for KeyGenSettings: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
