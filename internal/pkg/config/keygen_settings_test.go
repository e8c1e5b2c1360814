//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyGenSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(s *KeyGenSettings)
		expectedError string
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *KeyGenSettings) {},
		},
		{
			name:   "smaller primes with fitting block",
			mutate: func(s *KeyGenSettings) { s.PrimeDigits = 30; s.BlockSize = 20 },
		},
		{
			name:          "block does not fit modulus",
			mutate:        func(s *KeyGenSettings) { s.PrimeDigits = 30 },
			expectedError: "Field: BlockSize, Tag: blockSizeFitsModulus",
		},
		{
			name:          "zero fermat trials",
			mutate:        func(s *KeyGenSettings) { s.FermatTrials = 0 },
			expectedError: "Field: FermatTrials, Tag: required",
		},
		{
			name:          "exponent range inverted",
			mutate:        func(s *KeyGenSettings) { s.ExponentMin = 500; s.ExponentMax = 100 },
			expectedError: "Field: ExponentMax, Tag: gtefield",
		},
		{
			name:          "exponent minimum below three",
			mutate:        func(s *KeyGenSettings) { s.ExponentMin = 2 },
			expectedError: "Field: ExponentMin, Tag: min",
		},
		{
			name:          "no prime attempts",
			mutate:        func(s *KeyGenSettings) { s.MaxPrimeAttempts = 0 },
			expectedError: "Field: MaxPrimeAttempts, Tag: required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultKeyGenSettings()
			tt.mutate(settings)

			err := settings.Validate()
			if tt.expectedError == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
			}
		})
	}
}
