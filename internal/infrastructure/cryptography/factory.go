package cryptography

import (
	"crypto/rand"
	"fmt"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/config"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
)

// NewKeyGeneratorFromSettings wires a Fermat tester, a prime generator and a key generator
// reading from crypto/rand.
func NewKeyGeneratorFromSettings(settings *config.KeyGenSettings, logger logger.Logger) (crypto.KeyGenerator, error) {
	if settings == nil {
		return nil, fmt.Errorf("key generation settings cannot be nil")
	}

	tester, err := NewFermatTester(settings.FermatTrials, rand.Reader)
	if err != nil {
		return nil, err
	}

	primes, err := NewPrimeGenerator(tester, rand.Reader, settings.MaxPrimeAttempts, logger)
	if err != nil {
		return nil, err
	}

	return NewKeyGenerator(primes, settings, rand.Reader, logger)
}
