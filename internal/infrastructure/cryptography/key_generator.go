package cryptography

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/config"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// keyGenerator implements crypto.KeyGenerator
type keyGenerator struct {
	primes   crypto.PrimeGenerator
	settings config.KeyGenSettings
	random   io.Reader
	logger   logger.Logger
}

// NewKeyGenerator creates a KeyGenerator drawing its primes from primes.
// The settings are validated and copied.
func NewKeyGenerator(primes crypto.PrimeGenerator, settings *config.KeyGenSettings, random io.Reader, logger logger.Logger) (crypto.KeyGenerator, error) {
	if primes == nil {
		return nil, fmt.Errorf("prime generator cannot be nil")
	}
	if random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("key generation settings cannot be nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid key generation settings: %w", err)
	}

	return &keyGenerator{
		primes:   primes,
		settings: *settings,
		random:   random,
		logger:   logger.With("component", "key-generator"),
	}, nil
}

// GenerateKeys draws two distinct primes p and q and derives n = p*q, a public exponent e coprime
// with (p-1)*(q-1) and its inverse d. Only n, e and d are returned.
func (k *keyGenerator) GenerateKeys(ctx context.Context) (*crypto.PublicKey, *crypto.PrivateKey, error) {
	p, q, err := k.drawPrimes(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	publicKey, privateKey, err := k.deriveKeys(p, q)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}

	k.logger.Info("Generated RSA key pair with ", len(publicKey.N.String()), " digit modulus")
	return publicKey, privateKey, nil
}

// drawPrimes generates p and q concurrently, then resamples q while it equals p.
func (k *keyGenerator) drawPrimes(ctx context.Context) (*big.Int, *big.Int, error) {
	var p, q *big.Int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		p, err = k.primes.GeneratePrime(gctx, k.settings.PrimeDigits)
		return err
	})
	g.Go(func() error {
		var err error
		q, err = k.primes.GeneratePrime(gctx, k.settings.PrimeDigits)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for attempt := 0; p.Cmp(q) == 0; attempt++ {
		if attempt >= k.settings.MaxPrimeAttempts {
			return nil, nil, crypto.Errorf("GenerateKeys", "%w: no prime distinct from p in %d draws",
				crypto.ErrGenerationExhausted, k.settings.MaxPrimeAttempts)
		}

		k.logger.Warn("Drew q equal to p, resampling q")

		var err error
		q, err = k.primes.GeneratePrime(ctx, k.settings.PrimeDigits)
		if err != nil {
			return nil, nil, err
		}
	}

	return p, q, nil
}

// deriveKeys computes n, e and d for the distinct primes p and q.
func (k *keyGenerator) deriveKeys(p, q *big.Int) (*crypto.PublicKey, *crypto.PrivateKey, error) {
	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

	e, err := k.choosePublicExponent(phi)
	if err != nil {
		return nil, nil, err
	}

	d, err := ModInverse(e, phi)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to compute private exponent: %w", err)
	}

	return &crypto.PublicKey{N: n, E: e}, &crypto.PrivateKey{D: d}, nil
}

// choosePublicExponent starts from the default exponent and resamples uniformly from the configured
// range until it finds e with 1 < e < phi and gcd(e, phi) = 1.
func (k *keyGenerator) choosePublicExponent(phi *big.Int) (*big.Int, error) {
	low := big.NewInt(k.settings.ExponentMin)
	high := big.NewInt(k.settings.ExponentMax)

	e := big.NewInt(k.settings.DefaultExponent)
	for attempt := 0; ; attempt++ {
		usable, err := isUsableExponent(e, phi)
		if err != nil {
			return nil, err
		}
		if usable {
			return e, nil
		}

		if attempt >= k.settings.MaxExponentAttempts {
			return nil, crypto.Errorf("GenerateKeys", "%w: no public exponent coprime with the totient in %d draws",
				crypto.ErrGenerationExhausted, k.settings.MaxExponentAttempts)
		}

		e, err = randomInRange(k.random, low, high)
		if err != nil {
			return nil, fmt.Errorf("failed to sample public exponent: %w", err)
		}
	}
}

func isUsableExponent(e, phi *big.Int) (bool, error) {
	if e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return false, nil
	}

	_, gcd, err := ExtendedEuclid(phi, e)
	if err != nil {
		return false, err
	}

	return gcd.Cmp(one) == 0, nil
}
