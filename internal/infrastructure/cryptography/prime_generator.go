package cryptography

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/logger"
)

// primeGenerator implements crypto.PrimeGenerator by rejection sampling
type primeGenerator struct {
	tester      crypto.PrimalityTester
	random      io.Reader
	maxAttempts int
	logger      logger.Logger
}

// NewPrimeGenerator creates a PrimeGenerator that tests at most maxAttempts candidates per prime.
func NewPrimeGenerator(tester crypto.PrimalityTester, random io.Reader, maxAttempts int, logger logger.Logger) (crypto.PrimeGenerator, error) {
	if tester == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if maxAttempts < 1 {
		return nil, fmt.Errorf("max prime attempts must be positive, got %d", maxAttempts)
	}

	return &primeGenerator{
		tester:      tester,
		random:      random,
		maxAttempts: maxAttempts,
		logger:      logger.With("component", "prime-generator"),
	}, nil
}

// GeneratePrime samples odd integers uniformly from [10^(digits-1), 10^digits - 1] until one
// passes the primality test. It fails with ErrGenerationExhausted after maxAttempts candidates.
func (g *primeGenerator) GeneratePrime(ctx context.Context, digits int) (*big.Int, error) {
	const op = "GeneratePrime"

	if digits < 1 {
		return nil, crypto.Errorf(op, "%w: digit count must be positive, got %d", crypto.ErrArithmeticPrecondition, digits)
	}

	low := pow10(digits - 1)
	high := pow10(digits)
	high.Sub(high, one)

	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("prime generation cancelled: %w", err)
		}

		candidate, err := randomInRange(g.random, low, high)
		if err != nil {
			return nil, fmt.Errorf("failed to sample prime candidate: %w", err)
		}
		// 10^digits - 1 is odd, so setting the low bit keeps the candidate in range.
		candidate.SetBit(candidate, 0, 1)

		isPrime, err := g.tester.IsProbablyPrime(candidate)
		if err != nil {
			return nil, fmt.Errorf("failed to test prime candidate: %w", err)
		}
		if isPrime {
			g.logger.Debug("Found ", digits, " digit probable prime after ", attempt, " candidates")
			return candidate, nil
		}
	}

	return nil, crypto.Errorf(op, "%w: no %d digit prime found in %d candidates",
		crypto.ErrGenerationExhausted, digits, g.maxAttempts)
}
