package cryptography

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// randomInRange returns a uniformly distributed integer in [low, high].
func randomInRange(random io.Reader, low, high *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(high, low)
	span.Add(span, one)
	if span.Sign() <= 0 {
		return nil, fmt.Errorf("empty range [%s, %s]", low, high)
	}

	n, err := rand.Int(random, span)
	if err != nil {
		return nil, fmt.Errorf("failed to read random integer: %w", err)
	}

	return n.Add(n, low), nil
}

// pow10 returns 10^exponent.
func pow10(exponent int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exponent)), nil)
}
