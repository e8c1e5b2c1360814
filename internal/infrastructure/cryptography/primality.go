package cryptography

import (
	"fmt"
	"io"
	"math/big"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
)

// fermatTester implements crypto.PrimalityTester with repeated Fermat tests
type fermatTester struct {
	trials int
	random io.Reader
}

// NewFermatTester creates a PrimalityTester that draws up to trials witnesses from random.
//
// A composite n is reported as prime only if every witness is a Fermat liar for n. Carmichael
// numbers make that likely when their prime factors are large; the test accepts this risk.
func NewFermatTester(trials int, random io.Reader) (crypto.PrimalityTester, error) {
	if trials < 1 {
		return nil, fmt.Errorf("fermat trials must be positive, got %d", trials)
	}
	if random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	return &fermatTester{
		trials: trials,
		random: random,
	}, nil
}

// IsProbablyPrime checks a^(n-1) mod n == 1 for uniformly drawn witnesses a in [2, n-2] and
// stops at the first witness that proves n composite. Inputs up to 3 and even inputs are decided
// without drawing witnesses.
func (f *fermatTester) IsProbablyPrime(n *big.Int) (bool, error) {
	if n == nil {
		return false, crypto.Errorf("IsProbablyPrime", "%w: nil operand", crypto.ErrArithmeticPrecondition)
	}

	switch {
	case n.Cmp(two) < 0:
		return false, nil
	case n.Cmp(big.NewInt(3)) <= 0:
		return true, nil
	case n.Bit(0) == 0:
		return false, nil
	}

	nMinusOne := new(big.Int).Sub(n, one)
	nMinusTwo := new(big.Int).Sub(n, two)

	for i := 0; i < f.trials; i++ {
		witness, err := randomInRange(f.random, two, nMinusTwo)
		if err != nil {
			return false, fmt.Errorf("failed to draw fermat witness: %w", err)
		}

		residue, err := ModExp(witness, nMinusOne, n)
		if err != nil {
			return false, err
		}
		if residue.Cmp(one) != 0 {
			return false, nil
		}
	}

	return true, nil
}
