package cryptography

import (
	"math/big"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ExtendedEuclid runs the extended Euclidean algorithm on a > 0 and b.
//
// It returns gcd(a, b) and the Bézout coefficient of b reduced into [0, a). When gcd is 1 the
// coefficient is the multiplicative inverse of b modulo a; otherwise it carries no meaning and
// no inverse exists.
func ExtendedEuclid(a, b *big.Int) (inverse *big.Int, gcd *big.Int, err error) {
	const op = "ExtendedEuclid"

	if a == nil || b == nil {
		return nil, nil, crypto.Errorf(op, "%w: nil operand", crypto.ErrArithmeticPrecondition)
	}
	if a.Sign() <= 0 {
		return nil, nil, crypto.Errorf(op, "%w: modulus must be positive", crypto.ErrArithmeticPrecondition)
	}

	// prev = xPrev*b (mod a) and curr = xCurr*b (mod a) hold throughout.
	prev, curr := new(big.Int).Mod(b, a), new(big.Int).Set(a)
	xPrev, xCurr := big.NewInt(1), big.NewInt(0)
	quotient := new(big.Int)

	for curr.Sign() != 0 {
		quotient.Quo(prev, curr)
		prev, curr = curr, new(big.Int).Sub(prev, new(big.Int).Mul(quotient, curr))
		xPrev, xCurr = xCurr, new(big.Int).Sub(xPrev, new(big.Int).Mul(quotient, xCurr))
	}

	return xPrev.Mod(xPrev, a), prev, nil
}

// ModInverse returns the multiplicative inverse of value modulo modulus, or an
// ErrArithmeticPrecondition error when the two are not coprime.
func ModInverse(value, modulus *big.Int) (*big.Int, error) {
	inverse, gcd, err := ExtendedEuclid(modulus, value)
	if err != nil {
		return nil, err
	}

	if gcd.Cmp(one) != 0 {
		return nil, crypto.Errorf("ModInverse", "%w: value is not coprime with the modulus", crypto.ErrArithmeticPrecondition)
	}

	return inverse, nil
}
