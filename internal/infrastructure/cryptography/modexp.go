package cryptography

import (
	"math/big"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
)

// ModExp computes base^exponent mod modulus by right-to-left square-and-multiply:
// for every bit of exponent, least significant first, the running result is multiplied by the
// current base when the bit is set and the base is squared. Both products are reduced modulo
// modulus, so intermediate values never exceed modulus squared.
//
// The arguments are not modified. ModExp(b, 0, m) is 1 mod m.
func ModExp(base, exponent, modulus *big.Int) (*big.Int, error) {
	const op = "ModExp"

	if base == nil || exponent == nil || modulus == nil {
		return nil, crypto.Errorf(op, "%w: nil operand", crypto.ErrArithmeticPrecondition)
	}
	if modulus.Sign() <= 0 {
		return nil, crypto.Errorf(op, "%w: modulus must be positive", crypto.ErrArithmeticPrecondition)
	}
	if base.Sign() < 0 || exponent.Sign() < 0 {
		return nil, crypto.Errorf(op, "%w: base and exponent must be non-negative", crypto.ErrArithmeticPrecondition)
	}

	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)
	result := new(big.Int).Mod(one, modulus)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}

	return result, nil
}
