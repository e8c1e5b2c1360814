package validators

import (
	"math/big"

	"github.com/go-playground/validator/v10"
)

// BlockSizeFitsModulusTag is the struct tag name BlockSizeFitsModulus is registered under.
const BlockSizeFitsModulusTag = "blockSizeFitsModulus"

// BlockSizeFitsModulus validates that a block size (in bytes) always encodes to an integer
// below the smallest modulus a key built from two primes of the sibling field PrimeDigits can have.
//
// The smallest such modulus is 10^(PrimeDigits-1) squared, and the largest encoded block is
// strictly below 256^BlockSize.
func BlockSizeFitsModulus(fl validator.FieldLevel) bool {
	digitsField := fl.Parent().FieldByName("PrimeDigits")
	if !digitsField.IsValid() || !digitsField.CanInt() {
		return false
	}

	digits := digitsField.Int()
	blockSize := fl.Field().Int()
	if digits < 2 || blockSize < 1 {
		return false
	}

	minModulus := new(big.Int).Exp(big.NewInt(10), big.NewInt(2*(digits-1)), nil)
	blockBound := new(big.Int).Lsh(big.NewInt(1), uint(8*blockSize))

	return blockBound.Cmp(minModulus) <= 0
}
