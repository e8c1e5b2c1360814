package cryptography

import (
	"math/big"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
)

var byteBase = big.NewInt(crypto.ByteBase)

// EncodeBlock maps a block to the integer sum of block[i] * 256^i, so the first byte is the least
// significant base-256 digit.
//
// Null bytes are rejected with ErrInvalidInput: DecodeBlock reads a zero digit as the end of the
// block and could not give them back.
func EncodeBlock(block []byte) (*big.Int, error) {
	value := new(big.Int)
	digit := new(big.Int)

	for i := len(block) - 1; i >= 0; i-- {
		if block[i] == 0 {
			return nil, crypto.Errorf("EncodeBlock", "%w: null byte at offset %d", crypto.ErrInvalidInput, i)
		}
		value.Mul(value, byteBase)
		value.Add(value, digit.SetUint64(uint64(block[i])))
	}

	return value, nil
}

// DecodeBlock is the inverse of EncodeBlock. It extracts base-256 digits starting with the least
// significant one and stops at the first zero digit, which is not part of the result.
// DecodeBlock(0) is empty.
func DecodeBlock(value *big.Int) ([]byte, error) {
	if value == nil || value.Sign() < 0 {
		return nil, crypto.Errorf("DecodeBlock", "%w: block value must be a non-negative integer", crypto.ErrInvalidInput)
	}

	rest := new(big.Int).Set(value)
	digit := new(big.Int)
	var block []byte

	for {
		rest.QuoRem(rest, byteBase, digit)
		if digit.Sign() == 0 {
			return block, nil
		}
		block = append(block, byte(digit.Uint64()))
	}
}

// splitBlocks cuts data into consecutive blocks of at most size bytes.
// The blocks share data's backing array.
func splitBlocks(data []byte, size int) [][]byte {
	blocks := make([][]byte, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		blocks = append(blocks, data[start:end])
	}
	return blocks
}
