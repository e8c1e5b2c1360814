//go:build unit
// +build unit

package cryptography

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"
)

// MockPrimalityTester is a mock implementation of crypto.PrimalityTester
type MockPrimalityTester struct {
	mock.Mock
}

func (m *MockPrimalityTester) IsProbablyPrime(n *big.Int) (bool, error) {
	args := m.Called(n)
	return args.Bool(0), args.Error(1)
}

// MockPrimeGenerator is a mock implementation of crypto.PrimeGenerator
type MockPrimeGenerator struct {
	mock.Mock
}

func (m *MockPrimeGenerator) GeneratePrime(ctx context.Context, digits int) (*big.Int, error) {
	args := m.Called(ctx, digits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
