//go:build unit
// +build unit

package cryptography

import (
	"context"
	"crypto/rand"
	"errors"
	"math/big"
	"testing"

	"github.com/nolanchancellor/RSAImplementation/internal/domain/crypto"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/config"
	"github.com/nolanchancellor/RSAImplementation/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// toySettings fit the textbook primes 61 and 53.
func toySettings() *config.KeyGenSettings {
	return &config.KeyGenSettings{
		PrimeDigits:         3,
		FermatTrials:        10,
		MaxPrimeAttempts:    5,
		DefaultExponent:     17,
		ExponentMin:         3,
		ExponentMax:         3000,
		MaxExponentAttempts: 50,
		BlockSize:           1,
	}
}

func setupKeyGenerator(t *testing.T) *keyGenerator {
	t.Helper()

	generator, err := NewKeyGeneratorFromSettings(config.DefaultKeyGenSettings(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return generator.(*keyGenerator)
}

func setupMockedKeyGenerator(t *testing.T, primes crypto.PrimeGenerator, settings *config.KeyGenSettings) crypto.KeyGenerator {
	t.Helper()

	generator, err := NewKeyGenerator(primes, settings, rand.Reader, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return generator
}

func TestKeyGenerator_GenerateKeys(t *testing.T) {
	generator := setupKeyGenerator(t)

	publicKey, privateKey, err := generator.GenerateKeys(context.Background())
	require.NoError(t, err)

	require.NoError(t, privateKey.ValidateFor(publicKey))
	assert.Equal(t, int64(config.DefaultPublicExponent), publicKey.E.Int64())
	assert.GreaterOrEqual(t, len(publicKey.N.String()), 199)

	message := big.NewInt(424242)
	encrypted, err := ModExp(message, publicKey.E, publicKey.N)
	require.NoError(t, err)
	decrypted, err := ModExp(encrypted, privateKey.D, publicKey.N)
	require.NoError(t, err)
	assert.Equal(t, 0, message.Cmp(decrypted))
}

func TestKeyGenerator_FiftyKeyPairsAreValid(t *testing.T) {
	generator := setupKeyGenerator(t)
	tester := setupFermatTester(t, 100)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		p, q, err := generator.drawPrimes(ctx)
		require.NoError(t, err)
		require.NotEqual(t, 0, p.Cmp(q))

		publicKey, privateKey, err := generator.deriveKeys(p, q)
		require.NoError(t, err)

		assert.Equal(t, 0, publicKey.N.Cmp(new(big.Int).Mul(p, q)))

		isPrime, err := tester.IsProbablyPrime(publicKey.N)
		require.NoError(t, err)
		assert.False(t, isPrime, "modulus must be composite")

		phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
		assert.Equal(t, 0, new(big.Int).GCD(nil, nil, publicKey.E, phi).Cmp(one))
		assert.Less(t, publicKey.E.Cmp(phi), 0)

		product := new(big.Int).Mul(publicKey.E, privateKey.D)
		assert.Equal(t, 0, product.Mod(product, phi).Cmp(one), "e*d mod phi must be 1")
	}
}

func TestKeyGenerator_TextbookPrimes(t *testing.T) {
	primes := new(MockPrimeGenerator)
	primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(61), nil).Once()
	primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(53), nil).Once()

	generator := setupMockedKeyGenerator(t, primes, toySettings())

	publicKey, privateKey, err := generator.GenerateKeys(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3233), publicKey.N.Int64())
	assert.Equal(t, int64(17), publicKey.E.Int64())
	assert.Equal(t, int64(2753), privateKey.D.Int64())
	primes.AssertExpectations(t)
}

func TestKeyGenerator_DefaultExponentAboveTotient(t *testing.T) {
	settings := toySettings()
	settings.DefaultExponent = config.DefaultPublicExponent

	primes := new(MockPrimeGenerator)
	generator := setupMockedKeyGenerator(t, primes, settings)
	phi := big.NewInt(60 * 52)

	for i := 0; i < 20; i++ {
		primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(61), nil).Once()
		primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(53), nil).Once()

		publicKey, privateKey, err := generator.GenerateKeys(context.Background())
		require.NoError(t, err)

		assert.Less(t, publicKey.E.Cmp(phi), 0)
		assert.GreaterOrEqual(t, publicKey.E.Int64(), settings.ExponentMin)
		product := new(big.Int).Mul(publicKey.E, privateKey.D)
		assert.Equal(t, int64(1), product.Mod(product, phi).Int64())
	}
}

func TestKeyGenerator_ExponentExhausted(t *testing.T) {
	settings := toySettings()
	settings.DefaultExponent = 6
	settings.ExponentMin = 10
	settings.ExponentMax = 10

	primes := new(MockPrimeGenerator)
	primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(7), nil).Once()
	primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(11), nil).Once()

	generator := setupMockedKeyGenerator(t, primes, settings)

	publicKey, privateKey, err := generator.GenerateKeys(context.Background())
	assert.Nil(t, publicKey)
	assert.Nil(t, privateKey)
	assert.ErrorIs(t, err, crypto.ErrGenerationExhausted)
}

func TestKeyGenerator_EqualPrimesExhausted(t *testing.T) {
	settings := toySettings()

	primes := new(MockPrimeGenerator)
	primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(61), nil)

	generator := setupMockedKeyGenerator(t, primes, settings)

	_, _, err := generator.GenerateKeys(context.Background())
	assert.ErrorIs(t, err, crypto.ErrGenerationExhausted)
	primes.AssertNumberOfCalls(t, "GeneratePrime", 2+settings.MaxPrimeAttempts)
}

func TestKeyGenerator_EqualPrimesResampled(t *testing.T) {
	primes := new(MockPrimeGenerator)
	primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(61), nil).Twice()
	primes.On("GeneratePrime", mock.Anything, 3).Return(big.NewInt(53), nil).Once()

	generator := setupMockedKeyGenerator(t, primes, toySettings())

	publicKey, privateKey, err := generator.GenerateKeys(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3233), publicKey.N.Int64())
	assert.Equal(t, int64(2753), privateKey.D.Int64())
	primes.AssertNumberOfCalls(t, "GeneratePrime", 3)
}

func TestKeyGenerator_PrimeGenerationError(t *testing.T) {
	primes := new(MockPrimeGenerator)
	primes.On("GeneratePrime", mock.Anything, 3).Return(nil, crypto.Errorf("GeneratePrime", "%w: test", crypto.ErrGenerationExhausted))

	generator := setupMockedKeyGenerator(t, primes, toySettings())

	_, _, err := generator.GenerateKeys(context.Background())
	assert.ErrorIs(t, err, crypto.ErrGenerationExhausted)

	var rsaErr *crypto.Error
	assert.True(t, errors.As(err, &rsaErr))
	assert.Equal(t, "GeneratePrime", rsaErr.Op)
}

func TestNewKeyGeneratorFromSettings_Invalid(t *testing.T) {
	log := testutil.SetupTestLogger(t)

	_, err := NewKeyGeneratorFromSettings(nil, log)
	assert.Error(t, err)

	settings := config.DefaultKeyGenSettings()
	settings.FermatTrials = 0
	_, err = NewKeyGeneratorFromSettings(settings, log)
	assert.Error(t, err)
}

func TestNewKeyGenerator_InvalidArguments(t *testing.T) {
	log := testutil.SetupTestLogger(t)
	primes := new(MockPrimeGenerator)

	_, err := NewKeyGenerator(nil, toySettings(), rand.Reader, log)
	assert.Error(t, err)

	_, err = NewKeyGenerator(primes, toySettings(), nil, log)
	assert.Error(t, err)

	_, err = NewKeyGenerator(primes, nil, rand.Reader, log)
	assert.Error(t, err)

	settings := toySettings()
	settings.BlockSize = 82
	_, err = NewKeyGenerator(primes, settings, rand.Reader, log)
	assert.Error(t, err)
}

func TestIsUsableExponent(t *testing.T) {
	phi := big.NewInt(3120)

	tests := []struct {
		e    int64
		want bool
	}{
		{1, false},
		{2, false},
		{17, true},
		{3119, true},
		{3120, false},
		{65537, false},
		{65, false},
	}

	for _, tt := range tests {
		usable, err := isUsableExponent(big.NewInt(tt.e), phi)
		require.NoError(t, err)
		assert.Equal(t, tt.want, usable, "e = %d", tt.e)
	}
}
