package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a block containing a null byte, a ciphertext integer not below
	// the modulus or a malformed key or ciphertext record.
	ErrInvalidInput = errors.New("rsa: invalid input")

	// ErrGenerationExhausted indicates a prime or exponent resampling loop ran out of attempts.
	ErrGenerationExhausted = errors.New("rsa: generation exhausted")

	// ErrArithmeticPrecondition indicates a non-positive modulus, a negative operand or a value
	// without a multiplicative inverse.
	ErrArithmeticPrecondition = errors.New("rsa: arithmetic precondition violated")
)

// Error wraps one of the sentinel errors with the operation that failed
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf returns an *Error for op whose message is formatted from format and args.
// Wrap one of the sentinels with %w so errors.Is keeps working.
func Errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
