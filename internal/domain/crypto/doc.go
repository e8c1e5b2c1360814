// Package crypto defines the key material, ciphertext and error types of textbook RSA together with
// the contracts of the components that generate keys and encrypt or decrypt with them.
//
// Keys are plain arbitrary-precision integers with no padding scheme attached. They are immutable
// once generated and may be shared between goroutines without synchronization.
package crypto
