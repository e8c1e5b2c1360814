package crypto

// AlgorithmRSA represents the textbook RSA encryption algorithm
const AlgorithmRSA = "RSA"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// ByteBase is the radix of the block encoding: one plaintext byte per base-256 digit
const ByteBase = 256
