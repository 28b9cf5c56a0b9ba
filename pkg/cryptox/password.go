package cryptox

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Configuration for PBKDF2 password derivation.
const (
	DefaultIterations = 10_000 // PBKDF2 rounds
	DefaultKeyLength  = 64     // Length of the derived key in bytes
	DefaultSaltSize   = 64     // Length of a password salt in bytes (128 hex chars)
)

// Hasher derives password hashes with PBKDF2-HMAC-SHA512. The zero value is
// not usable, start from DefaultHasher.
type Hasher struct {
	Iterations int
	KeyLength  int
}

// DefaultHasher matches the parameters every stored hash was created with.
var DefaultHasher = Hasher{
	Iterations: DefaultIterations,
	KeyLength:  DefaultKeyLength,
}

// GenerateSalt returns size cryptographically secure random bytes, hex encoded.
func GenerateSalt(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("salt size must be positive, got %d", size)
	}

	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Derive returns the hex encoded PBKDF2 key for password and salt. The salt
// is used as the bytes of its hex string, not the decoded bytes, so hashes
// created by the previous service stay verifiable.
func (h Hasher) Derive(password, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), h.Iterations, h.KeyLength, sha512.New)
	return hex.EncodeToString(key)
}

// Verify re-derives the hash for password and compares it against expected in
// constant time.
func (h Hasher) Verify(password, salt, expected string) bool {
	computed := h.Derive(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}
