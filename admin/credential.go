// Package admin implements the single privileged principal that approves
// distributions, manages manager slots, mints shares, and adjusts the
// platform fee. The principal authenticates with a passphrase checked
// against an Argon2id-derived credential; the derived key, never the
// passphrase, is what gets stored in configuration.
package admin

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// Argon2id parameters for credential derivation.
	Argon2Time        = 3
	Argon2Memory      = 64 * 1024 // 64 MB
	Argon2Parallelism = 4
	Argon2KeyLen      = 32

	// SaltLen is the length of the random salt in bytes.
	SaltLen = 16
)

// Credential is the stored form of the administrative passphrase:
// a random salt plus the Argon2id key derived from it.
type Credential struct {
	salt [SaltLen]byte
	key  [Argon2KeyLen]byte
}

// NewCredential derives a credential from a passphrase with a fresh salt.
func NewCredential(passphrase string) (*Credential, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	c := &Credential{}
	if _, err := rand.Read(c.salt[:]); err != nil {
		return nil, fmt.Errorf("admin: generate salt: %w", err)
	}
	derived := argon2.IDKey([]byte(passphrase), c.salt[:], Argon2Time, Argon2Memory, Argon2Parallelism, Argon2KeyLen)
	copy(c.key[:], derived)
	return c, nil
}

// ParseCredential decodes the hex form salt(16) ‖ key(32) produced by Encode.
func ParseCredential(encoded string) (*Credential, error) {
	b, err := hex.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}
	if len(b) != SaltLen+Argon2KeyLen {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidCredential, SaltLen+Argon2KeyLen, len(b))
	}
	c := &Credential{}
	copy(c.salt[:], b[:SaltLen])
	copy(c.key[:], b[SaltLen:])
	return c, nil
}

// Encode returns the hex form salt(16) ‖ key(32) for storage in config.
func (c *Credential) Encode() string {
	out := make([]byte, 0, SaltLen+Argon2KeyLen)
	out = append(out, c.salt[:]...)
	out = append(out, c.key[:]...)
	return hex.EncodeToString(out)
}

// Verify re-derives the key from the passphrase and compares in constant
// time.
func (c *Credential) Verify(passphrase string) bool {
	if passphrase == "" {
		return false
	}
	derived := argon2.IDKey([]byte(passphrase), c.salt[:], Argon2Time, Argon2Memory, Argon2Parallelism, Argon2KeyLen)
	return subtle.ConstantTimeCompare(derived, c.key[:]) == 1
}
