// Package storeid generates and validates the opaque record identifiers used
// by the product, order and cart stores. An identifier is 12 random bytes
// rendered as 24 lowercase hex characters, the same shape the legacy document
// store used, so ids exported from it keep working unchanged.
package storeid

import (
	"crypto/rand"
	"encoding/hex"
)

const encodedLen = 24

// New returns a fresh 24-character hex identifier.
func New() string {
	var b [12]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b[:])
}

// Valid reports whether s has the exact shape of a store identifier:
// 24 hex characters, case-insensitive.
func Valid(s string) bool {
	if len(s) != encodedLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// Normalize lowercases a valid identifier so it can be used as a lookup key.
// Hex digits compare case-insensitively in the store, so both sides of a
// lookup must agree on one casing.
func Normalize(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'F' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
