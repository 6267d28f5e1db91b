package id

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// NewID returns a fresh 26-character identifier. The underlying bytes are
// a UUIDv4, so ids stay collision-resistant across processes.
func NewID() (string, error) {
	var uuid [16]byte
	if _, err := rand.Read(uuid[:]); err != nil {
		return "", fmt.Errorf("read id entropy: %w", err)
	}

	// Stamp the RFC 4122 version and variant bits.
	uuid[6] = (uuid[6] & 0x0f) | 0x40
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return strings.ToLower(encoding.EncodeToString(uuid[:])), nil
}

// MustNewID panics when entropy is unavailable. Use it only where an id
// failure leaves nothing to recover.
func MustNewID() string {
	s, err := NewID()
	if err != nil {
		panic(err)
	}
	return s
}
