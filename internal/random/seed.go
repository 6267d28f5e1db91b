// Package random supplies entropy-backed seeds for deterministic RNGs.
//
// The engine keeps all nondeterminism behind injected sources; hosts seed
// those sources from here unless a test pins its own values.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed draws a 64-bit seed from the operating system entropy pool.
func NewSeed() (int64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("read seed entropy: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}
