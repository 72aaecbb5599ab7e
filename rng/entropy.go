// SPDX-License-Identifier: MIT
// Package: motif/rng
//
// entropy.go - seed minting from an injectable entropy source.

package rng

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
)

// SeedLength is the number of base-36 characters in a minted seed.
const SeedLength = 8

// seedSpace is 36^SeedLength; minted seeds are reduced into it.
const seedSpace uint64 = 2821109907456

// Entropy supplies raw randomness for minting seeds. Tests inject a fixed
// implementation; production uses SystemEntropy.
type Entropy interface {
	Uint64() uint64
}

// EntropyFunc adapts a plain function to Entropy.
type EntropyFunc func() uint64

// Uint64 calls f.
func (f EntropyFunc) Uint64() uint64 { return f() }

// SystemEntropy reads from crypto/rand.
type SystemEntropy struct{}

// Uint64 returns 8 bytes from the operating system CSPRNG. On the (practically
// impossible) read failure it returns 0, which still mints a valid seed.
func (SystemEntropy) Uint64() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}

	return binary.LittleEndian.Uint64(buf[:])
}

// Mint produces a fresh SeedLength-character lowercase base-36 seed from e.
// A nil e falls back to SystemEntropy.
func Mint(e Entropy) string {
	if e == nil {
		e = SystemEntropy{}
	}
	s := strconv.FormatUint(e.Uint64()%seedSpace, 36)
	if len(s) < SeedLength {
		s = strings.Repeat("0", SeedLength-len(s)) + s
	}

	return s
}
