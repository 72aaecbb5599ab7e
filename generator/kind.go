// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// kind.go - the closed set of generator kinds.

package generator

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven pattern algorithms.
type Kind uint8

const (
	// KindScatter places shapes at random positions with edge duplicates.
	KindScatter Kind = iota
	// KindGrid places shapes on a regular lattice.
	KindGrid
	// KindLines draws parallel stripes at an angle.
	KindLines
	// KindWaves draws one sine period per tile.
	KindWaves
	// KindNoise sprinkles faint grain dots.
	KindNoise
	// KindTopo draws concentric jittered contour loops.
	KindTopo
	// KindParallelogram draws one sheared quadrilateral per tile.
	KindParallelogram

	kindCount // sentinel, keep last
)

// kindInfo holds the canonical name and a one-line description per Kind.
var kindInfo = [kindCount]struct {
	name string
	desc string
}{
	KindScatter:       {"scatter", "random shapes with single-axis edge wrap"},
	KindGrid:          {"grid", "shapes on a cols x rows lattice, seamless by construction"},
	KindLines:         {"lines", "parallel stripes at any angle, optional jitter and dashes"},
	KindWaves:         {"waves", "one horizontal sine period per tile"},
	KindNoise:         {"noise", "low-opacity grain dots in a 50x50 tile"},
	KindTopo:          {"topo", "concentric jittered contour loops"},
	KindParallelogram: {"parallelogram", "one skewed quadrilateral with a margin"},
}

// kindAliases are accepted by ParseKind in addition to canonical names.
var kindAliases = map[string]Kind{
	"stripes":     KindLines,
	"wave":        KindWaves,
	"grain":       KindNoise,
	"topographic": KindTopo,
	"contours":    KindTopo,
}

// String returns the canonical lowercase name.
func (k Kind) String() string {
	if k < kindCount {
		return kindInfo[k].name
	}

	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Description returns a short human-readable summary of the algorithm.
func (k Kind) Description() string {
	if k < kindCount {
		return kindInfo[k].desc
	}

	return ""
}

// Valid reports whether k is one of the seven kinds.
func (k Kind) Valid() bool { return k < kindCount }

// Kinds returns all kinds in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}

	return out
}

// ParseKind resolves a kind name or alias, case-insensitively.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i := Kind(0); i < kindCount; i++ {
		if kindInfo[i].name == n {
			return i, nil
		}
	}
	if k, ok := kindAliases[n]; ok {
		return k, nil
	}

	return 0, fmt.Errorf("%s(%q): %w", methodParseKind, name, ErrUnknownKind)
}

// MarshalText encodes the canonical name, so kinds read naturally in YAML/JSON.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%s: %d: %w", methodMarshalKind, uint8(k), ErrUnknownKind)
	}

	return []byte(k.String()), nil
}

// UnmarshalText decodes a name or alias via ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
