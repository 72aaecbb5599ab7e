// SPDX-License-Identifier: MIT
// Package: motif/palette
//
// palette.go - semantic colour tokens and their resolution to paint values.
//
// Contract:
//   - A Palette is built once and never mutated afterwards; share it freely
//     between goroutines.
//   - Resolve never fails: anything it cannot map resolves to the fallback.

package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Token is a semantic colour role ("primary") or a literal paint value.
type Token string

// Pass-through tokens understood by every renderer.
const (
	CurrentColor Token = "currentColor"
	None         Token = "none"
)

// Default semantic roles provided by Default().
const (
	Primary    Token = "primary"
	Secondary  Token = "secondary"
	Accent     Token = "accent"
	Muted      Token = "muted"
	Foreground Token = "foreground"
	Background Token = "background"
)

// literalPrefixes are functional CSS colour notations passed through verbatim.
var literalPrefixes = []string{"rgb(", "rgba(", "hsl(", "hsla(", "var("}

// Palette is an immutable token -> paint lookup.
type Palette struct {
	paints map[Token]string
}

// New builds a Palette from roles. Role names must be non-empty and hex
// paints must parse; other paints (CSS variables, functional notation) are
// stored verbatim. The input map is copied.
// Complexity: O(len(roles)).
func New(roles map[Token]string) (*Palette, error) {
	paints := make(map[Token]string, len(roles))
	for tok, paint := range roles {
		if strings.TrimSpace(string(tok)) == "" {
			return nil, fmt.Errorf("palette: New: %w", ErrEmptyToken)
		}
		if strings.HasPrefix(paint, "#") && !isHex(paint) {
			return nil, fmt.Errorf("palette: New: role %q paint %q: %w", tok, paint, ErrBadColor)
		}
		paints[tok] = paint
	}

	return &Palette{paints: paints}, nil
}

// Default returns the design-system roles mapped to CSS custom properties,
// e.g. primary -> var(--primary), so documents follow the page theme.
func Default() *Palette {
	roles := []Token{Primary, Secondary, Accent, Muted, Foreground, Background}
	paints := make(map[Token]string, len(roles))
	for _, r := range roles {
		paints[r] = "var(--" + string(r) + ")"
	}

	return &Palette{paints: paints}
}

// Resolve maps token to a concrete paint value.
//
// Order: empty -> fallback; currentColor/none -> verbatim; known role -> its
// paint; literal colour -> verbatim; otherwise fallback. A nil Palette has no
// roles but still passes literals through.
func (p *Palette) Resolve(token Token, fallback string) string {
	if token == "" {
		return fallback
	}
	if token == CurrentColor || token == None {
		return string(token)
	}
	if p != nil {
		if paint, ok := p.paints[token]; ok {
			return paint
		}
	}
	if IsLiteral(token) {
		return string(token)
	}

	return fallback
}

// Roles returns the palette's role names in sorted order.
func (p *Palette) Roles() []Token {
	if p == nil {
		return nil
	}
	out := make([]Token, 0, len(p.paints))
	for tok := range p.paints {
		out = append(out, tok)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// IsLiteral reports whether token is a concrete colour rather than a role.
func IsLiteral(token Token) bool {
	s := string(token)
	if strings.HasPrefix(s, "#") {
		return isHex(s)
	}
	lower := strings.ToLower(s)
	for _, prefix := range literalPrefixes {
		if strings.HasPrefix(lower, prefix) && strings.HasSuffix(lower, ")") {
			return true
		}
	}

	return false
}

// isHex accepts #rgb, #rrggbb and #rrggbbaa. go-colorful parses the first two
// forms; the alpha form is checked on its colour part.
func isHex(s string) bool {
	switch len(s) {
	case 4, 7:
		_, err := colorful.Hex(s)
		return err == nil
	case 9:
		if _, err := colorful.Hex(s[:7]); err != nil {
			return false
		}
		_, err := colorful.Hex("#" + s[7:9] + s[7:9] + s[7:9])
		return err == nil
	default:
		return false
	}
}
