// SPDX-License-Identifier: MIT
// Package: motif/generator

package generator

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/katalvlaran/motif/tile"
)

// Result is the output of one generation. Persist Seed to reproduce Document.
type Result struct {
	Document string `json:"document" yaml:"document"`
	Seed     string `json:"seed" yaml:"seed"`
}

// DataURI returns Document as a base64 data URI for CSS backgrounds.
func (r Result) DataURI() string {
	return tile.DataURI(r.Document)
}

// Fingerprint returns the hex sha256 of Document, a stable cache key for
// export callers. Empty documents have an empty fingerprint.
func (r Result) Fingerprint() string {
	if r.Document == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(r.Document))

	return hex.EncodeToString(sum[:])
}
