// SPDX-License-Identifier: MIT
// Package: motif/palette
//
// load.go - YAML palette files.
//
// Format:
//
//	roles:
//	  primary: "#3b82f6"
//	  accent: var(--brand-accent)
//
// ${VAR} references are expanded from the environment before parsing.

package palette

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat mirrors the on-disk palette document.
type fileFormat struct {
	Roles map[string]string `yaml:"roles"`
}

// Load reads a palette file from path.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return nil, fmt.Errorf("palette: load: %w", err)
	}

	return Parse(data)
}

// Parse decodes a palette document held in memory.
func Parse(data []byte) (*Palette, error) {
	expanded := os.ExpandEnv(string(data))

	var f fileFormat
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return nil, fmt.Errorf("palette: parse: %w", err)
	}

	roles := make(map[Token]string, len(f.Roles))
	for name, paint := range f.Roles {
		roles[Token(name)] = paint
	}

	return New(roles)
}
