// SPDX-License-Identifier: MIT
// Package: motif/preset

// Package preset reads named pattern requests from YAML.
//
//	patterns:
//	  - name: dots
//	    kind: grid
//	    seed: k3v9x0aa
//	    colors: {fill: primary}
//	    knobs: {density: 20, spacing: 24}
//	  - name: hatching
//	    kind: stripes
//	    colors: {stroke: "#334155"}
//	    params: {angle_deg: 45, spacing: 6, dash: [4, 2]}
//
// knobs start from mapper.DefaultUnified and override only the fields that
// are present; params are the generator's own record and are used as is.
// ${VAR} references are expanded from the environment before parsing.
package preset

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/motif/engine"
	"github.com/katalvlaran/motif/generator"
	"github.com/katalvlaran/motif/mapper"
)

// File is a parsed preset document.
type File struct {
	Patterns []Pattern `yaml:"patterns"`
}

// Pattern is one named request.
type Pattern struct {
	Name   string                `yaml:"name"`
	Kind   string                `yaml:"kind"`
	Seed   string                `yaml:"seed,omitempty"`
	Colors generator.ColorConfig `yaml:"colors,omitempty"`
	Knobs  yaml.Node             `yaml:"knobs,omitempty"`
	Params yaml.Node             `yaml:"params,omitempty"`
}

// Load reads a preset file from path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is caller-provided configuration
	if err != nil {
		return File{}, fmt.Errorf("preset: load: %w", err)
	}

	return Parse(data)
}

// Parse decodes a preset document held in memory and validates it.
func Parse(data []byte) (File, error) {
	expanded := os.ExpandEnv(string(data))

	var f File
	if err := yaml.Unmarshal([]byte(expanded), &f); err != nil {
		return File{}, fmt.Errorf("preset: parse: %w", err)
	}
	if err := f.Validate(); err != nil {
		return File{}, err
	}

	return f, nil
}

// Validate checks names, kinds and the knobs/params choice of every entry.
func (f File) Validate() error {
	if len(f.Patterns) == 0 {
		return ErrNoPatterns
	}

	seen := make(map[string]struct{}, len(f.Patterns))
	for i, p := range f.Patterns {
		if p.Name == "" {
			return fmt.Errorf("preset: pattern %d: %w", i, ErrMissingName)
		}
		if strings.ContainsAny(p.Name, `/\`) || p.Name == "." || p.Name == ".." {
			return fmt.Errorf("preset: %q: %w", p.Name, ErrBadName)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("preset: %q: %w", p.Name, ErrDuplicateName)
		}
		seen[p.Name] = struct{}{}

		if p.Kind == "" {
			return fmt.Errorf("preset: %q: %w", p.Name, ErrMissingKind)
		}
		if _, err := generator.ParseKind(p.Kind); err != nil {
			return fmt.Errorf("preset: %q: %w", p.Name, err)
		}
		if !p.Knobs.IsZero() && !p.Params.IsZero() {
			return fmt.Errorf("preset: %q: %w", p.Name, ErrKnobsAndParams)
		}
	}

	return nil
}

// Requests converts every entry into an engine request, index-aligned with
// f.Patterns.
func (f File) Requests() ([]engine.Request, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	out := make([]engine.Request, len(f.Patterns))
	for i, p := range f.Patterns {
		req, err := p.Request()
		if err != nil {
			return nil, err
		}
		out[i] = req
	}

	return out, nil
}

// Request converts one entry into an engine request.
func (p Pattern) Request() (engine.Request, error) {
	kind, err := generator.ParseKind(p.Kind)
	if err != nil {
		return engine.Request{}, fmt.Errorf("preset: %q: %w", p.Name, err)
	}
	req := engine.Request{Kind: kind, Seed: p.Seed, Colors: p.Colors}

	switch {
	case !p.Params.IsZero():
		params, err := decoders[kind](&p.Params)
		if err != nil {
			return engine.Request{}, fmt.Errorf("preset: %q: params: %w", p.Name, err)
		}
		req.Params = params
	case !p.Knobs.IsZero():
		knobs := mapper.DefaultUnified()
		if err := p.Knobs.Decode(&knobs); err != nil {
			return engine.Request{}, fmt.Errorf("preset: %q: knobs: %w", p.Name, err)
		}
		req.Knobs = &knobs
	}

	return req, nil
}

var decoders = map[generator.Kind]func(*yaml.Node) (generator.Params, error){
	generator.KindScatter:       decode[generator.ScatterParams],
	generator.KindGrid:          decode[generator.GridParams],
	generator.KindLines:         decode[generator.LinesParams],
	generator.KindWaves:         decode[generator.WavesParams],
	generator.KindNoise:         decode[generator.NoiseParams],
	generator.KindTopo:          decode[generator.TopoParams],
	generator.KindParallelogram: decode[generator.ParallelogramParams],
}

func decode[T generator.Params](n *yaml.Node) (generator.Params, error) {
	var p T
	if err := n.Decode(&p); err != nil {
		return nil, err
	}

	return p, nil
}
