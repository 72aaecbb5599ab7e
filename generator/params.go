// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// params.go - the sealed union of generator parameter records.
//
// Each record type maps to exactly one Kind. The union is closed: Params has
// an unexported method, so only the seven types below satisfy it and no
// kind outside the fixed set can be constructed.

package generator

import (
	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/shape"
)

// Params is a generator-specific parameter record.
type Params interface {
	// Kind reports which generator the record drives.
	Kind() Kind
	// SeedValue returns the record's seed ("" means mint one).
	SeedValue() string
	// WithSeed returns a copy of the record carrying seed.
	WithSeed(seed string) Params

	render(colors ColorConfig, cfg config) Result
}

// ColorConfig holds the fill and stroke tokens for one generation.
type ColorConfig struct {
	Fill   palette.Token `json:"fill,omitempty" yaml:"fill,omitempty"`
	Stroke palette.Token `json:"stroke,omitempty" yaml:"stroke,omitempty"`
}

// ScatterParams drives Scatter.
type ScatterParams struct {
	Seed          string     `json:"seed,omitempty" yaml:"seed,omitempty"`
	Count         int        `json:"count" yaml:"count"`
	SizeMin       float64    `json:"size_min" yaml:"size_min"`
	SizeMax       float64    `json:"size_max" yaml:"size_max"`
	RotationRange float64    `json:"rotation_range,omitempty" yaml:"rotation_range,omitempty"`
	Shape         shape.Kind `json:"shape" yaml:"shape"`
	Glyph         string     `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	TileSize      float64    `json:"tile_size,omitempty" yaml:"tile_size,omitempty"` // 0 => DefaultScatterTile
	Filled        bool       `json:"filled" yaml:"filled"`
	StrokeWidth   float64    `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	Opacity       float64    `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// GridParams drives Grid.
type GridParams struct {
	Seed        string     `json:"seed,omitempty" yaml:"seed,omitempty"`
	Cols        int        `json:"cols" yaml:"cols"`
	Rows        int        `json:"rows" yaml:"rows"`
	Gap         float64    `json:"gap" yaml:"gap"`
	DotSize     float64    `json:"dot_size" yaml:"dot_size"`
	Shape       shape.Kind `json:"shape" yaml:"shape"`
	Glyph       string     `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	Rotation    float64    `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	Jitter      float64    `json:"jitter,omitempty" yaml:"jitter,omitempty"` // fraction of Gap
	Filled      bool       `json:"filled" yaml:"filled"`
	StrokeWidth float64    `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	Opacity     float64    `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// LinesParams drives Lines.
type LinesParams struct {
	Seed        string    `json:"seed,omitempty" yaml:"seed,omitempty"`
	AngleDeg    float64   `json:"angle_deg" yaml:"angle_deg"`
	Spacing     float64   `json:"spacing" yaml:"spacing"`
	StrokeWidth float64   `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	Jitter      float64   `json:"jitter,omitempty" yaml:"jitter,omitempty"` // fraction of Spacing
	Dash        []float64 `json:"dash,omitempty" yaml:"dash,omitempty"`
	Opacity     float64   `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// WavesParams drives Waves.
type WavesParams struct {
	Seed        string  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Amplitude   float64 `json:"amplitude" yaml:"amplitude"`
	Frequency   float64 `json:"frequency" yaml:"frequency"`
	StrokeWidth float64 `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	Opacity     float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// NoiseParams drives Noise.
type NoiseParams struct {
	Seed       string  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Intensity  float64 `json:"intensity" yaml:"intensity"`
	DotScale   float64 `json:"dot_scale,omitempty" yaml:"dot_scale,omitempty"`     // 0 => 1
	MaxOpacity float64 `json:"max_opacity,omitempty" yaml:"max_opacity,omitempty"` // 0 => 0.3, capped at 0.5
}

// TopoParams drives Topo.
type TopoParams struct {
	Seed        string  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Levels      int     `json:"levels" yaml:"levels"`
	TileSize    float64 `json:"tile_size,omitempty" yaml:"tile_size,omitempty"` // 0 => DefaultTopoTile
	StrokeWidth float64 `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	Opacity     float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

// ParallelogramParams drives Parallelogram.
type ParallelogramParams struct {
	Seed        string  `json:"seed,omitempty" yaml:"seed,omitempty"`
	Width       float64 `json:"width" yaml:"width"`
	Height      float64 `json:"height" yaml:"height"`
	Skew        float64 `json:"skew" yaml:"skew"` // degrees, horizontal shear
	Gap         float64 `json:"gap" yaml:"gap"`
	Filled      bool    `json:"filled" yaml:"filled"`
	StrokeWidth float64 `json:"stroke_width,omitempty" yaml:"stroke_width,omitempty"`
	Opacity     float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

func (ScatterParams) Kind() Kind       { return KindScatter }
func (GridParams) Kind() Kind          { return KindGrid }
func (LinesParams) Kind() Kind         { return KindLines }
func (WavesParams) Kind() Kind         { return KindWaves }
func (NoiseParams) Kind() Kind         { return KindNoise }
func (TopoParams) Kind() Kind          { return KindTopo }
func (ParallelogramParams) Kind() Kind { return KindParallelogram }

func (p ScatterParams) SeedValue() string       { return p.Seed }
func (p GridParams) SeedValue() string          { return p.Seed }
func (p LinesParams) SeedValue() string         { return p.Seed }
func (p WavesParams) SeedValue() string         { return p.Seed }
func (p NoiseParams) SeedValue() string         { return p.Seed }
func (p TopoParams) SeedValue() string          { return p.Seed }
func (p ParallelogramParams) SeedValue() string { return p.Seed }

func (p ScatterParams) WithSeed(s string) Params       { p.Seed = s; return p }
func (p GridParams) WithSeed(s string) Params          { p.Seed = s; return p }
func (p WavesParams) WithSeed(s string) Params         { p.Seed = s; return p }
func (p NoiseParams) WithSeed(s string) Params         { p.Seed = s; return p }
func (p TopoParams) WithSeed(s string) Params          { p.Seed = s; return p }
func (p ParallelogramParams) WithSeed(s string) Params { p.Seed = s; return p }

// WithSeed also copies Dash so the result never aliases the receiver.
func (p LinesParams) WithSeed(s string) Params {
	p.Seed = s
	if p.Dash != nil {
		p.Dash = append([]float64(nil), p.Dash...)
	}
	return p
}

func (p ScatterParams) render(c ColorConfig, cfg config) Result { return scatter(p, c, cfg) }
func (p GridParams) render(c ColorConfig, cfg config) Result    { return grid(p, c, cfg) }
func (p LinesParams) render(c ColorConfig, cfg config) Result   { return lines(p, c, cfg) }
func (p WavesParams) render(c ColorConfig, cfg config) Result   { return waves(p, c, cfg) }
func (p NoiseParams) render(c ColorConfig, cfg config) Result   { return noise(p, c, cfg) }
func (p TopoParams) render(c ColorConfig, cfg config) Result    { return topo(p, c, cfg) }
func (p ParallelogramParams) render(c ColorConfig, cfg config) Result {
	return parallelogram(p, c, cfg)
}
