// SPDX-License-Identifier: MIT
// Package: motif/mapper

package mapper

// Unified is the generator-agnostic knob set a caller edits.
type Unified struct {
	Shape       string    `json:"shape,omitempty" yaml:"shape,omitempty"` // shape name, "" => circle
	Glyph       string    `json:"glyph,omitempty" yaml:"glyph,omitempty"`
	SizeMin     float64   `json:"size_min" yaml:"size_min"`
	SizeMax     float64   `json:"size_max" yaml:"size_max"`
	Density     float64   `json:"density" yaml:"density"`
	Spacing     float64   `json:"spacing" yaml:"spacing"`
	Rotation    float64   `json:"rotation" yaml:"rotation"`
	Jitter      float64   `json:"jitter" yaml:"jitter"`
	StrokeWidth float64   `json:"stroke_width" yaml:"stroke_width"`
	Opacity     float64   `json:"opacity" yaml:"opacity"`
	Frequency   float64   `json:"frequency" yaml:"frequency"`
	Intensity   float64   `json:"intensity,omitempty" yaml:"intensity,omitempty"` // Noise only, 0 => Density/100
	Filled      bool      `json:"filled" yaml:"filled"`
	Dash        []float64 `json:"dash,omitempty" yaml:"dash,omitempty"`
}

// Default knob values.
const (
	DefaultSizeMin     = 4.0
	DefaultSizeMax     = 12.0
	DefaultDensity     = 40.0
	DefaultSpacing     = 16.0
	DefaultStrokeWidth = 1.0
	DefaultOpacity     = 1.0
	DefaultFrequency   = 1.0
)

// DefaultUnified returns the knob values a fresh editor starts from.
func DefaultUnified() Unified {
	return Unified{
		Shape:       "circle",
		SizeMin:     DefaultSizeMin,
		SizeMax:     DefaultSizeMax,
		Density:     DefaultDensity,
		Spacing:     DefaultSpacing,
		StrokeWidth: DefaultStrokeWidth,
		Opacity:     DefaultOpacity,
		Frequency:   DefaultFrequency,
		Filled:      true,
	}
}
