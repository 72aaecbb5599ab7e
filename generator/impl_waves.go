// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// impl_waves.go - one horizontal sine period per tile.
//
// Contract:
//   - Tile width W = clamp(WaveBaseWidth/Frequency, MinWaveWidth, MaxWaveWidth);
//     Frequency <= 0 counts as 1.
//   - Tile height H = 4*Amplitude, leaving headroom for peak and trough;
//     Amplitude <= 0 counts as 1, capped at MaxWaveAmplitude.
//   - y(x) = H/2 + A*sin(2*pi*x/W), sampled every WaveStep from 0 and always
//     ending exactly at x = W, so both tile edges meet at H/2.
//   - Deterministic without randomness; the seed is still minted/returned so
//     callers handle every kind alike.
//
// Complexity: O(W/WaveStep).

package generator

import (
	"math"

	"github.com/katalvlaran/motif/shape"
)

func waves(p WavesParams, colors ColorConfig, cfg config) Result {
	_, seed := cfg.source(p.Seed)
	st := cfg.style(colors, false, p.StrokeWidth, p.Opacity)

	return finish(wavesFrame(p, st), seed)
}

func wavesFrame(p WavesParams, st shape.Style) frame {
	freq := positiveOr(p.Frequency, 1)
	width := clampf(WaveBaseWidth/freq, MinWaveWidth, MaxWaveWidth)
	amp := math.Min(positiveOr(p.Amplitude, 1), MaxWaveAmplitude)
	height := waveHeadroom * amp
	mid := height * half

	yAt := func(x float64) float64 {
		return mid + amp*math.Sin(2*math.Pi*x/width)
	}

	var d shape.PathData
	d.MoveTo(0, yAt(0))
	for x := WaveStep; x < width; x += WaveStep {
		d.LineTo(x, yAt(x))
	}
	// Snap the last sample to the edge; sin(2*pi) is not exactly 0.
	d.LineTo(width, mid)

	at := shape.Anchor{X: 0, Y: shape.Round(mid), Size: shape.Round(amp)}

	return frame{width: width, height: height, prims: []shape.Primitive{shape.Stroke(&d, st, at)}}
}
