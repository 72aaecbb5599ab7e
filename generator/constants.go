// SPDX-License-Identifier: MIT
// Package: motif/generator
//
// constants.go - method names for error context and shared defaults.

package generator

// Method names used to prefix errors.
const (
	methodDispatch    = "Dispatch"
	methodParseKind   = "ParseKind"
	methodMarshalKind = "MarshalText"
)

// Paint fallback for unresolvable tokens.
const fallbackPaint = "currentColor"

//-----------------------------------------------------------------------------
// Scatter
//-----------------------------------------------------------------------------

const (
	// DefaultScatterTile is the scatter tile edge when TileSize is unset.
	DefaultScatterTile = 80.0
	// ScatterEdgeBand is the distance from the top/left edge inside which a
	// shape gets a duplicate on the opposite side.
	ScatterEdgeBand = 15.0
	// MaxScatterCount caps Count to keep documents bounded.
	MaxScatterCount = 5000
)

//-----------------------------------------------------------------------------
// Grid
//-----------------------------------------------------------------------------

const (
	// DefaultGridGap is the cell pitch when Gap is unset.
	DefaultGridGap = 24.0
	// MaxGridDim caps Cols and Rows.
	MaxGridDim = 200
	minGridDim = 1
)

//-----------------------------------------------------------------------------
// Lines
//-----------------------------------------------------------------------------

const (
	// DefaultLineSpacing is the stripe pitch when Spacing is unset.
	DefaultLineSpacing = 16.0
	// MinLineSpacing bounds the stripe count for tiny spacings.
	MinLineSpacing = 1.0
	// MinDiagonalTile and MaxDiagonalTile clamp the diagonal tile edge.
	MinDiagonalTile = 20.0
	MaxDiagonalTile = 100.0
	// AxisLines is the number of stripes in an axis-aligned tile.
	AxisLines = 4

	axisEpsilon   = 1e-9
	halfTurnDeg   = 180.0
	extraDiagonal = 2 // lines beyond ceil(T/spacing) so the pattern crosses the seam
)

//-----------------------------------------------------------------------------
// Waves
//-----------------------------------------------------------------------------

const (
	// WaveBaseWidth is the tile width at frequency 1.
	WaveBaseWidth = 80.0
	// MinWaveWidth and MaxWaveWidth clamp the tile width.
	MinWaveWidth = 8.0
	MaxWaveWidth = 400.0
	// MaxWaveAmplitude caps the amplitude (tile height is 4x amplitude).
	MaxWaveAmplitude = 100.0
	// WaveStep is the x distance between path samples.
	WaveStep = 2.0

	waveHeadroom = 4.0
)

//-----------------------------------------------------------------------------
// Noise
//-----------------------------------------------------------------------------

const (
	// NoiseTile is the fixed noise tile edge.
	NoiseTile = 50.0
	// NoiseDotsPerIntensity converts intensity to a dot count.
	NoiseDotsPerIntensity = 500
	// MaxNoiseIntensity caps intensity (5000 dots).
	MaxNoiseIntensity = 10.0
	// DefaultNoiseOpacity is the per-dot opacity ceiling when MaxOpacity is unset.
	DefaultNoiseOpacity = 0.3
	// MaxNoiseOpacity caps MaxOpacity; grain stays faint whatever the caller asks.
	MaxNoiseOpacity = 0.5

	noiseMinRadius  = 0.3
	noiseRadiusSpan = 1.0
	noiseMinOpacity = 0.05
)

//-----------------------------------------------------------------------------
// Topographic contours
//-----------------------------------------------------------------------------

const (
	// DefaultTopoTile is the contour tile edge when TileSize is unset.
	DefaultTopoTile = 100.0
	// MaxTopoLevels caps Levels.
	MaxTopoLevels = 100
	// TopoVertices is the vertex count of every contour loop.
	TopoVertices = 12

	topoInnerRadius = 5.0
	topoCenterSpan  = 0.2 // center jitter as a fraction of the tile
	topoWobble      = 0.2 // +/- radius perturbation as a fraction of baseRadius
)

//-----------------------------------------------------------------------------
// Parallelogram
//-----------------------------------------------------------------------------

const (
	// DefaultParallelogramWidth and DefaultParallelogramHeight apply to unset sizes.
	DefaultParallelogramWidth  = 40.0
	DefaultParallelogramHeight = 24.0
	// MaxSkew bounds |Skew| in degrees; tan() grows without bound near 90.
	MaxSkew = 75.0
)

// Stroke default shared by outline renderings.
const defaultStrokeWidth = 1.0

const half = 0.5
