// SPDX-License-Identifier: MIT
// Package: motif/generator

package generator

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motif/rng"
	"github.com/katalvlaran/motif/shape"
)

var testStyle = shape.Style{Fill: "#000", Stroke: "#000", StrokeWidth: 1, Filled: true}

func attrOf(t *testing.T, p shape.Primitive, name string) string {
	t.Helper()
	v, ok := p.Attr(name)
	require.Truef(t, ok, "%s has no %q attribute", p.Tag, name)

	return v
}

func TestGridFrame_Exact(t *testing.T) {
	t.Parallel()

	f := gridFrame(GridParams{Cols: 4, Rows: 4, Gap: 24, DotSize: 8, Shape: shape.Circle}, testStyle, rng.New("g"))
	require.Len(t, f.prims, 16)
	assert.Equal(t, 96.0, f.width)
	assert.Equal(t, 96.0, f.height)

	// Row-major: index 1 is row 0, col 1.
	assert.Equal(t, "12", attrOf(t, f.prims[0], "cx"))
	assert.Equal(t, "12", attrOf(t, f.prims[0], "cy"))
	assert.Equal(t, "4", attrOf(t, f.prims[0], "r"))
	assert.Equal(t, "36", attrOf(t, f.prims[1], "cx"))
	assert.Equal(t, "12", attrOf(t, f.prims[1], "cy"))
	assert.Equal(t, "36", attrOf(t, f.prims[5], "cy"))
	assert.Equal(t, "84", attrOf(t, f.prims[15], "cx"))
}

func TestGridFrame_Clamps(t *testing.T) {
	t.Parallel()

	f := gridFrame(GridParams{Cols: 0, Rows: -3}, testStyle, rng.New("g"))
	require.Len(t, f.prims, 1)
	assert.Equal(t, DefaultGridGap, f.width)
	assert.Equal(t, "4", attrOf(t, f.prims[0], "r")) // Gap/3 diameter, halved

	big := gridFrame(GridParams{Cols: 10_000, Rows: 1, Gap: 1}, testStyle, rng.New("g"))
	assert.Len(t, big.prims, MaxGridDim)
}

func TestGridFrame_DrawsOnlyWithJitter(t *testing.T) {
	t.Parallel()

	src := rng.New("same")
	gridFrame(GridParams{Cols: 3, Rows: 3, Gap: 10}, testStyle, src)
	assert.Equal(t, rng.New("same").Next(), src.Next(), "no jitter must leave the stream untouched")

	a := gridFrame(GridParams{Cols: 3, Rows: 3, Gap: 10, Jitter: 0.5}, testStyle, rng.New("j"))
	b := gridFrame(GridParams{Cols: 3, Rows: 3, Gap: 10}, testStyle, rng.New("j"))
	assert.NotEqual(t, a.prims, b.prims)
}

func TestScatterFrame_EdgeWrap(t *testing.T) {
	t.Parallel()

	const count = 300
	p := ScatterParams{Count: count, SizeMin: 4, SizeMax: 8, RotationRange: 90, Shape: shape.Star}
	f := scatterFrame(p, testStyle, rng.New("wrap"))

	primaries := 0
	for i := 0; i < len(f.prims); {
		prim := f.prims[i]
		primaries++
		i++
		assert.GreaterOrEqual(t, prim.Anchor.X, 0.0)
		assert.LessOrEqual(t, prim.Anchor.X, DefaultScatterTile)
		assert.GreaterOrEqual(t, prim.Anchor.Size, 4.0)
		assert.LessOrEqual(t, prim.Anchor.Size, 8.0)

		if prim.Anchor.X < ScatterEdgeBand {
			require.Less(t, i, len(f.prims))
			dup := f.prims[i]
			assert.InDelta(t, prim.Anchor.X+DefaultScatterTile, dup.Anchor.X, 1e-9)
			assert.Equal(t, prim.Anchor.Y, dup.Anchor.Y)
			assert.Equal(t, prim.Anchor.Size, dup.Anchor.Size)
			assert.Equal(t, prim.Anchor.Rotation, dup.Anchor.Rotation)
			i++
		}
		if prim.Anchor.Y < ScatterEdgeBand {
			require.Less(t, i, len(f.prims))
			dup := f.prims[i]
			assert.Equal(t, prim.Anchor.X, dup.Anchor.X)
			assert.InDelta(t, prim.Anchor.Y+DefaultScatterTile, dup.Anchor.Y, 1e-9)
			assert.Equal(t, prim.Anchor.Size, dup.Anchor.Size)
			assert.Equal(t, prim.Anchor.Rotation, dup.Anchor.Rotation)
			i++
		}
	}
	assert.Equal(t, count, primaries)
	assert.GreaterOrEqual(t, len(f.prims), count)
	assert.LessOrEqual(t, len(f.prims), 3*count)
}

func TestScatterFrame_Degenerate(t *testing.T) {
	t.Parallel()

	empty := scatterFrame(ScatterParams{}, testStyle, rng.New("e"))
	assert.Empty(t, empty.prims)
	assert.Equal(t, DefaultScatterTile, empty.width)

	// Reversed bounds are swapped, not rejected.
	f := scatterFrame(ScatterParams{Count: 20, SizeMin: 9, SizeMax: 3}, testStyle, rng.New("r"))
	for _, p := range f.prims {
		assert.GreaterOrEqual(t, p.Anchor.Size, 3.0)
		assert.LessOrEqual(t, p.Anchor.Size, 9.0)
	}
}

func TestLinesFrame_Horizontal(t *testing.T) {
	t.Parallel()

	for _, angle := range []float64{0, 180, -180, 360} {
		f := linesFrame(LinesParams{AngleDeg: angle, Spacing: 16}, testStyle, rng.New("h"))
		require.Len(t, f.prims, AxisLines, "angle %v", angle)
		assert.Equal(t, 64.0, f.width)
		for i, want := range []string{"8", "24", "40", "56"} {
			assert.Equal(t, want, attrOf(t, f.prims[i], "y1"))
			assert.Equal(t, want, attrOf(t, f.prims[i], "y2"))
			assert.Equal(t, "0", attrOf(t, f.prims[i], "x1"))
			assert.Equal(t, "64", attrOf(t, f.prims[i], "x2"))
		}
	}
}

func TestLinesFrame_Vertical(t *testing.T) {
	t.Parallel()

	f := linesFrame(LinesParams{AngleDeg: 90, Spacing: 10}, testStyle, rng.New("v"))
	require.Len(t, f.prims, AxisLines)
	for i, want := range []string{"5", "15", "25", "35"} {
		assert.Equal(t, want, attrOf(t, f.prims[i], "x1"))
		assert.Equal(t, want, attrOf(t, f.prims[i], "x2"))
		assert.Equal(t, "40", attrOf(t, f.prims[i], "y2"))
	}
}

func TestLinesFrame_Diagonal(t *testing.T) {
	t.Parallel()

	// |10/sin 45| ~ 14.1 clamps up to MinDiagonalTile; ceil(20/10)+2 stripes.
	f := linesFrame(LinesParams{AngleDeg: 45, Spacing: 10}, testStyle, rng.New("d"))
	assert.Equal(t, MinDiagonalTile, f.width)
	assert.Len(t, f.prims, 4)

	shallow := linesFrame(LinesParams{AngleDeg: 1, Spacing: 16}, testStyle, rng.New("d"))
	assert.Equal(t, MaxDiagonalTile, shallow.width)
}

func TestLinesFrame_DiagonalCoversCorners(t *testing.T) {
	t.Parallel()

	sin, cos := math.Sincos(math.Pi / 4)
	for _, spacing := range []float64{1, 2, 4, 10} {
		f := linesFrame(LinesParams{AngleDeg: 45, Spacing: spacing}, testStyle, rng.New("c"))
		centre := f.width / 2
		reach := centre * (math.Abs(sin) + math.Abs(cos))
		assert.GreaterOrEqual(t, len(f.prims), int(math.Ceil(f.width/spacing))+extraDiagonal)

		lowest, highest := math.Inf(1), math.Inf(-1)
		for _, p := range f.prims {
			x1, err := strconv.ParseFloat(attrOf(t, p, "x1"), 64)
			require.NoError(t, err)
			y1, err := strconv.ParseFloat(attrOf(t, p, "y1"), 64)
			require.NoError(t, err)
			off := -sin*(x1-centre) + cos*(y1-centre)
			lowest, highest = math.Min(lowest, off), math.Max(highest, off)
		}
		// The next stripe past either end would lie outside the tile.
		assert.Less(t, lowest-spacing, -reach, "spacing %v", spacing)
		assert.Greater(t, highest+spacing, reach, "spacing %v", spacing)
	}
}

func TestLinesFrame_Dash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "4 2.5", dashArray([]float64{4, 0, -1, math.NaN(), 2.5}))
	assert.Empty(t, dashArray(nil))

	f := linesFrame(LinesParams{Spacing: 8, Dash: []float64{3, 1}}, testStyle, rng.New("x"))
	for _, p := range f.prims {
		assert.Equal(t, "3 1", attrOf(t, p, "stroke-dasharray"))
	}
}

func TestWavesFrame(t *testing.T) {
	t.Parallel()

	f := wavesFrame(WavesParams{Amplitude: 10, Frequency: 1}, testStyle)
	assert.Equal(t, 80.0, f.width)
	assert.Equal(t, 40.0, f.height)
	require.Len(t, f.prims, 1)

	d := attrOf(t, f.prims[0], "d")
	assert.True(t, strings.HasPrefix(d, "M0 20 "), d)
	assert.True(t, strings.HasSuffix(d, "L80 20"), d)
	assert.Contains(t, d, "L20 30")
	assert.Contains(t, d, "L60 10")
	assert.Equal(t, "none", attrOf(t, f.prims[0], "fill"))

	assert.Equal(t, MinWaveWidth, wavesFrame(WavesParams{Frequency: 1000}, testStyle).width)
	assert.Equal(t, WaveBaseWidth, wavesFrame(WavesParams{Frequency: -2}, testStyle).width)
	assert.Equal(t, 4.0, wavesFrame(WavesParams{Amplitude: math.NaN()}, testStyle).height)
}

func TestNoiseFrame(t *testing.T) {
	t.Parallel()

	f := noiseFrame(NoiseParams{Intensity: 0.1, MaxOpacity: 0.3}, testStyle, rng.New("n"))
	require.Len(t, f.prims, 50)
	assert.Equal(t, NoiseTile, f.width)
	for _, p := range f.prims {
		assert.Equal(t, "circle", p.Tag)
		op, err := strconv.ParseFloat(attrOf(t, p, "opacity"), 64)
		require.NoError(t, err)
		assert.LessOrEqual(t, op, 0.3)
		assert.GreaterOrEqual(t, p.Anchor.X, 0.0)
		assert.LessOrEqual(t, p.Anchor.X, NoiseTile)
	}

	loud := noiseFrame(NoiseParams{Intensity: 1, MaxOpacity: 1}, testStyle, rng.New("n"))
	for _, p := range loud.prims {
		op, err := strconv.ParseFloat(attrOf(t, p, "opacity"), 64)
		require.NoError(t, err)
		assert.LessOrEqual(t, op, MaxNoiseOpacity)
	}

	assert.Empty(t, noiseFrame(NoiseParams{Intensity: -1}, testStyle, rng.New("n")).prims)
	assert.Len(t, noiseFrame(NoiseParams{Intensity: math.Inf(1)}, testStyle, rng.New("n")).prims, 0)
	assert.Len(t, noiseFrame(NoiseParams{Intensity: 99}, testStyle, rng.New("n")).prims, 5000)
}

func TestTopoFrame(t *testing.T) {
	t.Parallel()

	none := topoFrame(TopoParams{}, testStyle, rng.New("t"))
	assert.Empty(t, none.prims)
	assert.Equal(t, DefaultTopoTile, none.width)

	f := topoFrame(TopoParams{Levels: 5}, testStyle, rng.New("t"))
	require.Len(t, f.prims, 5)
	for _, p := range f.prims {
		assert.Equal(t, "path", p.Tag)
		d := attrOf(t, p, "d")
		assert.True(t, strings.HasPrefix(d, "M"))
		assert.True(t, strings.HasSuffix(d, "Z"))
		assert.Equal(t, TopoVertices, strings.Count(d, "Q"))
		assert.Equal(t, "none", attrOf(t, p, "fill"))
		// Centre stays within the jitter band.
		assert.InDelta(t, 50, p.Anchor.X, 10)
		assert.InDelta(t, 50, p.Anchor.Y, 10)
	}
	assert.Less(t, f.prims[0].Anchor.Size, f.prims[4].Anchor.Size)
}

func TestParallelogramFrame(t *testing.T) {
	t.Parallel()

	f := parallelogramFrame(ParallelogramParams{Width: 40, Height: 20, Gap: 5}, testStyle)
	assert.Equal(t, 50.0, f.width)
	assert.Equal(t, 30.0, f.height)
	require.Len(t, f.prims, 1)
	assert.Equal(t, "5,5 45,5 45,25 5,25", attrOf(t, f.prims[0], "points"))

	right := parallelogramFrame(ParallelogramParams{Width: 40, Height: 20, Gap: 5, Skew: 45}, testStyle)
	assert.InDelta(t, 70, right.width, 1e-9)
	assert.Equal(t, "25,5 65,5 45,25 5,25", attrOf(t, right.prims[0], "points"))

	left := parallelogramFrame(ParallelogramParams{Width: 40, Height: 20, Gap: 5, Skew: -45}, testStyle)
	assert.Equal(t, "5,5 45,5 65,25 25,25", attrOf(t, left.prims[0], "points"))

	steep := parallelogramFrame(ParallelogramParams{Width: 40, Height: 20, Skew: 89}, testStyle)
	capped := parallelogramFrame(ParallelogramParams{Width: 40, Height: 20, Skew: MaxSkew}, testStyle)
	assert.Equal(t, capped.width, steep.width)
}
