// SPDX-License-Identifier: MIT
// Package: motif/preset

package preset_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motif/engine"
	"github.com/katalvlaran/motif/generator"
	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/preset"
	"github.com/katalvlaran/motif/shape"
)

const sample = `
patterns:
  - name: dots
    kind: grid
    seed: ${MOTIF_TEST_SEED}
    colors: {fill: primary}
    knobs:
      density: 20
      spacing: 24
  - name: hatching
    kind: Stripes
    colors: {stroke: "#334155"}
    params: {angle_deg: 45, spacing: 6, dash: [4, 2]}
  - name: confetti
    kind: scatter
    params: {count: 12, size_min: 2, size_max: 5, shape: star}
  - name: grain
    kind: noise
`

func TestParse_Requests(t *testing.T) {
	t.Setenv("MOTIF_TEST_SEED", "from-env")

	f, err := preset.Parse([]byte(sample))
	require.NoError(t, err)
	require.Len(t, f.Patterns, 4)

	reqs, err := f.Requests()
	require.NoError(t, err)
	require.Len(t, reqs, 4)

	dots := reqs[0]
	assert.Equal(t, generator.KindGrid, dots.Kind)
	assert.Equal(t, "from-env", dots.Seed)
	assert.Equal(t, palette.Primary, dots.Colors.Fill)
	require.NotNil(t, dots.Knobs)
	assert.Equal(t, 20.0, dots.Knobs.Density)
	assert.Equal(t, 24.0, dots.Knobs.Spacing)
	assert.Equal(t, 12.0, dots.Knobs.SizeMax, "unset knobs keep their defaults")
	assert.Nil(t, dots.Params)

	hatching := reqs[1]
	assert.Equal(t, generator.KindLines, hatching.Kind)
	assert.Equal(t, generator.LinesParams{AngleDeg: 45, Spacing: 6, Dash: []float64{4, 2}}, hatching.Params)
	assert.Equal(t, palette.Token("#334155"), hatching.Colors.Stroke)

	confetti := reqs[2].Params.(generator.ScatterParams)
	assert.Equal(t, shape.Star, confetti.Shape)
	assert.Equal(t, 12, confetti.Count)

	assert.Nil(t, reqs[3].Params)
	assert.Nil(t, reqs[3].Knobs)
}

func TestParse_RendersThroughEngine(t *testing.T) {
	f, err := preset.Parse([]byte(sample))
	require.NoError(t, err)
	reqs, err := f.Requests()
	require.NoError(t, err)

	results, err := engine.New().GenerateBatch(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, results, len(reqs))
	for _, r := range results {
		assert.NotEmpty(t, r.Document)
		assert.NotEmpty(t, r.Seed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty", `patterns: []`, preset.ErrNoPatterns},
		{"no name", "patterns:\n  - kind: grid", preset.ErrMissingName},
		{"parent dir", "patterns:\n  - {name: ../x, kind: grid}", preset.ErrBadName},
		{"nested", "patterns:\n  - {name: a/b, kind: grid}", preset.ErrBadName},
		{"backslash", "patterns:\n  - {name: 'a\\b', kind: grid}", preset.ErrBadName},
		{"dot dot", "patterns:\n  - {name: '..', kind: grid}", preset.ErrBadName},
		{"duplicate", "patterns:\n  - {name: a, kind: grid}\n  - {name: a, kind: waves}", preset.ErrDuplicateName},
		{"no kind", "patterns:\n  - name: a", preset.ErrMissingKind},
		{"bad kind", "patterns:\n  - {name: a, kind: voronoi}", generator.ErrUnknownKind},
		{"both", "patterns:\n  - {name: a, kind: grid, knobs: {density: 4}, params: {cols: 2}}", preset.ErrKnobsAndParams},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := preset.Parse([]byte(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_BadParams(t *testing.T) {
	f, err := preset.Parse([]byte("patterns:\n  - {name: a, kind: scatter, params: {shape: blob}}"))
	require.NoError(t, err)
	_, err = f.Requests()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"a": params`)

	_, err = preset.Parse([]byte("patterns: {"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := preset.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dots", f.Patterns[0].Name)

	_, err = preset.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
