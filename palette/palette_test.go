package palette_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/motif/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	p, err := palette.New(map[palette.Token]string{
		"primary": "#3b82f6",
		"brand":   "var(--brand)",
	})
	require.NoError(t, err)

	tests := []struct {
		name     string
		token    palette.Token
		fallback string
		want     string
	}{
		{"empty uses fallback", "", "currentColor", "currentColor"},
		{"currentColor passes", palette.CurrentColor, "#000", "currentColor"},
		{"none passes", palette.None, "#000", "none"},
		{"known role", "primary", "currentColor", "#3b82f6"},
		{"css var role", "brand", "currentColor", "var(--brand)"},
		{"hex literal", "#ff0000", "currentColor", "#ff0000"},
		{"short hex literal", "#f00", "currentColor", "#f00"},
		{"hex with alpha", "#ff000080", "currentColor", "#ff000080"},
		{"rgb literal", "rgb(1, 2, 3)", "currentColor", "rgb(1, 2, 3)"},
		{"hsl literal", "hsl(10 50% 50%)", "currentColor", "hsl(10 50% 50%)"},
		{"unknown role", "secondary", "currentColor", "currentColor"},
		{"broken hex", "#zzz", "black", "black"},
		{"unterminated rgb", "rgb(1,2,3", "black", "black"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Resolve(tc.token, tc.fallback))
		})
	}
}

func TestResolve_NilPalette(t *testing.T) {
	var p *palette.Palette
	assert.Equal(t, "#abcdef", p.Resolve("#abcdef", "currentColor"))
	assert.Equal(t, "currentColor", p.Resolve("primary", "currentColor"))
	assert.Nil(t, p.Roles())
}

func TestDefault(t *testing.T) {
	p := palette.Default()
	assert.Equal(t, "var(--primary)", p.Resolve(palette.Primary, "currentColor"))
	assert.Equal(t, "var(--background)", p.Resolve(palette.Background, "currentColor"))
	assert.Len(t, p.Roles(), 6)
}

func TestNew_Validation(t *testing.T) {
	_, err := palette.New(map[palette.Token]string{"primary": "#12"})
	assert.ErrorIs(t, err, palette.ErrBadColor)

	_, err = palette.New(map[palette.Token]string{" ": "#123456"})
	assert.ErrorIs(t, err, palette.ErrEmptyToken)
}

func TestNew_CopiesInput(t *testing.T) {
	roles := map[palette.Token]string{"primary": "#111111"}
	p, err := palette.New(roles)
	require.NoError(t, err)

	roles["primary"] = "#222222"
	assert.Equal(t, "#111111", p.Resolve("primary", ""))
}

func TestParseAndLoad(t *testing.T) {
	t.Setenv("MOTIF_TEST_ACCENT", "#00ff00")

	doc := []byte("roles:\n  primary: \"#3b82f6\"\n  accent: ${MOTIF_TEST_ACCENT}\n")
	p, err := palette.Parse(doc)
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", p.Resolve("accent", ""))
	assert.Equal(t, []palette.Token{"accent", "primary"}, p.Roles())

	path := filepath.Join(t.TempDir(), "palette.yaml")
	require.NoError(t, os.WriteFile(path, doc, 0o600))
	loaded, err := palette.Load(path)
	require.NoError(t, err)
	assert.Equal(t, p.Roles(), loaded.Roles())

	_, err = palette.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = palette.Parse([]byte("roles: [1, 2"))
	assert.Error(t, err)

	_, err = palette.Parse([]byte("roles:\n  primary: \"#nothex\"\n"))
	assert.ErrorIs(t, err, palette.ErrBadColor)
}
