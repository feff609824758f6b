package styles

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"catppuccin", "gruvbox", "tokyo-night"}, ThemeNames())
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, ok := GetPalette("gruvbox")
	require.True(t, ok)

	SetTheme(p)
	assert.Equal(t, p.Primary, ColorPrimary)
	assert.Equal(t, p, CurrentPalette)

	_, ok = GetPalette("solarized")
	assert.False(t, ok)
}

func TestPalette_Range(t *testing.T) {
	tokyo, _ := GetPalette("tokyo-night")
	require.NotNil(t, tokyo.Range)

	cat, _ := GetPalette("catppuccin")
	assert.Nil(t, cat.Range, "mixed from surface and primary")
	assert.NotNil(t, cat.Error)
}

func TestBlend(t *testing.T) {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	tests := []struct {
		name string
		t    float64
		want string
	}{
		{"start", 0, "#000000"},
		{"end", 1, "#ffffff"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := colorful.MakeColor(Blend(black, white, tt.t))
			require.True(t, ok)
			assert.Equal(t, tt.want, c.Hex())
		})
	}

	assert.Nil(t, Blend(nil, white, 0.5))
}

func TestGlamourStyle(t *testing.T) {
	cfg := GlamourStyle()
	require.NotNil(t, cfg.Document.Margin)
	assert.Zero(t, *cfg.Document.Margin)
	require.NotNil(t, cfg.Heading.Color)

	want, _ := colorful.MakeColor(ColorPrimary)
	assert.Equal(t, want.Hex(), *cfg.Heading.Color)
}
