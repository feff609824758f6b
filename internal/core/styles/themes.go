package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color

	// Range is the background of calendar days between the two endpoints.
	// When nil it is mixed from Surface and Primary.
	Range color.Color
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

// swatch lists a palette as hex strings in Palette field order.
type swatch [10]string

func (s swatch) palette() Palette {
	c := func(i int) color.Color {
		if s[i] == "" {
			return nil
		}
		return lipgloss.Color(s[i])
	}
	return Palette{
		Primary:    c(0),
		Secondary:  c(1),
		Foreground: c(2),
		Muted:      c(3),
		Background: c(4),
		Surface:    c(5),
		Success:    c(6),
		Warning:    c(7),
		Error:      c(8),
		Range:      c(9),
	}
}

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	//                     primary    secondary  fg         muted      bg         surface    success    warning    error      range
	"tokyo-night": swatch{"#7aa2f7", "#7dcfff", "#c0caf5", "#565f89", "#1a1b26", "#3b4261", "#9ece6a", "#e0af68", "#f7768e", "#2e3c64"}.palette(),
	"gruvbox":     swatch{"#83a598", "#8ec07c", "#ebdbb2", "#665c54", "#282828", "#3c3836", "#b8bb26", "#fabd2f", "#fb4934", "#504945"}.palette(),
	"catppuccin":  swatch{"#89b4fa", "#94e2d5", "#cdd6f4", "#6c7086", "#1e1e2e", "#313244", "#a6e3a1", "#f9e2af", "#f38ba8", ""}.palette(),
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}
