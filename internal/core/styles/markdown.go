package styles

import (
	"image/color"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// Blend mixes a towards b by t in [0, 1], in Lab space. It returns a when
// either color is unusable.
func Blend(a, b color.Color, t float64) color.Color {
	if a == nil || b == nil {
		return a
	}
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	if !okA || !okB {
		return a
	}
	return ca.BlendLab(cb, t).Clamped()
}

// GlamourStyle returns a markdown style config derived from the active
// theme, without document margins.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	noMargin := uint(0)
	cfg.Document.Margin = &noMargin
	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.Strong.Color = primary
	cfg.BlockQuote.Color = muted
	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary
	cfg.Code.Color = secondary
	cfg.CodeBlock.Color = muted

	return cfg
}
