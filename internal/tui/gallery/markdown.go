package gallery

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"

	"github.com/colonyops/tuikit/internal/core/styles"
)

// markdown renders collapse panel content. Rendering failures fall back to
// the raw text.
type markdown struct {
	width    int
	log      zerolog.Logger
	renderer *glamour.TermRenderer
}

func newMarkdown(width int, log zerolog.Logger) *markdown {
	md := &markdown{width: width, log: log}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
		return md
	}
	md.renderer = r
	return md
}

func (md *markdown) Render(src string) string {
	if md.renderer == nil {
		return src
	}
	out, err := md.renderer.Render(src)
	if err != nil {
		md.log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return src
	}
	return strings.Trim(out, "\n")
}
