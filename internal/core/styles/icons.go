package styles

// Glyphs used by the widgets. Plain unicode so they render without a
// patched font.
var (
	IconPrev       = "‹"
	IconNext       = "›"
	IconPrevFast   = "«"
	IconNextFast   = "»"
	IconChevronDn  = "▾"
	IconChevronUp  = "▴"
	IconChevronRt  = "▸"
	IconCheck      = "✓"
	IconClose      = "×"
	IconCalendar   = "◷"
	IconDotActive  = "●"
	IconDotIdle    = "○"
	IconRangeArrow = "→"
)
