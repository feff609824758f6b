// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// CLI styles.
	CommandHeaderStyle lipgloss.Style
	CommandStyle       lipgloss.Style
	DividerStyle       lipgloss.Style

	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextSurfaceStyle        lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	HelpDialogModalStyle   lipgloss.Style
	HelpDialogSectionStyle lipgloss.Style
	HelpDialogHelpStyle    lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormTitleBlurredStyle lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style
	FormHelpStyle         lipgloss.Style

	// Calendar cells.
	CalendarHeaderStyle     lipgloss.Style
	CalendarWeekdayStyle    lipgloss.Style
	CalendarCellStyle       lipgloss.Style
	CalendarOtherMonthStyle lipgloss.Style
	CalendarTodayStyle      lipgloss.Style
	CalendarInRangeStyle    lipgloss.Style
	CalendarEndpointStyle   lipgloss.Style
	CalendarDisabledStyle   lipgloss.Style
	CalendarCursorStyle     lipgloss.Style
	CalendarPanelStyle      lipgloss.Style
	ShortcutStyle           lipgloss.Style
	ShortcutSelectedStyle   lipgloss.Style

	// Select widget.
	SelectTriggerStyle        lipgloss.Style
	SelectTriggerFocusedStyle lipgloss.Style
	SelectDropdownStyle       lipgloss.Style
	SelectOptionStyle         lipgloss.Style
	SelectOptionActiveStyle   lipgloss.Style
	SelectOptionSelectedStyle lipgloss.Style
	SelectOptionDisabledStyle lipgloss.Style
	SelectGroupStyle          lipgloss.Style
	SelectTagStyle            lipgloss.Style
	SelectEmptyStyle          lipgloss.Style

	// Collapse and carousel.
	CollapseTitleStyle       lipgloss.Style
	CollapseTitleActiveStyle lipgloss.Style
	CollapseContentStyle     lipgloss.Style
	CarouselFrameStyle       lipgloss.Style
	CarouselIndicatorStyle   lipgloss.Style

	// Gallery tabs.
	TabNormalStyle   lipgloss.Style
	TabSelectedStyle lipgloss.Style
	TabBrandingStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CommandStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)
	TextSurfaceStyle = lipgloss.NewStyle().Foreground(ColorSurface)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Background(ColorBackground).
		Padding(1, 2)
	HelpDialogSectionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	FormTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	FormTitleBlurredStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorMuted).
		PaddingLeft(1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(ColorPrimary).
		PaddingLeft(1)
	FormErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)
	FormHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	CalendarHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	CalendarWeekdayStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	CalendarCellStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	CalendarOtherMonthStyle = lipgloss.NewStyle().
		Foreground(ColorSurface)
	CalendarTodayStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Underline(true)
	rangeBg := p.Range
	if rangeBg == nil {
		rangeBg = Blend(ColorSurface, ColorPrimary, 0.25)
	}
	CalendarInRangeStyle = lipgloss.NewStyle().
		Background(rangeBg).
		Foreground(ColorForeground)
	CalendarEndpointStyle = lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)
	CalendarDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)
	CalendarCursorStyle = lipgloss.NewStyle().
		Reverse(true)
	CalendarPanelStyle = lipgloss.NewStyle().
		Padding(0, 1)
	ShortcutStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		PaddingRight(2)
	ShortcutSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		PaddingRight(2)

	SelectTriggerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)
	SelectTriggerFocusedStyle = SelectTriggerStyle.
		BorderForeground(ColorPrimary)
	SelectDropdownStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface)
	SelectOptionStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Padding(0, 1)
	SelectOptionActiveStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorForeground).
		Padding(0, 1)
	SelectOptionSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	SelectOptionDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)
	SelectGroupStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		PaddingLeft(1)
	SelectTagStyle = lipgloss.NewStyle().
		Background(ColorSurface).
		Foreground(ColorForeground).
		Padding(0, 1).
		MarginRight(1)
	SelectEmptyStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Padding(0, 1)

	CollapseTitleStyle = lipgloss.NewStyle().
		Foreground(ColorForeground)
	CollapseTitleActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	CollapseContentStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		PaddingLeft(2)
	CarouselFrameStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSurface).
		Align(lipgloss.Center, lipgloss.Center)
	CarouselIndicatorStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	TabNormalStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)
	TabSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true)
	TabBrandingStyle = lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true).
		Padding(0, 1)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
