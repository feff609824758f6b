// Package components holds the dialogs shared by the widget hosts.
package components

import (
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/tuikit/internal/core/styles"
)

// HelpSection groups key bindings under a title.
type HelpSection struct {
	Title    string
	Bindings []key.Binding
}

// HelpDialog lists every enabled key binding of a widget.
type HelpDialog struct {
	title    string
	sections []HelpSection
}

// NewHelpDialog creates a help dialog from explicit sections.
func NewHelpDialog(title string, sections []HelpSection) *HelpDialog {
	return &HelpDialog{title: title, sections: sections}
}

// HelpFromKeyMap builds a help dialog from a key map's full help columns.
// titles name the columns in order; extra columns go untitled.
func HelpFromKeyMap(title string, km help.KeyMap, titles ...string) *HelpDialog {
	cols := km.FullHelp()
	sections := make([]HelpSection, len(cols))
	for i, col := range cols {
		sections[i].Bindings = col
		if i < len(titles) {
			sections[i].Title = titles[i]
		}
	}
	return NewHelpDialog(title, sections)
}

// View renders the dialog.
func (h *HelpDialog) View() string {
	separator := styles.TextMutedStyle.Render(strings.Repeat("─", 25))

	var lines []string
	for _, section := range h.sections {
		var rows []string
		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			rows = append(rows, formatKeyDesc(b.Help().Key, b.Help().Desc))
		}
		if len(rows) == 0 {
			continue
		}

		if len(lines) > 0 {
			lines = append(lines, "")
		}
		if section.Title != "" {
			lines = append(lines, styles.HelpDialogSectionStyle.Render(section.Title), separator)
		}
		lines = append(lines, rows...)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.TextForegroundBoldStyle.Render(h.title),
		"",
		strings.Join(lines, "\n"),
		styles.HelpDialogHelpStyle.Render("esc close"),
	)
	return styles.HelpDialogModalStyle.Render(content)
}

// Overlay renders the dialog centered over background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	return overlay(background, h.View(), width, height)
}

func overlay(background, modal string, width, height int) string {
	x := max((width-lipgloss.Width(modal))/2, 0)
	y := max((height-lipgloss.Height(modal))/2, 0)

	top := lipgloss.NewLayer(modal)
	top.X(x).Y(y).Z(1)
	return lipgloss.NewCompositor(lipgloss.NewLayer(background), top).Render()
}

// formatKeyDesc aligns a key column of fixed display width.
func formatKeyDesc(k, desc string) string {
	const keyWidth = 12
	padded := k + Pad(keyWidth-lipgloss.Width(k))
	return styles.TextPrimaryBoldStyle.Render(padded) + styles.TextForegroundStyle.Render(desc)
}
