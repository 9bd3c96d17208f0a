package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// styledHelp returns the help model themed with styles.
func (m Model) styledHelp(styles Styles) help.Model {
	h := m.help
	h.ShortSeparator = " · "
	h.Styles.ShortKey = styles.AccentText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	h.Styles.Ellipsis = styles.FaintText
	h.Styles.FullKey = styles.WarningText
	h.Styles.FullDesc = styles.Text
	h.Styles.FullSeparator = styles.FaintText
	return h
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder

	// Title
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	full := m.styledHelp(styles)
	full.ShowAll = true
	full.FullSeparator = "    "
	b.WriteString(full.View(m.keys))
	b.WriteString("\n\n")

	// Legend for the detail pane
	b.WriteString(styles.AccentText.Bold(true).Render("Residues"))
	b.WriteString("\n")
	b.WriteString(styles.Highlight.Render("ABC"))
	b.WriteString(styles.Text.Render(" inside a confident motif window"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("dim rows in the motif table are false discoveries"))
	b.WriteString("\n\n")
	b.WriteString(styles.MutedText.Render("Press any key to close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
