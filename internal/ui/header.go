package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar with all information.
func (m Model) renderHeader() string {
	// Header uses Surface background
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("lrrview", styles.Logo)}

	switch {
	case m.snapshot.LastError != nil:
		maxErr := 80
		if compact {
			maxErr = 40
		}
		parts = append(parts,
			bg.Render("results unavailable:", styles.DangerText.Bold(true))+bg.Space()+
				bg.Render(truncate(m.snapshot.LastError.Error(), maxErr), styles.DangerText))

	case m.nav == nil:
		parts = append(parts, bg.Render("Loading results...", styles.WarningText.Bold(true)))
		if src := m.snapshot.Source; src != "" {
			parts = append(parts, bg.Render(truncateMiddle(src, 50), styles.MutedText))
		}

	default:
		parts = append(parts,
			bg.Render("Sequences:", styles.MutedText)+bg.Space()+
				bg.Render(strconv.Itoa(m.nav.Total()), styles.Text),
			bg.Render("Page", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d/%d", m.nav.PageIndex()+1, max(m.nav.LastPage()+1, 1)), styles.AccentText),
			bg.Render("Size:", styles.MutedText)+bg.Space()+
				bg.Render(strconv.Itoa(m.nav.PageSize()), styles.Text),
		)
		if !compact {
			if src := m.snapshot.Source; src != "" {
				parts = append(parts, bg.Render(truncateMiddle(src, 40), styles.FaintText))
			}
			if loaded := formatLoaded(m.snapshot.Elapsed, m.snapshot.LoadedAt); loaded != "" {
				parts = append(parts, bg.Render(loaded, styles.MutedText))
			}
		}
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		MaxHeight(1).
		Render(styles.Header.Render(bg.Join(parts, "  ")))
}

// formatLoaded describes when and how fast the dataset was read.
func formatLoaded(elapsed time.Duration, at time.Time) string {
	if at.IsZero() {
		return ""
	}
	s := "loaded " + at.Format("15:04:05")
	if elapsed > 0 {
		s += fmt.Sprintf(" in %s", elapsed.Round(time.Millisecond))
	}
	return s
}

// renderFooter renders the prompt when one is open, otherwise the key hints.
func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var content string
	if m.prompt.active() {
		content = bg.Render(m.prompt.label(), styles.AccentText) + bg.Space() + m.prompt.input.View() +
			bg.Spaces(2) + bg.Render("enter confirm · esc cancel", styles.FaintText)
	} else {
		hints := m.styledHelp(styles)
		hints.Width = max(m.width-20, 10)
		content = hints.View(m.keys) + bg.Spaces(2) +
			bg.Render("T", styles.AccentText) + bg.Sep(":") + bg.Render(m.theme.Name, styles.FaintText)
	}

	return styles.Footer.Width(m.width).MaxHeight(1).Render(content)
}
