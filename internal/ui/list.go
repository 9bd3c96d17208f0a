package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lrrview/internal/results"
)

// paneWidths splits the terminal between the list and the detail pane.
// Extra wide (>= 160): 30% list, 70% detail. Default: 40% list, 60% detail.
func (m Model) paneWidths() (int, int) {
	var listWidth int
	if m.width >= LayoutExtraWideWidth {
		listWidth = m.width * 30 / 100
	} else {
		listWidth = m.width * 40 / 100
	}
	return listWidth, m.width - listWidth
}

// contentHeight is the space left between header and footer.
func (m Model) contentHeight() int {
	return m.height - 2
}

// renderBrowser renders the split layout (sequence list + detail).
func (m Model) renderBrowser() string {
	listWidth, detailWidth := m.paneWidths()
	height := m.contentHeight()

	// === List Pane ===
	listFocused := m.focusedPane == paneList
	listBg := m.paneBg(listFocused)
	listContent := m.renderSequenceList(listWidth-2, height-2, listBg)
	listPane := m.renderTitledBox(m.listTitle(), listContent, listWidth, height, listFocused)

	// === Detail Pane ===
	detailFocused := m.focusedPane == paneDetail
	detailBg := m.paneBg(detailFocused)
	var detailContent string
	if m.detail != nil && m.detail.HasSelection() {
		detailContent = indentLines(m.detailViewport.View(), NewBgStyle(detailBg).Space())
	} else {
		detailContent = " " + lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Muted)).
			Background(lipgloss.Color(detailBg)).
			Render("Select a sequence")
	}
	detailPane := m.renderTitledBox("Details", detailContent, detailWidth, height, detailFocused)

	// Join side-by-side
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// paneBg returns the pane background for the focus state.
func (m Model) paneBg(focused bool) string {
	if focused {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}

func (m Model) listTitle() string {
	if m.nav == nil {
		return "Sequences"
	}
	return fmt.Sprintf("Sequences (%d)", m.nav.Total())
}

// renderSequenceList renders the visible page as styled rows followed by
// the page dots.
func (m Model) renderSequenceList(width, height int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	switch {
	case m.snapshot.LastError != nil:
		return bg.Render(" No data", styles.DangerText)
	case m.nav == nil:
		return bg.Render(" Loading results...", styles.WarningText)
	case m.nav.Total() == 0:
		return bg.Render(" No sequences", styles.MutedText)
	}

	page := m.nav.Page()
	start := m.nav.PageStart()
	lines := make([]string, 0, len(page)+2)
	for i, rec := range page {
		abs := start + i
		if i == m.cursor {
			content := m.formatSequenceRow(rec, abs, width, m.theme.SelectionBg, true)
			lines = append(lines, lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Width(width).
				Render(content))
			continue
		}
		lines = append(lines, m.formatSequenceRow(rec, abs, width, bgColor, false))
	}
	if len(page) == 0 {
		lines = append(lines, bg.Render(" Empty page", styles.MutedText))
	}

	// Page dots on the last line of the pane
	for len(lines) < height-1 {
		lines = append(lines, "")
	}
	m.pager.ActiveDot = styles.AccentText.Render("•")
	m.pager.InactiveDot = styles.FaintText.Render("•")
	pageLabel := fmt.Sprintf("%d/%d", m.nav.PageIndex()+1, max(m.nav.LastPage()+1, 1))
	lines = append(lines, bg.Space()+m.pager.View()+bg.Spaces(2)+bg.Render(pageLabel, styles.MutedText))

	return strings.Join(lines, "\n")
}

// formatSequenceRow formats one list row.
// Format: "● 12 seq_id · 3 motifs"
// When selected is true, uses SelectionText color for all text to ensure contrast.
func (m Model) formatSequenceRow(rec results.Sequence, abs, width int, bgColor string, selected bool) string {
	bg := NewBgStyle(bgColor)

	marker := " "
	if abs == m.activeIndex {
		marker = "●"
	}
	index := strconv.Itoa(abs + 1)
	summary := motifSummary(rec)

	labelWidth := max(width-len(index)-len([]rune(summary))-7, 6)

	var markerStyle, indexStyle, labelStyle, sepStyle, summaryStyle lipgloss.Style
	if selected {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		markerStyle, indexStyle, labelStyle, sepStyle, summaryStyle = selText, selText, selText, selText, selText
	} else {
		styles := m.theme.Styles()
		markerStyle = styles.SuccessText
		indexStyle = styles.MutedText
		labelStyle = styles.Text
		sepStyle = styles.FaintText
		summaryStyle = styles.InfoText
	}

	return bg.Space() +
		bg.Render(marker, markerStyle) + bg.Space() +
		bg.Render(index, indexStyle) + bg.Space() +
		bg.Render(truncate(sequenceLabel(rec, abs), labelWidth), labelStyle) +
		bg.Render(" · ", sepStyle) +
		bg.Render(summary, summaryStyle)
}

// sequenceLabel returns the record's id, or a positional name when blank.
func sequenceLabel(rec results.Sequence, abs int) string {
	if id := strings.TrimSpace(rec.ID); id != "" {
		return id
	}
	return fmt.Sprintf("Sequence #%d", abs+1)
}

// motifSummary counts confident motifs, e.g. "3 motifs" or "1 motif".
func motifSummary(rec results.Sequence) string {
	confident := 0
	for _, motif := range rec.Motifs {
		if !motif.FalseDiscovery {
			confident++
		}
	}
	if confident == 1 {
		return "1 motif"
	}
	return fmt.Sprintf("%d motifs", confident)
}

// renderTitledBox renders content in a box with the title embedded in the top border.
// Frame style: ┌─── Title ───┐
// When focused is true, uses BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := max(width-2, 0) // Account for left and right border chars
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := len([]rune(title))
	leftPad := max((innerWidth-titleLen-2)/2, 0) // -2 for spaces around title
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	// Lines are clipped first so Width never wraps them onto a second row.
	clip := lipgloss.NewStyle().MaxWidth(innerWidth)
	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // -2 for top and bottom borders

	paddedLines := make([]string, 0, max(boxHeight, 0))
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = clip.Render(contentLines[i])
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

// indentLines prefixes every line of content.
func indentLines(content, prefix string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}
