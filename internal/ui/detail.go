package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/lrrview/internal/browse"
)

// initDetailViewport initializes the detail viewport.
func (m *Model) initDetailViewport() {
	w, h := m.detailViewportSize()
	m.detailViewport = viewport.New(w, h)
	m.detailViewport.Style = lipgloss.NewStyle()
	m.detailViewport.KeyMap.HalfPageUp = m.keys.HalfPageUp
	m.detailViewport.KeyMap.HalfPageDown = m.keys.HalfPageDown
}

// detailViewportSize is the detail pane minus borders and one column of padding
// on each side.
func (m Model) detailViewportSize() (int, int) {
	_, detailWidth := m.paneWidths()
	return max(detailWidth-4, 1), max(m.contentHeight()-2, 1)
}

// updateDetailViewport refreshes the viewport when the selection, theme or
// size changed since the last render.
func (m *Model) updateDetailViewport() {
	if !m.ready {
		return
	}
	w, h := m.detailViewportSize()
	m.detailViewport.Width = w
	m.detailViewport.Height = h

	bgColor := m.paneBg(m.focusedPane == paneDetail)
	m.detailViewport.Style = lipgloss.NewStyle().Background(lipgloss.Color(bgColor))

	if m.detail == nil || !m.detail.HasSelection() {
		return
	}

	key := fmt.Sprintf("%s/%d/%s", m.theme.Name, w, bgColor)
	version := m.detail.Version()
	if version == m.lastRendered && key == m.renderedFor {
		return
	}
	m.detailViewport.SetContent(m.renderDetailContent(w, bgColor))
	if version != m.lastRendered {
		m.detailViewport.GotoTop()
	}
	m.lastRendered = version
	m.renderedFor = key
}

// renderDetailContent renders the selected sequence: summary, residues and
// the motif table.
func (m Model) renderDetailContent(width int, bgColor string) string {
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)
	highlight := m.theme.Styles().Highlight

	seq := m.detail.Selected()
	rows := m.detail.MotifRows()
	texts := m.detail.SeqTexts()

	var b strings.Builder

	// Summary
	label := sequenceLabel(seq, max(m.activeIndex, 0))
	b.WriteString(bg.Render(label, styles.Text.Bold(true)))
	b.WriteString("\n")
	confident, discarded := countMotifs(rows)
	b.WriteString(bg.Render("Length", styles.MutedText) + bg.Space() +
		bg.Render(strconv.Itoa(seq.Len()), styles.Text) + bg.Spaces(3) +
		bg.Render("Motifs", styles.MutedText) + bg.Space() +
		bg.Render(strconv.Itoa(confident), styles.SuccessText))
	if discarded > 0 {
		b.WriteString(bg.Space() + bg.Render(fmt.Sprintf("(+%d FD)", discarded), styles.WarningText))
	}
	b.WriteString("\n\n")

	// Residues
	b.WriteString(bg.Render("Residues", styles.AccentText.Bold(true)))
	b.WriteString("\n")
	perLine := residueBlocksPerLine(width) * ResidueBlock
	labelWidth := len(strconv.Itoa(max(len(texts), 1)))
	for _, line := range chunkResidues(texts, perLine) {
		b.WriteString(bg.Render(padLeft(strconv.Itoa(line[0].Offset+1), labelWidth), styles.FaintText))
		b.WriteString(bg.Space())
		for i, block := range chunkResidues(line, ResidueBlock) {
			if i > 0 {
				b.WriteString(bg.Space())
			}
			for _, run := range highlightRuns(block) {
				if run.highlight {
					b.WriteString(highlight.Render(run.text))
				} else {
					b.WriteString(bg.Render(run.text, styles.Text))
				}
			}
		}
		b.WriteString("\n")
	}
	if len(texts) == 0 {
		b.WriteString(bg.Render("(empty sequence)", styles.MutedText))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Motif table
	b.WriteString(bg.Render("Motifs", styles.AccentText.Bold(true)))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(bg.Render("No motifs detected", styles.MutedText))
		return b.String()
	}
	cols := motifColumns(rows)
	seqWidth := max(width-cols.row-cols.offset-cols.score-cols.fd-8, 4)
	b.WriteString(bg.Render(formatMotifHeader(cols), styles.MutedText))
	b.WriteString("\n")
	for _, row := range rows {
		style := styles.Text
		if row.FalseDiscovery {
			style = styles.FaintText
		}
		b.WriteString(bg.Render(formatMotifCells(row, cols), style))
		b.WriteString(bg.Spaces(2))
		b.WriteString(bg.Render(truncate(row.Seq, seqWidth), style))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// residueBlocksPerLine fits blocks of ten plus a separator after the
// position label.
func residueBlocksPerLine(width int) int {
	n := (width - 7) / (ResidueBlock + 1)
	return min(max(n, 1), ResidueBlocksMax)
}

// chunkResidues splits texts into consecutive groups of at most size.
func chunkResidues(texts []browse.SeqText, size int) [][]browse.SeqText {
	if size <= 0 || len(texts) == 0 {
		return nil
	}
	chunks := make([][]browse.SeqText, 0, (len(texts)+size-1)/size)
	for start := 0; start < len(texts); start += size {
		end := min(start+size, len(texts))
		chunks = append(chunks, texts[start:end])
	}
	return chunks
}

// residueRun is a maximal stretch of residues sharing a highlight state.
type residueRun struct {
	text      string
	highlight bool
}

// highlightRuns merges adjacent residues with the same highlight state so
// each run is styled once.
func highlightRuns(texts []browse.SeqText) []residueRun {
	var runs []residueRun
	var b strings.Builder
	for i, t := range texts {
		if i > 0 && t.Highlight != texts[i-1].Highlight {
			runs = append(runs, residueRun{text: b.String(), highlight: texts[i-1].Highlight})
			b.Reset()
		}
		b.WriteString(t.Residue)
	}
	if len(texts) > 0 {
		runs = append(runs, residueRun{text: b.String(), highlight: texts[len(texts)-1].Highlight})
	}
	return runs
}

func countMotifs(rows []browse.MotifRow) (confident, discarded int) {
	for _, row := range rows {
		if row.FalseDiscovery {
			discarded++
		} else {
			confident++
		}
	}
	return
}

// motifColumnWidths holds the widths of the fixed table columns.
type motifColumnWidths struct {
	row, offset, score, fd int
}

func motifColumns(rows []browse.MotifRow) motifColumnWidths {
	cols := motifColumnWidths{row: 1, offset: len("Offset"), score: len("Score"), fd: len("yes")}
	for _, row := range rows {
		cols.row = max(cols.row, len(strconv.Itoa(row.Row+1)))
		cols.offset = max(cols.offset, len(strconv.Itoa(row.Offset)))
		cols.score = max(cols.score, len(browse.FormatScore(row.Score)))
	}
	return cols
}

// formatMotifHeader renders "# | Offset | Score | FD | Sequence".
func formatMotifHeader(cols motifColumnWidths) string {
	return padLeft("#", cols.row) + "  " +
		padLeft("Offset", cols.offset) + "  " +
		padLeft("Score", cols.score) + "  " +
		padRight("FD", cols.fd) + "  " +
		"Sequence"
}

// formatMotifCells renders the fixed columns of one motif row.
func formatMotifCells(row browse.MotifRow, cols motifColumnWidths) string {
	fd := ""
	if row.FalseDiscovery {
		fd = "yes"
	}
	return padLeft(strconv.Itoa(row.Row+1), cols.row) + "  " +
		padLeft(strconv.Itoa(row.Offset), cols.offset) + "  " +
		padLeft(browse.FormatScore(row.Score), cols.score) + "  " +
		padRight(fd, cols.fd)
}
