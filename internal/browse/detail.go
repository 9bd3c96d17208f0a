package browse

import "github.com/five82/lrrview/internal/results"

// MotifRow is one line of the motif table.
type MotifRow struct {
	Row            int
	Seq            string // residues from this motif's offset up to the next motif's offset
	Offset         int
	Score          float64
	FalseDiscovery bool
}

// SeqText is a single residue of the selected sequence.
type SeqText struct {
	Offset    int
	Residue   string
	Highlight bool
}

// DetailState is the full derived view published after each selection.
type DetailState struct {
	Selected  results.Sequence
	MotifRows []MotifRow
	SeqTexts  []SeqText
	Version   uint64
}

// Detail derives the highlighted residue list and the motif table for the
// selected sequence. Both are rebuilt from scratch on every selection.
type Detail struct {
	selected     results.Sequence
	hasSelection bool
	motifRows    []MotifRow
	seqTexts     []SeqText
	version      uint64
	listeners    []func(DetailState)
}

// NewDetail returns a renderer in the "no selection" state.
func NewDetail() *Detail {
	return &Detail{}
}

// Subscribe registers fn to receive the replacement state after every selection.
func (d *Detail) Subscribe(fn func(DetailState)) {
	if fn == nil {
		return
	}
	d.listeners = append(d.listeners, fn)
}

// OnSelectSeq stores seq as the current selection and rebuilds both derived views.
func (d *Detail) OnSelectSeq(seq results.Sequence) {
	rows := buildMotifRows(seq)
	texts := buildSeqTexts(seq)

	d.selected = seq
	d.hasSelection = true
	d.motifRows = rows
	d.seqTexts = texts
	d.version++

	if len(d.listeners) == 0 {
		return
	}
	st := d.State()
	for _, fn := range d.listeners {
		fn(st)
	}
}

// Selected returns the current selection, an empty record before the first one.
func (d *Detail) Selected() results.Sequence { return d.selected }

// HasSelection reports whether OnSelectSeq has been called.
func (d *Detail) HasSelection() bool { return d.hasSelection }

// MotifRows returns the motif table. The slice must not be modified.
func (d *Detail) MotifRows() []MotifRow { return d.motifRows }

// SeqTexts returns the per-residue view. The slice must not be modified.
func (d *Detail) SeqTexts() []SeqText { return d.seqTexts }

// Version increments on every selection, including reselecting the same record.
func (d *Detail) Version() uint64 { return d.version }

// State returns the current derived view.
func (d *Detail) State() DetailState {
	return DetailState{
		Selected:  d.selected,
		MotifRows: d.motifRows,
		SeqTexts:  d.seqTexts,
		Version:   d.version,
	}
}

// buildMotifRows slices each motif up to the start of the next one, not to a
// fixed width; the last motif runs to the end of the sequence.
func buildMotifRows(seq results.Sequence) []MotifRow {
	motifs := seq.Motifs
	rows := make([]MotifRow, 0, len(motifs))
	for i, m := range motifs {
		end := seq.Len()
		if i < len(motifs)-1 {
			end = motifs[i+1].Offset
		}
		rows = append(rows, MotifRow{
			Row:            i,
			Seq:            seq.Slice(m.Offset, end),
			Offset:         m.Offset,
			Score:          m.Score,
			FalseDiscovery: m.FalseDiscovery,
		})
	}
	return rows
}

// buildSeqTexts marks residues covered by any motif that is not a false discovery.
func buildSeqTexts(seq results.Sequence) []SeqText {
	residues := []rune(seq.Seq)
	n := len(residues)
	highlight := make([]bool, n)
	for _, m := range seq.Motifs {
		if m.FalseDiscovery {
			continue
		}
		from := max(m.Offset, 0)
		to := min(m.Offset+results.MotifWidth, n)
		for pos := from; pos < to; pos++ {
			highlight[pos] = true
		}
	}

	texts := make([]SeqText, n)
	for i := 0; i < n; i++ {
		texts[i] = SeqText{
			Offset:    i,
			Residue:   string(residues[i]),
			Highlight: highlight[i],
		}
	}
	return texts
}
