package browse

import (
	"strings"
	"testing"

	"github.com/five82/lrrview/internal/results"
)

func highlighted(texts []SeqText) []int {
	var out []int
	for _, t := range texts {
		if t.Highlight {
			out = append(out, t.Offset)
		}
	}
	return out
}

func TestDetail_InitialState(t *testing.T) {
	d := NewDetail()
	if d.HasSelection() {
		t.Fatalf("HasSelection = true before any selection")
	}
	if d.Selected().Seq != "" || len(d.MotifRows()) != 0 || len(d.SeqTexts()) != 0 {
		t.Fatalf("initial state not empty: %+v", d.State())
	}
}

func TestOnSelectSeq_MotifRowsRunToNextOffset(t *testing.T) {
	seq := results.Sequence{
		Seq: "ABCDEFGHIJ",
		Motifs: []results.Motif{
			{Offset: 0, Score: 0.5},
			{Offset: 4, Score: 0.9, FalseDiscovery: true},
		},
	}
	d := NewDetail()
	d.OnSelectSeq(seq)

	rows := d.MotifRows()
	if len(rows) != 2 {
		t.Fatalf("len(MotifRows) = %d, want 2", len(rows))
	}
	if rows[0].Seq != "ABCD" || rows[0].Row != 0 || rows[0].Offset != 0 || rows[0].Score != 0.5 {
		t.Fatalf("row 0 = %+v, want ABCD at 0 score 0.5", rows[0])
	}
	if rows[1].Seq != "EFGHIJ" || rows[1].Row != 1 || rows[1].Offset != 4 || !rows[1].FalseDiscovery {
		t.Fatalf("row 1 = %+v, want EFGHIJ at 4 flagged", rows[1])
	}
}

func TestOnSelectSeq_HighlightIgnoresFalseDiscoveries(t *testing.T) {
	// Motif 0 covers [0,16), which spans the whole 10-residue sequence; the
	// false discovery at 4 contributes nothing.
	seq := results.Sequence{
		Seq: "ABCDEFGHIJ",
		Motifs: []results.Motif{
			{Offset: 0, Score: 0.5},
			{Offset: 4, Score: 0.9, FalseDiscovery: true},
		},
	}
	d := NewDetail()
	d.OnSelectSeq(seq)

	texts := d.SeqTexts()
	if len(texts) != 10 {
		t.Fatalf("len(SeqTexts) = %d, want 10", len(texts))
	}
	if got := highlighted(texts); len(got) != 10 {
		t.Fatalf("highlighted = %v, want all 10 residues", got)
	}
	if texts[3].Residue != "D" || texts[3].Offset != 3 {
		t.Fatalf("texts[3] = %+v, want D at 3", texts[3])
	}
}

func TestOnSelectSeq_HighlightMatchesWindowRule(t *testing.T) {
	seq := results.Sequence{
		Seq: strings.Repeat("L", 60),
		Motifs: []results.Motif{
			{Offset: 2},
			{Offset: 20, FalseDiscovery: true},
			{Offset: 40},
			{Offset: 55},
		},
	}
	d := NewDetail()
	d.OnSelectSeq(seq)

	for _, st := range d.SeqTexts() {
		want := false
		for _, m := range seq.Motifs {
			if !m.FalseDiscovery && m.Offset <= st.Offset && st.Offset < m.Offset+results.MotifWidth {
				want = true
			}
		}
		if st.Highlight != want {
			t.Fatalf("residue %d highlight = %v, want %v", st.Offset, st.Highlight, want)
		}
	}
	if d.SeqTexts()[20].Highlight {
		t.Fatalf("residue 20 highlighted although only the false discovery covers it")
	}
}

func TestOnSelectSeq_RowsReconstructSequence(t *testing.T) {
	seq := results.Sequence{
		Seq: "MKLLSNQLSGEIPSSLGNLKNLQVLDLSNNKLSGPIP",
		Motifs: []results.Motif{
			{Offset: 3}, {Offset: 9}, {Offset: 12}, {Offset: 30},
		},
	}
	d := NewDetail()
	d.OnSelectSeq(seq)

	var b strings.Builder
	for _, r := range d.MotifRows() {
		b.WriteString(r.Seq)
	}
	if got, want := b.String(), seq.Seq[3:]; got != want {
		t.Fatalf("joined rows = %q, want %q", got, want)
	}
}

func TestOnSelectSeq_DegenerateInput(t *testing.T) {
	d := NewDetail()

	d.OnSelectSeq(results.Sequence{Seq: "ABC"})
	if len(d.MotifRows()) != 0 {
		t.Fatalf("MotifRows = %v, want empty", d.MotifRows())
	}
	if got := highlighted(d.SeqTexts()); len(got) != 0 {
		t.Fatalf("highlighted = %v, want none", got)
	}

	d.OnSelectSeq(results.Sequence{
		Seq:    "ABC",
		Motifs: []results.Motif{{Offset: 50}, {Offset: -20}},
	})
	rows := d.MotifRows()
	if len(rows) != 2 || rows[0].Seq != "" || rows[1].Seq != "ABC" {
		t.Fatalf("rows = %+v, want empty then ABC", rows)
	}
	if got := highlighted(d.SeqTexts()); len(got) != 0 {
		t.Fatalf("highlighted = %v, want none for out-of-range motifs", got)
	}

	d.OnSelectSeq(results.Sequence{})
	if len(d.SeqTexts()) != 0 || len(d.MotifRows()) != 0 {
		t.Fatalf("empty sequence produced derived rows")
	}
	if !d.HasSelection() {
		t.Fatalf("HasSelection = false after selecting an empty record")
	}
}

func TestOnSelectSeq_IndexesResiduesByRune(t *testing.T) {
	d := NewDetail()
	d.OnSelectSeq(results.Sequence{Seq: "AαBβ", Motifs: []results.Motif{{Offset: 1}}})

	texts := d.SeqTexts()
	if len(texts) != 4 {
		t.Fatalf("got %d residues, want 4", len(texts))
	}
	if texts[1].Residue != "α" || texts[3].Residue != "β" {
		t.Fatalf("residues = %+v, want whole runes", texts)
	}
	if texts[0].Highlight || !texts[1].Highlight || !texts[3].Highlight {
		t.Fatalf("highlight = %+v, want runes 1..3", texts)
	}
	if rows := d.MotifRows(); rows[0].Seq != "αBβ" {
		t.Fatalf("row seq = %q, want αBβ", rows[0].Seq)
	}
}

func TestOnSelectSeq_ReplacesPreviousState(t *testing.T) {
	d := NewDetail()
	var events []DetailState
	d.Subscribe(func(st DetailState) { events = append(events, st) })

	first := results.Sequence{ID: "a", Seq: strings.Repeat("A", 40), Motifs: []results.Motif{{Offset: 0}, {Offset: 20}}}
	second := results.Sequence{ID: "b", Seq: "CC"}

	d.OnSelectSeq(first)
	d.OnSelectSeq(second)

	if d.Selected().ID != "b" || len(d.MotifRows()) != 0 || len(d.SeqTexts()) != 2 {
		t.Fatalf("state after second selection = %+v", d.State())
	}
	if d.Version() != 2 {
		t.Fatalf("Version = %d, want 2", d.Version())
	}
	if len(events) != 2 || events[0].Selected.ID != "a" || len(events[0].MotifRows) != 2 || events[1].Version != 2 {
		t.Fatalf("events = %+v, want a then b", events)
	}
}

func TestNavigatorWiredToDetail(t *testing.T) {
	d := NewDetail()
	n := NewNavigator([]results.Sequence{
		{ID: "x", Seq: "ABCDEFGHIJKLMNOPQRST", Motifs: []results.Motif{{Offset: 2}}},
	}, 10, d.OnSelectSeq)

	n.SelectRow(0)
	if d.Selected().ID != "x" {
		t.Fatalf("detail selection = %q, want x", d.Selected().ID)
	}
	if got := highlighted(d.SeqTexts()); len(got) != 16 || got[0] != 2 || got[15] != 17 {
		t.Fatalf("highlighted = %v, want 2..17", got)
	}
}

func TestFormatScore(t *testing.T) {
	tests := map[float64]string{
		0.5:      "0.500",
		0.91234:  "0.912",
		0.827419: "0.827",
		1:        "1.000",
		-0.25:    "-0.250",
	}
	for in, want := range tests {
		if got := FormatScore(in); got != want {
			t.Fatalf("FormatScore(%v) = %q, want %q", in, got, want)
		}
	}
}
