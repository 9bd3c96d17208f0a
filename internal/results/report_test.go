package results

import (
	"bytes"
	"testing"
)

func TestWriteText(t *testing.T) {
	records := []Sequence{
		{
			ID:  "first",
			Seq: "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
			Motifs: []Motif{
				{Offset: 20, Score: 0.25},
				{Offset: 2, Score: 0.5},
			},
		},
		{ID: "second", Seq: "MKL"},
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, records, 4); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}

	want := "Prediction result for seq first:\n" +
		"LRR offset 2, CDEF, score 0.5\n" +
		"LRR offset 20, UVWX, score 0.25\n" +
		"\n" +
		"Prediction result for seq second:\n"
	if got := buf.String(); got != want {
		t.Fatalf("WriteText =\n%q\nwant\n%q", got, want)
	}
	if records[0].Motifs[0].Offset != 20 {
		t.Fatalf("WriteText reordered the dataset")
	}
}

func TestWriteText_DefaultWidthClipsAtEnd(t *testing.T) {
	records := []Sequence{{ID: "s", Seq: "ABCDEFGHIJ", Motifs: []Motif{{Offset: 4, Score: 1}}}}

	var buf bytes.Buffer
	if err := WriteText(&buf, records, 0); err != nil {
		t.Fatalf("WriteText returned error: %v", err)
	}
	want := "Prediction result for seq s:\nLRR offset 4, EFGHIJ, score 1\n"
	if got := buf.String(); got != want {
		t.Fatalf("WriteText = %q, want %q", got, want)
	}
}
