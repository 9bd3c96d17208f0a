package results

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"
)

// MotifWidth is the fixed number of residues a predicted motif covers.
const MotifWidth = 16

// Motif is one predicted LRR motif inside a sequence.
type Motif struct {
	Offset         int     `json:"offset"`
	Score          float64 `json:"score"`
	Length         int     `json:"length,omitempty"`
	FalseDiscovery bool    `json:"false_discovery"`
}

// Sequence is a single predicted record as written by the prediction pipeline.
// Offsets and lengths count residues (runes), not bytes.
type Sequence struct {
	ID     string  `json:"seq_id"`
	Seq    string  `json:"seq"`
	Motifs []Motif `json:"motifs_16"`
}

// Len returns the number of residues in the sequence.
func (s Sequence) Len() int {
	return utf8.RuneCountInString(s.Seq)
}

// Slice returns seq[start:end] clipped to the sequence bounds. An inverted
// range yields an empty string.
func (s Sequence) Slice(start, end int) string {
	residues := []rune(s.Seq)
	n := len(residues)
	start = clamp(start, 0, n)
	end = clamp(end, 0, n)
	if start >= end {
		return ""
	}
	return string(residues[start:end])
}

// SortedMotifs returns a copy of the motifs ordered by offset.
func (s Sequence) SortedMotifs() []Motif {
	out := make([]Motif, len(s.Motifs))
	copy(out, s.Motifs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Offset < out[j].Offset
	})
	return out
}

// Decode parses a results artifact. Both a bare JSON array and the
// `let results = [...];` script emitted for the HTML report are accepted.
func Decode(data []byte) ([]Sequence, error) {
	payload := unwrapScript(data)
	if len(payload) == 0 {
		return nil, fmt.Errorf("decode results: empty payload")
	}
	var records []Sequence
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	return records, nil
}

var scriptKeywords = [][]byte{[]byte("let "), []byte("var "), []byte("const ")}

func unwrapScript(data []byte) []byte {
	trimmed := bytes.TrimSpace(data)
	for _, kw := range scriptKeywords {
		if !bytes.HasPrefix(trimmed, kw) {
			continue
		}
		eq := bytes.IndexByte(trimmed, '=')
		if eq < 0 {
			return nil
		}
		trimmed = bytes.TrimSpace(trimmed[eq+1:])
		break
	}
	trimmed = bytes.TrimSuffix(trimmed, []byte(";"))
	return bytes.TrimSpace(trimmed)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
