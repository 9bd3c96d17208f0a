package results

import (
	"fmt"
	"io"
)

// WriteText prints one block per record, one line per motif, in offset order.
// Blocks are separated by a blank line.
func WriteText(w io.Writer, records []Sequence, width int) error {
	if width <= 0 {
		width = MotifWidth
	}
	for i, rec := range records {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Prediction result for seq %s:\n", rec.ID); err != nil {
			return err
		}
		for _, m := range rec.SortedMotifs() {
			_, err := fmt.Fprintf(w, "LRR offset %d, %s, score %v\n",
				m.Offset, rec.Slice(m.Offset, m.Offset+width), m.Score)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
