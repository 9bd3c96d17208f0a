// Package browse holds the two view-models behind the results browser.
//
// Navigator owns the dataset and the visible page window. Detail owns the
// derived display state of the selected sequence: a per-residue list with
// highlight flags and a motif table. The two are connected by a single
// callback handed to NewNavigator:
//
//	detail := browse.NewDetail()
//	nav := browse.NewNavigator(records, browse.DefaultPageSize, detail.OnSelectSeq)
//	nav.SelectRow(0) // detail now holds the first record's derived views
//
// Every operation is synchronous and total. Out-of-range page requests yield
// empty or partial pages, and malformed motif data yields empty tables or no
// highlighting. Derived state is replaced wholesale on each change, and
// subscribers registered with Subscribe receive the full replacement.
//
// A motif covers MotifWidth residues for highlighting, but its table row
// spans to the next motif's offset (or the end of the sequence), so the rows
// joined in order reproduce the sequence from the first motif onwards.
package browse
