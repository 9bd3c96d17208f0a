// Package results reads the LRR prediction artifact produced by the upstream
// prediction pipeline.
//
// # Format
//
// The pipeline writes results.js next to its HTML report:
//
//	let results = [{"seq_id": "AT1G01", "seq": "MKL...", "motifs_16": [
//		{"offset": 12, "score": 0.91, "length": 16, "false_discovery": false}
//	]}];
//
// Decode accepts that script form or the bare JSON array. Records are never
// mutated after decoding; helpers such as SortedMotifs work on copies.
//
// # Sources
//
// Source.Fetch reads a local path or an http(s) URL. Remote fetches honour the
// context, send a User-Agent and treat any status >= 400 as an error.
//
// # Report
//
// WriteText renders the plain-text report used by `lrrview print`:
//
//	Prediction result for seq AT1G01:
//	LRR offset 12, LxxLxLxxNxLsGxIP, score 0.91
package results
