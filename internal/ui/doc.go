// Package ui provides the terminal user interface for lrrview.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model holds the view state and talks to
// the rest of lrrview through two seams:
//
//   - state.Store: polled on a tick until the background load settles
//   - browse.Navigator and browse.Detail: built once from the loaded records
//
// The Navigator is constructed with Detail.OnSelectSeq as its selection
// callback, so pressing enter on a row both marks it active and rebuilds the
// detail pane. Both view-models publish replacement states to subscribers;
// the UI subscribes only for debug logging and otherwise reads their
// accessors when rendering.
//
// # Package Structure
//
//   - app.go: Model, Update loop, key dispatch and Run
//   - list.go: sequence list pane, page dots and the titled box frame
//   - detail.go: residue blocks with highlighting and the motif table
//   - header.go: status header and footer (key hints or active prompt)
//   - prompt.go: go-to-page and page-size inputs
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings
//   - theme.go: color palettes and Lipgloss styles
//   - style_helpers.go: background-consistent rendering helpers
//
// # Layout
//
//	┌ header: lrrview  Sequences: 25  Page 2/3  Size: 10  results.js ─────┐
//	┌─ Sequences (25) ─┐┌──────────────── Details ─────────────────────────┐
//	│ ● 11 P12345 · 3  ││ P12345                                           │
//	│   12 Q99999 · 0  ││ Length 245   Motifs 3                            │
//	│   ...            ││  1 MKVLLLAIAL LLSGC...                           │
//	│ •••  2/3         ││ #  Offset  Score  FD   Sequence                  │
//	└──────────────────┘└──────────────────────────────────────────────────┘
//	 j/down move · enter show · ←/[ prev · →/] next · g go to · ...
//
// # Key Bindings
//
//   - j/k: Move the cursor within the page (scroll when the detail pane is focused)
//   - enter: Show the sequence under the cursor
//   - ←/[ and →/]: Previous and next page (the cursor resets to the first row)
//   - g: Go to a 1-based page number
//   - s: Change the page size (saved to prefs)
//   - tab: Switch focus between list and detail
//   - T: Cycle theme (saved to prefs)
//   - h/?: Help overlay
//   - e or ctrl+c: Exit
//   - esc: Cancel a prompt
package ui
