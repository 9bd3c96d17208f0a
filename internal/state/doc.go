// Package state hands the loaded results dataset from the loader to the UI.
//
// # Overview
//
// The dataset is loaded once, in a background goroutine, so the TUI can come
// up immediately and show "Loading results..." while a large file is parsed
// or a remote artifact is fetched. Store is the only point where the two
// goroutines meet:
//
//	Loader:                        UI:
//	┌────────────────────┐        ┌─────────────────────┐
//	│ store.Begin(src)   │        │ tick                │
//	│ source.Fetch()     │        │ store.Snapshot()    │
//	│ store.Update(...)  │──────→ │ build Navigator     │
//	└────────────────────┘ (mutex)└─────────────────────┘
//
// # Update Semantics
//
//	store.Update(records, elapsed, nil) // first success: dataset fixed for good
//	store.Update(nil, 0, err)           // failure: error recorded, still not loaded
//
// Once a dataset has been stored, later Update calls are ignored. The browse
// view-models assume the dataset never changes during their lifetime, and
// this is where that guarantee is enforced.
//
// # Copying
//
// Snapshot returns a fresh record slice and a wrapped copy of the error. The
// Sequence values share their strings and motif slices with the store; they
// are never written after decoding.
//
// # Testing Considerations
//
// The zero Store is ready to use and reports Pending() until the first Update.
package state
