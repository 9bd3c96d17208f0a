// Package app is the composition root for lrrview.
//
// Run wires configuration, saved preferences, the file logger, the shared
// state.Store and the terminal UI together:
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read ~/.config/lrrview/config.toml
//	       ├─────> prefs.Load()         Theme and page size from last session
//	       ├─────> logging.NewLogger()  JSON log at <log_dir>/lrrview.log
//	       ├─────> StartLoader()        Fetch + decode results in background
//	       └─────> ui.Run()             Start TUI (blocks)
//
// # Loading
//
// The results artifact is read once. StartLoader marks the store pending,
// fetches the file or URL, decodes it and publishes either the records or the
// error. The UI polls the store until the load settles, so a slow download
// never blocks the first frame.
//
// # Error Handling
//
// Config parse failures and an unwritable log directory are fatal and
// returned from Run. A missing or malformed results artifact is not: the UI
// starts anyway and shows the error in its header.
//
// # Page Size
//
// The effective page size is the first positive value of the --page-size
// flag, the saved preference and the config file.
package app
