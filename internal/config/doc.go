// Package config handles loading lrrview's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/lrrview/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/lrrview/config.toml
//   - Results: ./results.js (resolved against the working directory)
//   - Page size: 10
//   - Log directory: ~/.local/share/lrrview
//   - Log file: <log_dir>/lrrview.log
//   - Log level: INFO
//
// # TOML Format
//
//	results = "~/lrr/out/results.js"   # or https://host/run/results.js
//	page_size = 10
//	log_dir = "~/.local/share/lrrview"
//	log_level = "INFO"
//
// All fields are optional. Local paths get tilde expansion and are made
// absolute; URLs are kept as written. A non-positive page_size is ignored.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//
// Command-line flags override the loaded values; that merge happens in the
// cmd package, not here.
package config
