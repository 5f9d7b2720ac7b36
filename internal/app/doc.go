// Package app provides the composition root for carlot.
//
// # Overview
//
// Run wires configuration, the storage backend, the vehicle store, the API
// client and the Bubble Tea UI together, then blocks until the user quits.
//
// # Startup
//
//  1. Validate the resolved config.Config (file values plus CLI overrides)
//  2. Redirect the standard logger to <data_dir>/carlot.log
//  3. Load prefs for the saved theme
//  4. Open storage: sqlite at <data_dir>/carlot.db, or the [state] table of
//     prefs.toml when storage = "toml"
//  5. Build state.Store, which restores filters, sort and page
//  6. Build the API client and start the UI with a simulated or remote load
//
// Storage is closed when Run returns.
//
// # Helpers
//
// OpenStorage, MemoryStorage, NewClient and Query are shared with the cli
// package so one-shot commands build the same components as the TUI.
package app
