// Package logtail reads the tail of carlot's log file.
//
// The TUI owns the terminal while it runs, so the standard logger is
// redirected to <data_dir>/carlot.log. Failed API requests are logged with
// their X-Request-Id, which makes "last N lines containing an id" the common
// query:
//
//	lines, err := logtail.Read(cfg.LogPath(), 50, "request 5f0c")
//
// Read keeps a ring buffer of n lines, so memory stays O(n) regardless of
// file size, and lines come back oldest first.
package logtail
