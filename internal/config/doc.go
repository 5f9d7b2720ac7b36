// Package config handles loading and parsing the carlot configuration file.
//
// # Overview
//
// This package reads carlot's TOML configuration to discover the vehicle API
// endpoint, its credential, the server-side model filter, the batch size, and
// where user preferences are persisted.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/carlot/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Command-line flags and CARLOT_* environment variables are layered on top
// by the cli package.
//
// # Default Values
//
//   - Config file: ~/.config/carlot/config.toml
//   - API endpoint: https://api.api-ninjas.com
//   - Model filter: camry
//   - Limit: 50
//   - Storage: sqlite
//   - Data directory: ~/.local/share/carlot
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "https://api.api-ninjas.com"
//	api_key = "..."
//	model = "camry"
//	limit = 50
//	storage = "sqlite"   # or "toml" to keep state in prefs.toml
//	data_dir = "~/.local/share/carlot"
//	simulated = false
//
// Every field is optional. An explicitly empty model disables the
// server-side filter. Tilde expansion is performed on data_dir.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - An unknown storage backend
//
// Missing config files are NOT an error. carlot works out of the box on the
// simulated dataset without any configuration.
package config
