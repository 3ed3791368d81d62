// Package config loads the liftbook configuration file.
//
// # Resolution
//
// Load follows this order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/liftbook/config.toml
//  3. If the file doesn't exist, return Default()
//  4. If the file exists but fields are missing or blank, use defaults per field
//
// # Defaults
//
//   - data_dir: ~/.local/share/liftbook (programs under data/<id>.json)
//   - data_url: unset; when set it replaces data_dir as the program source
//   - programs: the built-in catalog
//   - fetch_timeout_seconds: 10
//   - listen_addr: 127.0.0.1:8480
//   - log_file: ~/.local/state/liftbook/liftbook.log
//   - log_level: info
//
// # TOML Format
//
//	data_url = "https://example.org/workouts/"
//	programs = ["arturos-workout", "mohamed-ali-workout"]
//	fetch_timeout_seconds = 5
//	listen_addr = ":8480"
//	log_level = "debug"
//
// Paths accept a leading tilde. Program identifiers must be lowercase
// slugs; an invalid one fails the load rather than being skipped, so a typo
// in the catalog never silently drops a program.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML syntax errors and invalid program identifiers.
package config
