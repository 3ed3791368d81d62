// Package app is the composition root for liftbook.
//
// It loads the config, builds the program source (HTTP when data_url is
// set, otherwise the local data dir), wraps it in a catalog, and hands the
// pieces to one of three front ends:
//
//   - Run starts the Bubble Tea TUI. Logs go to the configured log file.
//   - Serve starts the HTML server and a background catalog refresher.
//   - List loads the catalog once and prints it as a table.
//
// The refresher in poller.go reloads the catalog into a shared state.Store on
// a fixed interval and backs off while every program fails to load.
package app
