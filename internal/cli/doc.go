// Package cli defines the Cobra command tree for the pfio CLI. Each file in
// this package registers one top-level command (demo, cat, ls, window, etc.)
// with the root command. Commands delegate to the facade packages and only
// handle flag parsing, output formatting and logging.
package cli
