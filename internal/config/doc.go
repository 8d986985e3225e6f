// Package config manages user-level settings stored at ~/.pfio/config.yaml.
// Load returns an explicit *Config built from defaults, the config file and
// PFIO_* environment variables; callers pass that value down instead of
// reading package state.
package config
