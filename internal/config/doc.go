// Package config loads, normalizes, and validates reflow tool settings.
//
// Settings cover the ambient knobs of a run (log level and format, hash
// worker count, pass ceiling, cache directory override) and live in a TOML
// file, resolved from an explicit flag, ./reflow.toml, or
// ~/.config/reflow/config.toml. The taskfile itself is a separate format owned
// by the taskfile package.
//
// Always obtain settings through Load so downstream code receives expanded
// paths, canonical values, and clear validation errors.
package config
