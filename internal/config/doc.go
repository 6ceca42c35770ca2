// Package config loads, normalizes, and validates tfoods configuration.
//
// Configuration is TOML. Load starts from repository defaults, overlays the
// file when one exists, expands every path field, and validates the result,
// so the rest of the program never sees a partially-populated Config.
package config
