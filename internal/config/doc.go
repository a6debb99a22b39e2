// Package config loads, normalizes, and validates the TOML configuration
// for the cueburn CLI.
//
// Configuration is explicit parameter passing: the loaded Config is
// converted into layout.Options and ass.Style values handed to call sites.
// Nothing in the pipeline reads ambient global state.
package config
