// Package config loads the application configuration from environment
// variables, command-line flags and an optional JSON file, merges the three
// sources, applies defaults and validates the result.
//
// Environment variables take the lowest priority, flags override them, and
// the JSON file (when specified via CONFIG or -c/-config) overrides both for
// its non-zero fields.
package config
