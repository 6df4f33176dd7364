// Package config owns the immutable per-run configuration.
//
// Values come from an optional TOML file with command line flags layered on
// top; Load applies defaults, expands paths and validates before anything
// else in the program runs. A failed load aborts the run before any
// filesystem work happens.
package config
