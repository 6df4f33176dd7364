// Package logging assembles the structured slog loggers used across rewav.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes small attr helpers so components emit log lines with
// a consistent shape. The console handler performs exactly one Write per
// record under a mutex, which is what keeps report lines from concurrent
// conversion workers intact.
//
// Prefer these constructors over hand-rolled slog setup.
package logging
