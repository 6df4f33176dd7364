// Package discovery walks a directory tree and produces the batch work set.
//
// Matching is per extension against a fixed, case-sensitive allow-list; the
// result is fully materialized before dispatch so the caller can report the
// total and reuse the set for the delete phase. Discovery never fails as a
// whole: a pattern that cannot be enumerated or a path that is not valid
// UTF-8 is skipped and the rest of the set survives.
package discovery
