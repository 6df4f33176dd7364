// Package history persists finished runs and their per-file outcomes in
// SQLite.
//
// The database is a local record, not coordination state: it is written once
// per run after the batch barrier and read back by the history subcommand.
// Recording failures are reported to the caller but must never fail a run.
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package history
