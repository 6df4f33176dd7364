// Command rewav batch-converts audio files under a folder to wav.
//
// The root command discovers matching files, converts them on a bounded
// worker pool, and optionally deletes the originals once the whole batch has
// finished. Subcommands list recorded runs and manage configuration.
package main
