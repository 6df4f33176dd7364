// Package batch runs conversion tasks over a fixed work set with bounded
// parallelism.
//
// A Pool owns a fixed number of workers for the duration of one Run call.
// Run submits one task per record and does not return until every task has
// finished; that barrier is what makes the caller's delete phase safe.
// Failures are isolated per task: they are reported and collected, never
// propagated, and the pool itself cannot fail.
package batch
