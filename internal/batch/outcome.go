package batch

import (
	"time"

	"rewav/internal/codec"
	"rewav/internal/discovery"
)

// Outcome is the per-task result the dispatcher aggregates. A task either
// succeeds (Err nil, Output set) or fails with a codec failure tagged with
// the path it applies to; it never aborts siblings.
type Outcome struct {
	Record discovery.Record
	// Output is the written wav path on success.
	Output string
	// FailedPath is the source path for decode failures and the destination
	// path for encode failures.
	FailedPath string
	Err        error
	Duration   time.Duration
	Finished   time.Time
}

// OK reports whether the conversion succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// Kind returns the failure kind label, or "" for successful outcomes.
func (o Outcome) Kind() string {
	if o.Err == nil {
		return ""
	}
	if failure, ok := codec.AsFailure(o.Err); ok {
		return failure.Kind.String()
	}
	return "unknown"
}

// Summary tallies outcomes for reporting.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Summarize counts successes and failures in outcomes.
func Summarize(outcomes []Outcome) Summary {
	summary := Summary{Total: len(outcomes)}
	for _, outcome := range outcomes {
		if outcome.OK() {
			summary.Succeeded++
		} else {
			summary.Failed++
		}
	}
	return summary
}
