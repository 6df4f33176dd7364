package codec

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the failure class a decode or encode surfaced. The set is
// closed: conversion tasks pass kinds through to reporting unchanged and
// never recover from any of them.
type Kind int

const (
	// KindCorrupt marks input whose bitstream could not be parsed.
	KindCorrupt Kind = iota
	// KindInaccessible marks files that could not be opened, read or written.
	KindInaccessible
	// KindChannelCount marks buffers with an unusable channel layout.
	KindChannelCount
	// KindFrameCount marks buffers whose sample count is not a whole number
	// of frames.
	KindFrameCount
	// KindSampleRange marks samples that do not fit the target bit depth.
	KindSampleRange
	// KindWrongFormat marks unsupported or mismatched formats.
	KindWrongFormat
)

// String returns the short machine-readable label used in structured logs
// and the run history.
func (k Kind) String() string {
	switch k {
	case KindCorrupt:
		return "corrupt"
	case KindInaccessible:
		return "inaccessible"
	case KindChannelCount:
		return "channel_count"
	case KindFrameCount:
		return "frame_count"
	case KindSampleRange:
		return "sample_range"
	case KindWrongFormat:
		return "wrong_format"
	default:
		return "unknown"
	}
}

// phrase is the human wording used in report lines.
func (k Kind) phrase() string {
	switch k {
	case KindCorrupt:
		return "the file was corrupt"
	case KindInaccessible:
		return "the file was inaccessible"
	case KindChannelCount:
		return "the number of channels was wrong"
	case KindFrameCount:
		return "the number of frames was wrong"
	case KindSampleRange:
		return "a sample value was out of range"
	case KindWrongFormat:
		return "the format was wrong"
	default:
		return "the conversion failed"
	}
}

// Failure is the discriminated error the codec returns. Detail carries the
// codec-supplied diagnostic, Err the underlying cause when one exists.
type Failure struct {
	Kind   Kind
	Detail string
	Err    error
}

func (f *Failure) Error() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
	}
	return f.Kind.String()
}

func (f *Failure) Unwrap() error { return f.Err }

// Describe renders the human-readable report phrase, e.g.
// "the file was inaccessible (permission denied)".
func (f *Failure) Describe() string {
	detail := strings.TrimSpace(f.Detail)
	if detail == "" && f.Err != nil {
		detail = f.Err.Error()
	}
	if detail == "" {
		return f.Kind.phrase()
	}
	return fmt.Sprintf("%s (%s)", f.Kind.phrase(), detail)
}

// AsFailure unwraps err into a *Failure when the error chain contains one.
func AsFailure(err error) (*Failure, bool) {
	var failure *Failure
	if errors.As(err, &failure) {
		return failure, true
	}
	return nil, false
}

func corrupt(err error) error {
	return &Failure{Kind: KindCorrupt, Err: err}
}

func inaccessible(err error) error {
	return &Failure{Kind: KindInaccessible, Detail: detailOf(err), Err: err}
}

func channelCount(detail string) error {
	return &Failure{Kind: KindChannelCount, Detail: detail}
}

func frameCount(detail string) error {
	return &Failure{Kind: KindFrameCount, Detail: detail}
}

func sampleRange(detail string) error {
	return &Failure{Kind: KindSampleRange, Detail: detail}
}

func wrongFormat(detail string) error {
	return &Failure{Kind: KindWrongFormat, Detail: detail}
}

func detailOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
