package batch

import (
	"fmt"
	"time"

	"rewav/internal/codec"
	"rewav/internal/discovery"
	"rewav/internal/logging"
)

// Conventional CD-quality defaults applied when a decoder reports the
// "unset" sentinels for formats without self-describing metadata.
const (
	defaultBitDepth   = 16
	defaultSampleRate = 44100
)

// convert is the unit of work for one record: decode, normalize, encode.
// Failures terminate only this task and are returned for aggregation after
// being reported as a single log line.
func (p *Pool) convert(record discovery.Record) Outcome {
	start := time.Now()
	p.logger.Info("converting", logging.String(logging.FieldFile, record.Path))

	buf, err := p.codec.Decode(record.Path)
	if err != nil {
		return p.fail(record, record.Path, err, start)
	}

	if buf.BitDepth == 0 {
		buf.BitDepth = defaultBitDepth
		buf.Format = codec.FormatS16
	}
	if buf.SampleRate == 0 {
		buf.SampleRate = defaultSampleRate
	}

	output := record.OutputPath()
	if err := p.codec.Encode(output, buf); err != nil {
		return p.fail(record, output, err, start)
	}

	return Outcome{
		Record:   record,
		Output:   output,
		Duration: time.Since(start),
		Finished: time.Now(),
	}
}

// fail emits the human-readable report line and packages the outcome. The
// line is written atomically by the logging handler, so reports from
// concurrent workers never corrupt each other.
func (p *Pool) fail(record discovery.Record, path string, err error, start time.Time) Outcome {
	message := err.Error()
	kind := "unknown"
	if failure, ok := codec.AsFailure(err); ok {
		message = failure.Describe()
		kind = failure.Kind.String()
	}
	p.logger.Error(fmt.Sprintf("error converting %s: %s", path, message),
		logging.String(logging.FieldKind, kind))

	return Outcome{
		Record:     record,
		FailedPath: path,
		Err:        err,
		Duration:   time.Since(start),
		Finished:   time.Now(),
	}
}
