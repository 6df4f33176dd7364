package batch

import (
	"log/slog"
	"runtime"
	"sync"

	"rewav/internal/codec"
	"rewav/internal/discovery"
	"rewav/internal/logging"
)

// Codec is the decode/encode collaborator a Pool drives. codec.Library is
// the production implementation; tests substitute doubles.
type Codec interface {
	Decode(path string) (*codec.Buffer, error)
	Encode(path string, buf *codec.Buffer) error
}

// Pool dispatches conversion tasks across a bounded set of workers. The
// worker count is fixed at construction; no workers outlive a Run call.
type Pool struct {
	codec   Codec
	logger  *slog.Logger
	workers int
}

// NewPool builds a pool with the effective worker count for
// requestedWorkers; see ResolveWorkers.
func NewPool(c Codec, requestedWorkers int, logger *slog.Logger) *Pool {
	return &Pool{
		codec:   c,
		logger:  logging.NewComponentLogger(logger, "batch"),
		workers: ResolveWorkers(requestedWorkers),
	}
}

// Workers reports the effective worker count.
func (p *Pool) Workers() int { return p.workers }

// ResolveWorkers maps a requested worker count to the effective pool size.
// Zero or negative requests use all available parallelism; positive requests
// are capped at the host's CPU count so the pool never oversubscribes.
func ResolveWorkers(requested int) int {
	available := runtime.NumCPU()
	if available < 1 {
		available = 1
	}
	if requested < 1 {
		return available
	}
	if requested < available {
		return requested
	}
	return available
}

// Run converts every record and blocks until all tasks have finished,
// successfully or not. Workers pull records in submission order but may
// complete them in any order; results are indexed by record. The work set
// is never mutated and no task observes another's state.
func (p *Pool) Run(records []discovery.Record) []Outcome {
	outcomes := make([]Outcome, len(records))

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				outcomes[idx] = p.convert(records[idx])
			}
		}()
	}

	for idx := range records {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
