package instrument

import (
	"io"
	"log"
	"runtime"
	"time"

	"github.com/katalvlaran/tspbrute/tsp"
)

// Report is the outcome of one observed run.
type Report struct {
	RunID     string
	Cities    int
	Evaluated int
	Elapsed   time.Duration
	MemBefore uint64 // bytes
	MemAfter  uint64 // bytes
}

// KB converts bytes to kilobytes.
func KB(b uint64) float64 { return float64(b) / 1024.0 }

// MemDeltaKB returns MemAfter − MemBefore in KB (negative if memory shrank).
func (r Report) MemDeltaKB() float64 { return KB(r.MemAfter) - KB(r.MemBefore) }

// Option customizes a Recorder.
type Option func(*Recorder)

// WithSampler replaces the memory sampler (bytes). Panics on nil.
func WithSampler(fn func() uint64) Option {
	if fn == nil {
		panic("instrument: WithSampler(nil)")
	}

	return func(r *Recorder) { r.sample = fn }
}

// WithClock replaces the wall clock. Panics on nil.
func WithClock(fn func() time.Time) Option {
	if fn == nil {
		panic("instrument: WithClock(nil)")
	}

	return func(r *Recorder) { r.now = fn }
}

// Recorder is a tsp.Observer that samples time and memory around a run and
// logs one key=value line per phase.
type Recorder struct {
	runID   string
	logger  *log.Logger
	sample  func() uint64
	now     func() time.Time
	started time.Time
	report  Report
}

var _ tsp.Observer = (*Recorder)(nil)

// NewRecorder returns a Recorder tagging its log lines with runID.
// A nil logger discards output.
func NewRecorder(logger *log.Logger, runID string, opts ...Option) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	r := &Recorder{
		runID:  runID,
		logger: logger,
		sample: heapAlloc,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// RunStarted samples memory, then starts the clock.
func (r *Recorder) RunStarted(n int) {
	r.report = Report{RunID: r.runID, Cities: n, MemBefore: r.sample()}
	r.logger.Printf("run_id=%s op=solve phase=start cities=%d mem_kb=%.2f",
		r.runID, n, KB(r.report.MemBefore))
	r.started = r.now()
}

// RunFinished stops the clock, then samples memory.
func (r *Recorder) RunFinished(res tsp.Result) {
	r.report.Elapsed = r.now().Sub(r.started)
	r.report.MemAfter = r.sample()
	r.report.Evaluated = res.Evaluated
	r.logger.Printf("run_id=%s op=solve phase=finish dur=%dms evaluated=%d distance=%.2f mem_kb=%.2f mem_delta_kb=%.2f",
		r.runID, r.report.Elapsed.Milliseconds(), res.Evaluated, res.Distance,
		KB(r.report.MemAfter), r.report.MemDeltaKB())
}

// Report returns the measurements of the last observed run.
func (r *Recorder) Report() Report { return r.report }

// heapAlloc returns the bytes of allocated heap objects.
func heapAlloc() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return ms.HeapAlloc
}
