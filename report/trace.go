package report

import (
	"io"

	"github.com/katalvlaran/tspbrute/tsp"
)

// Trace writes one line per tested tour: labels, distance (2 decimals) and
// evaluation time in seconds (6 decimals), comma separated.
type Trace struct {
	stickyWriter
	lines int
}

var _ tsp.Sink = (*Trace)(nil)

// NewTrace returns a Trace writing to w. Wrap w in a bufio.Writer for file
// output; Trace does not flush.
func NewTrace(w io.Writer) *Trace {
	return &Trace{stickyWriter: stickyWriter{w: w}}
}

// Record appends the line for ev.
func (t *Trace) Record(ev tsp.Evaluation) {
	t.printf("%s, %.2f, %.6f\n", tsp.FormatLabels(ev.Tour), ev.Distance, ev.Elapsed.Seconds())
	t.lines++
}

// Finalize is a no-op; the trace holds tested tours only.
func (t *Trace) Finalize(tsp.Result) {}

// Lines returns how many records were written.
func (t *Trace) Lines() int { return t.lines }
