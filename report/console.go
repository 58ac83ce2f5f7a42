package report

import (
	"io"

	"github.com/katalvlaran/tspbrute/tsp"
)

// Console prints every tested tour and, at the end, the best one.
type Console struct {
	stickyWriter

	// Quiet suppresses the per-tour lines; the final best tour is still printed.
	Quiet bool
}

var _ tsp.Sink = (*Console)(nil)

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{stickyWriter: stickyWriter{w: w}}
}

// Record prints "Tested path: 1 -> 2 -> 1 | Distance: 10.00 Km | Time: 0.000001 s".
func (c *Console) Record(ev tsp.Evaluation) {
	if c.Quiet {
		return
	}
	c.printf("Tested path: %s | Distance: %.2f Km | Time: %.6f s\n",
		tsp.FormatLabels(ev.Tour), ev.Distance, ev.Elapsed.Seconds())
}

// Finalize prints the best tour and its total distance.
func (c *Console) Finalize(res tsp.Result) {
	c.printf("\nBest path found: %s\nTotal distance: %.2f Km\n",
		tsp.FormatLabels(res.Labels()), res.Distance)
}
