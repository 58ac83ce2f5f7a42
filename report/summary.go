package report

import (
	"io"

	"github.com/katalvlaran/tspbrute/tsp"
)

// WriteSummary writes the best tour edge by edge, closing edge included:
//
//	Best path (brute force):
//	1 -> 2: 10.00 Km
//	2 -> 3: 14.14 Km
//	3 -> 1: 10.00 Km
//	Total distance: 34.14 Km
//
// Errors: tsp.ErrInvalidInput for an empty result, lookup errors from store,
// or the first write error.
func WriteSummary(w io.Writer, store tsp.Store, res tsp.Result) error {
	if len(res.Tour) == 0 {
		return tsp.ErrInvalidInput
	}
	sw := &stickyWriter{w: w}
	if err := writeSummary(sw, store, res); err != nil {
		return err
	}

	return sw.Err()
}

func writeSummary(sw *stickyWriter, store tsp.Store, res tsp.Result) error {
	sw.printf("Best path (brute force):\n")

	var (
		closed = res.ClosedTour()
		i      int
		u, v   int
	)
	for i = 0; i < len(closed)-1; i++ {
		u, v = closed[i], closed[i+1]
		d, err := tsp.EdgeDistance(store, u, v)
		if err != nil {
			return err
		}
		sw.printf("%d -> %d: %.2f Km\n", u+1, v+1, d)
	}
	sw.printf("Total distance: %.2f Km\n", res.Distance)

	return nil
}

// Summary is a tsp.Sink that ignores tested tours and writes the summary of
// the best tour on Finalize.
type Summary struct {
	stickyWriter
	store tsp.Store

	// RunID, when set, is written as a "Run: <id>" header line.
	RunID string
}

var _ tsp.Sink = (*Summary)(nil)

// NewSummary returns a Summary for tours over store, writing to w.
func NewSummary(w io.Writer, store tsp.Store) *Summary {
	return &Summary{stickyWriter: stickyWriter{w: w}, store: store}
}

// Record is a no-op.
func (s *Summary) Record(tsp.Evaluation) {}

// Finalize writes the summary of res.
func (s *Summary) Finalize(res tsp.Result) {
	if s.err != nil {
		return
	}
	if len(res.Tour) == 0 {
		s.err = tsp.ErrInvalidInput
		return
	}
	if s.RunID != "" {
		s.printf("Run: %s\n", s.RunID)
	}
	if err := writeSummary(&s.stickyWriter, s.store, res); err != nil && s.err == nil {
		s.err = err
	}
}
