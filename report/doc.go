// Package report holds the reporting collaborators of the brute-force solver.
// Every type here implements tsp.Sink and writes plain text to an io.Writer:
//
//   - Console: one human-readable line per tested tour and the best tour.
//   - Trace: one CSV-like line per tested tour: "1 -> 2 -> 3 -> 1, 34.14, 0.000001".
//   - Summary: the best tour edge by edge with per-edge distances and the total.
//   - Multi: fan-out to several sinks.
//
// Writers are not goroutine-safe. I/O errors are sticky: the first failure is
// kept, later writes are skipped, and Err reports it once the run is over.
package report
