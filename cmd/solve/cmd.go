package solve

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbrute/city"
	"github.com/katalvlaran/tspbrute/instrument"
	"github.com/katalvlaran/tspbrute/internal/config"
	"github.com/katalvlaran/tspbrute/report"
	"github.com/katalvlaran/tspbrute/tsp"
)

type options struct {
	citiesFile  string
	traceFile   string
	summaryFile string
	quiet       bool
	distinct    bool
	count       int
}

func NewSolveCommand(cfg config.Config) *cobra.Command {
	opts := options{}

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Finds the shortest closed tour over a stored city set",
		Long: `Loads a city set, scores every permutation of it and reports the shortest
closed tour. Every tested tour is printed and appended to the trace file; the
best tour is written edge by edge to the summary file.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 0 || opts.count > cfg.MaxCities {
				return fmt.Errorf("count must be between 0 and %d, got %d", cfg.MaxCities, opts.count)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cfg.MaxCities, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.citiesFile, "cities", "c", cfg.CitiesFile, "city set to solve (.json or text)")
	cmd.Flags().StringVar(&opts.traceFile, "trace", cfg.TraceFile, "file receiving one line per tested tour")
	cmd.Flags().StringVar(&opts.summaryFile, "summary", cfg.SummaryFile, "file receiving the best tour")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", cfg.Quiet, "do not print every tested tour")
	cmd.Flags().BoolVar(&opts.distinct, "distinct", false, "skip rotations and mirror images of already scored tours")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 0, "number of cities to take from the set (0: all)")

	return cmd
}

func run(stdout io.Writer, maxCities int, opts options) (err error) {
	cities, err := city.Load(opts.citiesFile)
	if err != nil {
		return fmt.Errorf("solve: load cities %q: %w", opts.citiesFile, err)
	}
	n := cities.Size()
	if opts.count > 0 {
		n = opts.count
	}
	if n > maxCities {
		return fmt.Errorf("solve: %d cities exceed the configured maximum of %d", n, maxCities)
	}

	traceFile, err := os.Create(opts.traceFile)
	if err != nil {
		return fmt.Errorf("solve: create trace %q: %w", opts.traceFile, err)
	}
	defer func() {
		if cerr := traceFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("solve: close trace %q: %w", opts.traceFile, cerr)
		}
	}()
	summaryFile, err := os.Create(opts.summaryFile)
	if err != nil {
		return fmt.Errorf("solve: create summary %q: %w", opts.summaryFile, err)
	}
	defer func() {
		if cerr := summaryFile.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("solve: close summary %q: %w", opts.summaryFile, cerr)
		}
	}()

	runID := uuid.NewString()
	traceBuf := bufio.NewWriter(traceFile)

	console := report.NewConsole(stdout)
	console.Quiet = opts.quiet
	trace := report.NewTrace(traceBuf)
	summary := report.NewSummary(summaryFile, cities)
	summary.RunID = runID
	recorder := instrument.NewRecorder(log.Default(), runID)

	solveOpts := tsp.DefaultOptions()
	solveOpts.Count = opts.count
	solveOpts.Sink = report.Multi(console, trace, summary)
	solveOpts.Observer = recorder
	if opts.distinct {
		solveOpts.Enumeration = tsp.DistinctTours
	}

	res, err := tsp.Solve(cities, solveOpts)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	if err := errors.Join(console.Err(), trace.Err(), traceBuf.Flush(), summary.Err()); err != nil {
		return fmt.Errorf("solve: write report: %w", err)
	}

	rep := recorder.Report()
	fmt.Fprintf(stdout, "Evaluated tours: %d (%s)\n", res.Evaluated, solveOpts.Enumeration)
	fmt.Fprintf(stdout, "Total execution time: %.6f s\n", rep.Elapsed.Seconds())
	fmt.Fprintf(stdout, "Memory before: %.2f KB\n", instrument.KB(rep.MemBefore))
	fmt.Fprintf(stdout, "Memory after: %.2f KB\n", instrument.KB(rep.MemAfter))
	fmt.Fprintf(stdout, "Memory used: %.2f KB\n", rep.MemDeltaKB())

	return nil
}
