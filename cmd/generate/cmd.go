package generate

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbrute/city"
	"github.com/katalvlaran/tspbrute/internal/config"
)

func NewGenerateCommand(cfg config.Config) *cobra.Command {
	var (
		count    int
		interval int
		seed     int64
		out      string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generates a set of cities with unique coordinates",
		Long: `Generates a set of cities with random integer coordinates in [0, interval)
and writes it to a file, one city per line:
City 1: (12, 85)
City 2: (40, 3)
Files ending in .json are written as {"cities":[{"x":12,"y":85}, ...]}.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 || count > cfg.MaxCities {
				return fmt.Errorf("count must be between 1 and %d, got %d", cfg.MaxCities, count)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			return generate(cmd.OutOrStdout(), count, interval, seed, out)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 0, fmt.Sprintf("number of cities to generate (max: %d)", cfg.MaxCities))
	cmd.Flags().IntVar(&interval, "interval", cfg.Interval, "coordinates are drawn from [0, interval)")
	cmd.Flags().Int64Var(&seed, "seed", cfg.Seed, "random seed; 0 picks a time-based seed")
	cmd.Flags().StringVarP(&out, "out", "o", cfg.CitiesFile, "file to write the cities to")
	_ = cmd.MarkFlagRequired("count")

	return cmd
}

func generate(w io.Writer, count, interval int, seed int64, out string) error {
	cities, err := city.Generate(count, interval, seed)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if err := city.Save(out, cities); err != nil {
		return fmt.Errorf("generate: save %q: %w", out, err)
	}
	log.Printf("op=generate cities=%d interval=%d seed=%d out=%s", cities.Size(), interval, seed, out)

	for i, c := range cities.Cities() {
		fmt.Fprintf(w, "City %d: %v\n", i+1, c)
	}
	fmt.Fprintf(w, "%d cities written to %s\n", cities.Size(), out)

	return nil
}
