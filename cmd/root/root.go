package root

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/tspbrute/cmd/generate"
	"github.com/katalvlaran/tspbrute/cmd/solve"
	"github.com/katalvlaran/tspbrute/cmd/version"
	"github.com/katalvlaran/tspbrute/internal/config"
)

func NewRootCmd(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tspbrute",
		Short: "tspbrute solves small travelling salesman instances by brute force",
		Long: `tspbrute enumerates every permutation of a small city set (up to ~8 cities),
scores each closed tour by its Euclidean length and reports the shortest one,
together with a trace of every tested tour.`,
		SilenceUsage: true,
	}

	// add sub-commands
	rootCmd.AddCommand(generate.NewGenerateCommand(cfg))
	rootCmd.AddCommand(solve.NewSolveCommand(cfg))
	rootCmd.AddCommand(version.NewVersionCommand())

	return rootCmd
}
