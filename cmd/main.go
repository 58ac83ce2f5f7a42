package main

import (
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/tspbrute/cmd/root"
	"github.com/katalvlaran/tspbrute/internal/config"
)

func main() {
	cfg, loaded, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !loaded {
		log.Println("No .env file found (using environment variables)")
	}

	rootCmd := root.NewRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
