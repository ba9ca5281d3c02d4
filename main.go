package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sheikhrachel/go-gol-raster/utils"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one simulation and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	config, err := parseArgs(args, stderr)
	if err != nil {
		if err != errUsage {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return exitConfig
	}
	if err = config.Validate(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}

	grid, rasterizer, sink, err := initializeGame(config)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitConfig
	}
	displayGameInfo(stdout, config, grid)

	stats := utils.NewStats()
	err = simulate(config, grid, rasterizer, sink, stats, stdout, stderr)
	stats.Summary(stdout)
	if err != nil {
		fmt.Fprintf(stderr, "🛑 %v\n", err)
		return exitFailure
	}
	return exitOK
}
