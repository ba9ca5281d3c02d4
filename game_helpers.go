package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-raster/encoder"
	"github.com/sheikhrachel/go-gol-raster/model"
	"github.com/sheikhrachel/go-gol-raster/rules"
	"github.com/sheikhrachel/go-gol-raster/utils"
)

const usage = `Usage: %s [flags] [init_file] [gen_from gen_to]
    init_file:    The file containing generation 0 (plaintext .cells),
                  or omit it to use a random initial state
    gen_from:     Produce output from this generation onward
    gen_to:       Stop generating output after this generation
`

// errUsage marks errors caused by bad command line input
var errUsage = errors.New("usage")

// frameWriter persists one rendered generation
type frameWriter interface {
	WriteFrame(frame model.Frame) error
}

// parseArgs builds the run configuration: defaults, then the -config file,
// then any flags given explicitly, then positional arguments
func parseArgs(args []string, stderr io.Writer) (utils.Config, error) {
	var (
		defaults = utils.DefaultConfig()
		fs       = flag.NewFlagSet("go-gol-raster", flag.ContinueOnError)
		flagged  = defaults
	)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, usage, fs.Name())
		fs.PrintDefaults()
	}

	configFile := fs.String("config", "", "JSON configuration file")
	fs.IntVar(&flagged.Width, "width", defaults.Width, "grid width in cells")
	fs.IntVar(&flagged.Height, "height", defaults.Height, "grid height in cells")
	fs.IntVar(&flagged.Scale, "scale", defaults.Scale, "pixels per cell side")
	fs.Int64Var(&flagged.Seed, "seed", defaults.Seed, "random fill seed (0 uses the clock)")
	fs.StringVar(&flagged.OutputDir, "out", defaults.OutputDir, "output directory")
	fs.StringVar(&flagged.FilePrefix, "prefix", defaults.FilePrefix, "output file name prefix")
	fs.StringVar(&flagged.Format, "format", defaults.Format, fmt.Sprintf("image format %v", encoder.Formats()))
	fs.StringVar(&flagged.Boundary, "boundary", defaults.Boundary, "edge policy: flat or clipped")
	fs.BoolVar(&flagged.UseParallel, "parallel", defaults.UseParallel, "advance rows in parallel")
	fs.IntVar(&flagged.Workers, "workers", defaults.Workers, "parallel workers (0 uses one per CPU)")
	fs.BoolVar(&flagged.AbortOnEncodeError, "abort-on-error", defaults.AbortOnEncodeError, "stop at the first frame that fails to write")

	// the flag package has already reported parse errors
	if err := fs.Parse(args); err != nil {
		return defaults, errUsage
	}

	config := defaults
	if *configFile != "" {
		var err error
		if config, err = utils.LoadConfig(*configFile); err != nil {
			return config, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			config.Width = flagged.Width
		case "height":
			config.Height = flagged.Height
		case "scale":
			config.Scale = flagged.Scale
		case "seed":
			config.Seed = flagged.Seed
		case "out":
			config.OutputDir = flagged.OutputDir
		case "prefix":
			config.FilePrefix = flagged.FilePrefix
		case "format":
			config.Format = flagged.Format
		case "boundary":
			config.Boundary = flagged.Boundary
		case "parallel":
			config.UseParallel = flagged.UseParallel
		case "workers":
			config.Workers = flagged.Workers
		case "abort-on-error":
			config.AbortOnEncodeError = flagged.AbortOnEncodeError
		}
	})

	rest := fs.Args()
	switch len(rest) {
	case 0:
	case 2, 3:
		if len(rest) == 3 {
			config.PatternFile, rest = rest[0], rest[1:]
		}
		from, err := strconv.Atoi(rest[0])
		if err != nil {
			return config, errors.Wrapf(errUsage, "gen_from %q is not a number", rest[0])
		}
		to, err := strconv.Atoi(rest[1])
		if err != nil {
			return config, errors.Wrapf(errUsage, "gen_to %q is not a number", rest[1])
		}
		config.GenFrom, config.GenTo = from, to
	default:
		fs.Usage()
		return config, errors.Wrapf(errUsage, "expected 0, 2 or 3 arguments, got %d", len(rest))
	}

	return config, nil
}

// initializeGame sets up the grid, rasterizer and output sink for a run
func initializeGame(config utils.Config) (*model.Grid, *model.Rasterizer, encoder.FileSink, error) {
	var sink encoder.FileSink

	boundary, err := rules.ParseBoundary(config.Boundary)
	if err != nil {
		return nil, nil, sink, err
	}
	grid, err := model.NewGrid(config.Width, config.Height, model.WithBoundary(boundary))
	if err != nil {
		return nil, nil, sink, err
	}
	rasterizer, err := model.NewRasterizer(config.Scale)
	if err != nil {
		return nil, nil, sink, err
	}
	enc, err := encoder.ForFormat(config.Format)
	if err != nil {
		return nil, nil, sink, err
	}
	sink = encoder.FileSink{Dir: config.OutputDir, Prefix: config.FilePrefix, Encoder: enc}

	if config.PatternFile != "" {
		pattern, err := model.LoadPattern(config.PatternFile)
		if err != nil {
			return nil, nil, sink, err
		}
		grid.StampCentered(pattern)
		return grid, rasterizer, sink, nil
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	grid.Randomize(rand.New(rand.NewSource(seed)))

	return grid, rasterizer, sink, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(w io.Writer, config utils.Config, grid *model.Grid) {
	fmt.Fprintf(w, "Grid: %dx%d | Scale: %d | Boundary: %v | Parallel: %v\n",
		grid.GetWidth(), grid.GetHeight(), config.Scale, grid.Boundary(), config.UseParallel)
	fmt.Fprintf(w, "Generations: %d..%d | Output: %s | Initial living cells: %d\n",
		config.GenFrom, config.GenTo, config.OutputDir, grid.CountLivingCells())
}

/*
simulate renders and writes every generation in [GenFrom, GenTo].

Generations before GenFrom are advanced without output. Each frame is
rendered before the grid advances past it. A frame that fails to write is
reported and counted; the run stops only when AbortOnEncodeError is set.
*/
func simulate(
	config utils.Config,
	grid *model.Grid,
	rasterizer *model.Rasterizer,
	sink frameWriter,
	stats *utils.Stats,
	stdout, stderr io.Writer,
) error {
	for grid.Generation() < config.GenFrom {
		grid.Step(config)
	}

	lastFrameTime := time.Now()
	for {
		generation := grid.Generation()
		frame := rasterizer.Render(grid)

		err := sink.WriteFrame(frame)
		stats.RecordFrame(err)
		if err != nil {
			fmt.Fprintf(stderr, "Error writing generation %d: %v\n", generation, err)
			if config.AbortOnEncodeError {
				return errors.Wrapf(err, "[simulate] aborted at generation %d", generation)
			}
		}

		livingCells := grid.CountLivingCells()
		density := float64(livingCells) / float64(grid.GetWidth()*grid.GetHeight()) * 100
		stats.Update(generation, livingCells, time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		fmt.Fprintf(stdout, "Gen: %d | Living: %d | Density: %.1f%%\n", generation, livingCells, density)

		if generation >= config.GenTo {
			return nil
		}
		grid.Step(config)
	}
}
