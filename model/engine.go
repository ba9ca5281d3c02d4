package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-raster/rules"
	"github.com/sheikhrachel/go-gol-raster/utils"
)

// snapshot bumps the generation and freezes the current cells into previous
func (g *Grid) snapshot() {
	g.generation++
	copy(g.previous, g.cells)
}

// evaluateRows writes the next state of rows [startRow, endRow) from the snapshot
func (g *Grid) evaluateRows(startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[x+g.width*y] = rules.NextState(g.previous, g.width, g.height, x, y, g.boundary)
		}
	}
}

// Advance moves the grid forward one generation on the calling goroutine
func (g *Grid) Advance() {
	g.snapshot()
	g.evaluateRows(0, g.height)
}

// AdvanceParallel moves the grid forward one generation, splitting rows across
// workers. workers <= 0 uses one worker per CPU. The snapshot is taken before
// any worker starts and every worker has finished when it returns.
func (g *Grid) AdvanceParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	g.snapshot()

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.evaluateRows(startRow, endRow)
			return nil
		})
	}

	// workers never fail; Wait is the barrier before the next snapshot
	_ = eg.Wait()
}

// Step advances the grid using the strategy selected in config
func (g *Grid) Step(config utils.Config) {
	if config.UseParallel {
		g.AdvanceParallel(config.Workers)
		return
	}
	g.Advance()
}
