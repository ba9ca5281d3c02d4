package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-raster/rules"
)

// ErrInvalidDimensions is returned when a grid is built with a non-positive width or height
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// Grid represents the game board and the snapshot it advances from
type Grid struct {
	width      int
	height     int
	cells      []bool // row-major, index x + width*y
	previous   []bool // frozen copy of cells taken at the start of an advance
	generation int
	boundary   rules.Boundary
}

// GridOption customizes a Grid at construction
type GridOption func(*Grid)

// WithBoundary sets the neighbor policy used when advancing
func WithBoundary(b rules.Boundary) GridOption {
	return func(g *Grid) { g.boundary = b }
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(width, height int, opts ...GridOption) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	g := &Grid{
		width:    width,
		height:   height,
		cells:    make([]bool, width*height),
		previous: make([]bool, width*height),
		boundary: rules.FlatIndex,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Generation returns how many times the grid has been advanced
func (g *Grid) Generation() int {
	return g.generation
}

// Boundary returns the neighbor policy of the grid
func (g *Grid) Boundary() rules.Boundary {
	return g.boundary
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(x, y int, alive bool) {
	if x >= 0 && x < g.width && y >= 0 && y < g.height {
		g.cells[x+g.width*y] = alive
	}
}

// Get returns the state of a cell
func (g *Grid) Get(x, y int) bool {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false
	}
	return g.cells[x+g.width*y]
}

// Cells returns a copy of the current generation
func (g *Grid) Cells() []bool {
	return append([]bool(nil), g.cells...)
}

// Previous returns a copy of the snapshot the last advance read from
func (g *Grid) Previous() []bool {
	return append([]bool(nil), g.previous...)
}

// Clear kills every cell without touching the generation counter
func (g *Grid) Clear() {
	clear(g.cells)
}

// Randomize gives every cell an independent even chance of being alive.
// A nil rng uses the default math/rand source.
func (g *Grid) Randomize(rng *rand.Rand) {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}
	for i := range g.cells {
		g.cells[i] = intn(2) == 0
	}
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, alive := range g.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
