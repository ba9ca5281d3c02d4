package rules

import "github.com/pkg/errors"

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Boundary selects how neighbor offsets past the grid edge are treated
type Boundary int

const (
	// FlatIndex folds the offset into a linear index and only skips it when
	// the index leaves [0, width*height). A neighbor off the left or right
	// edge lands on the adjacent row and is counted.
	FlatIndex Boundary = iota
	// Clipped checks each axis independently, so off-grid cells never count.
	Clipped
)

var boundaryNames = map[Boundary]string{
	FlatIndex: "flat",
	Clipped:   "clipped",
}

func (b Boundary) String() string {
	if name, ok := boundaryNames[b]; ok {
		return name
	}
	return "unknown"
}

// ParseBoundary maps a configuration name to a Boundary
func ParseBoundary(name string) (Boundary, error) {
	for b, n := range boundaryNames {
		if n == name {
			return b, nil
		}
	}
	return FlatIndex, errors.Errorf("[ParseBoundary] unknown boundary %q (want flat or clipped)", name)
}

// CountNeighbors counts the living cells in the Moore neighborhood of (x, y)
func CountNeighbors(cells []bool, width, height, x, y int, boundary Boundary) (count int) {
	size := width * height
	for j := -1; j <= 1; j++ {
		for i := -1; i <= 1; i++ {
			if i == 0 && j == 0 {
				continue
			}
			nx, ny := x+i, y+j
			if boundary == Clipped && (nx < 0 || nx >= width || ny < 0 || ny >= height) {
				continue
			}
			index := nx + width*ny
			if index < 0 || index > size-1 {
				continue
			}
			if cells[index] {
				count++
			}
		}
	}
	return
}

// NextState returns whether the cell at (x, y) is alive in the next generation.
// cells is read only.
func NextState(cells []bool, width, height, x, y int, boundary Boundary) bool {
	return ApplyConwayRules(
		CountNeighbors(cells, width, height, x, y, boundary),
		cells[x+width*y],
	)
}
