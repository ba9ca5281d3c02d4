package model

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Pattern is a rectangular block of cells to stamp onto a grid
type Pattern struct {
	Name   string
	Width  int
	Height int
	Cells  []bool // row-major, index x + Width*y
}

// Alive reports whether the pattern cell at (x, y) is alive
func (p *Pattern) Alive(x, y int) bool {
	if x < 0 || x >= p.Width || y < 0 || y >= p.Height {
		return false
	}
	return p.Cells[x+p.Width*y]
}

// Blinker is the period-2 horizontal oscillator
var Blinker = mustPattern("blinker", "OOO")

// Glider travels one cell diagonally every four generations
var Glider = mustPattern("glider", ".O.", "..O", "OOO")

func mustPattern(name string, rows ...string) *Pattern {
	p, err := ParsePattern(strings.NewReader(strings.Join(rows, "\n")))
	if err != nil {
		panic(err)
	}
	p.Name = name
	return p
}

/*
ParsePattern reads a pattern in the plaintext Life format.

Lines starting with '!' are comments; "!Name: x" names the pattern.
'O', 'o', '*' and 'X' are alive, '.' and ' ' are dead. Short rows are
padded with dead cells.
*/
func ParsePattern(r io.Reader) (*Pattern, error) {
	var (
		p       = &Pattern{}
		rows    [][]bool
		scanner = bufio.NewScanner(r)
		lineNo  = 0
	)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(line, "!") {
			if name, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(name)
			}
			continue
		}
		row := make([]bool, 0, len(line))
		for col, c := range line {
			switch c {
			case 'O', 'o', '*', 'X':
				row = append(row, true)
			case '.', ' ':
				row = append(row, false)
			default:
				return nil, errors.Errorf("[ParsePattern] line %d col %d: unexpected %q", lineNo, col+1, c)
			}
		}
		rows = append(rows, row)
		p.Width = max(p.Width, len(row))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ParsePattern] failed to read pattern")
	}

	// trailing blank lines are not part of the pattern
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || p.Width == 0 {
		return nil, errors.New("[ParsePattern] pattern has no cells")
	}

	p.Height = len(rows)
	p.Cells = make([]bool, p.Width*p.Height)
	for y, row := range rows {
		copy(p.Cells[p.Width*y:], row)
	}
	return p, nil
}

// LoadPattern parses the plaintext pattern file at path
func LoadPattern(path string) (*Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to open file: %+v", path)
	}
	defer f.Close()

	p, err := ParsePattern(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to parse file: %+v", path)
	}
	return p, nil
}

// Stamp sets the alive cells of p onto the grid with its top-left corner at
// (startX, startY). Cells falling off the grid are dropped.
func (g *Grid) Stamp(p *Pattern, startX, startY int) {
	for y := range p.Height {
		for x := range p.Width {
			if p.Alive(x, y) {
				g.Set(startX+x, startY+y, true)
			}
		}
	}
}

// StampCentered stamps p in the middle of the grid
func (g *Grid) StampCentered(p *Pattern) {
	g.Stamp(p, (g.width-p.Width)/2, (g.height-p.Height)/2)
}

// AddGlider adds a glider pattern at the specified position
func (g *Grid) AddGlider(startX, startY int) {
	g.Stamp(Glider, startX, startY)
}

// AddOscillator adds a blinker oscillator pattern
func (g *Grid) AddOscillator(startX, startY int) {
	g.Stamp(Blinker, startX, startY)
}
