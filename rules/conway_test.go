package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		if got := ApplyConwayRules(n, true); got != wantAlive {
			t.Errorf("alive with %d neighbors: got %v, want %v", n, got, wantAlive)
		}
		wantBorn := n == 3
		if got := ApplyConwayRules(n, false); got != wantBorn {
			t.Errorf("dead with %d neighbors: got %v, want %v", n, got, wantBorn)
		}
	}
}

// grid builds a row-major slice from rows of '#' (alive) and '.' (dead)
func grid(rows ...string) ([]bool, int, int) {
	w, h := len(rows[0]), len(rows)
	cells := make([]bool, w*h)
	for y, row := range rows {
		for x, c := range row {
			cells[x+w*y] = c == '#'
		}
	}
	return cells, w, h
}

func TestCountNeighbors(t *testing.T) {
	tests := []struct {
		name     string
		rows     []string
		x, y     int
		boundary Boundary
		want     int
	}{
		{"interior full", []string{"###", "###", "###"}, 1, 1, FlatIndex, 8},
		{"self excluded", []string{"...", ".#.", "..."}, 1, 1, FlatIndex, 0},
		{"top-left corner clipped", []string{"###", "###", "###"}, 0, 0, Clipped, 3},
		{"bottom-right corner clipped", []string{"###", "###", "###"}, 2, 2, Clipped, 3},
		// (0,0) under flat indexing also sees index 2, which is (2,0), through
		// the left edge; indices below zero are dropped.
		{"top-left corner flat", []string{"###", "###", "###"}, 0, 0, FlatIndex, 4},
		// (2,2) sees index 6 (0,2) through the right edge; index 9 and up are dropped.
		{"bottom-right corner flat", []string{"###", "###", "###"}, 2, 2, FlatIndex, 4},
		{"row wrap counted when flat", []string{"..#", "...", "..."}, 0, 1, FlatIndex, 1},
		{"row wrap ignored when clipped", []string{"..#", "...", "..."}, 0, 1, Clipped, 0},
		{"right edge wrap flat", []string{"...", "...", "#.."}, 2, 1, FlatIndex, 1},
		{"right edge wrap clipped", []string{"...", "...", "#.."}, 2, 1, Clipped, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, w, h := grid(tt.rows...)
			if got := CountNeighbors(cells, w, h, tt.x, tt.y, tt.boundary); got != tt.want {
				t.Fatalf("CountNeighbors(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestCountNeighborsNeverLeavesArray(t *testing.T) {
	cells, w, h := grid("####", "####")
	for _, b := range []Boundary{FlatIndex, Clipped} {
		for y := range h {
			for x := range w {
				if n := CountNeighbors(cells, w, h, x, y, b); n < 0 || n > 8 {
					t.Fatalf("%v: count %d out of range at (%d,%d)", b, n, x, y)
				}
			}
		}
	}
}

func TestNextState(t *testing.T) {
	cells, w, h := grid(
		".....",
		".....",
		".###.",
		".....",
		".....",
	)
	if !NextState(cells, w, h, 2, 1, FlatIndex) {
		t.Error("(2,1) should be born with three neighbors")
	}
	if NextState(cells, w, h, 1, 2, FlatIndex) {
		t.Error("(1,2) should die with one neighbor")
	}
	if !NextState(cells, w, h, 2, 2, FlatIndex) {
		t.Error("(2,2) should survive with two neighbors")
	}
	if NextState(cells, w, h, 0, 0, FlatIndex) {
		t.Error("(0,0) should stay dead")
	}
}

func TestParseBoundary(t *testing.T) {
	for _, b := range []Boundary{FlatIndex, Clipped} {
		got, err := ParseBoundary(b.String())
		if err != nil || got != b {
			t.Fatalf("ParseBoundary(%q) = %v, %v", b.String(), got, err)
		}
	}
	if _, err := ParseBoundary("torus"); err == nil {
		t.Fatal("expected error for unknown boundary")
	}
}
