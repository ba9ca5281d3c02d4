package model

import (
	"image"

	"github.com/pkg/errors"
)

const (
	pixelAlive = 0   // alive cells render black
	pixelDead  = 255 // dead cells render white
)

// ErrInvalidScale is returned when a rasterizer is built with a non-positive scale
var ErrInvalidScale = errors.New("scale must be positive")

// Frame is one rendered generation: an 8-bit grayscale buffer of Width*Height bytes
type Frame struct {
	Width      int
	Height     int
	Generation int
	Pix        []byte
}

// Image wraps the frame pixels as an *image.Gray without copying
func (f Frame) Image() *image.Gray {
	return &image.Gray{
		Pix:    f.Pix,
		Stride: f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// Rasterizer expands a grid into a grayscale pixel buffer, scale pixels per cell side.
//
// The buffer is owned by the Rasterizer and reused across calls: the Pix of a
// returned Frame is only valid until the next Render.
type Rasterizer struct {
	scale int
	buf   []byte
}

// NewRasterizer creates a rasterizer with the given block expansion factor
func NewRasterizer(scale int) (*Rasterizer, error) {
	if scale <= 0 {
		return nil, errors.Wrapf(ErrInvalidScale, "[NewRasterizer] scale %d", scale)
	}
	return &Rasterizer{scale: scale}, nil
}

// Scale returns the block expansion factor
func (r *Rasterizer) Scale() int {
	return r.scale
}

// Render draws the current generation of g. Every byte of the returned Pix is written.
func (r *Rasterizer) Render(g *Grid) Frame {
	var (
		s      = r.scale
		width  = g.width * s
		height = g.height * s
		size   = width * height
	)
	if cap(r.buf) < size {
		r.buf = make([]byte, size)
	}
	r.buf = r.buf[:size]

	for y := range g.height {
		// fill the first pixel row of this cell row, then replicate it
		row := r.buf[y*s*width : (y*s+1)*width]
		for x := range g.width {
			value := byte(pixelDead)
			if g.cells[x+g.width*y] {
				value = pixelAlive
			}
			block := row[x*s : x*s+s]
			for i := range block {
				block[i] = value
			}
		}
		for sy := 1; sy < s; sy++ {
			copy(r.buf[(y*s+sy)*width:(y*s+sy+1)*width], row)
		}
	}

	return Frame{
		Width:      width,
		Height:     height,
		Generation: g.generation,
		Pix:        r.buf,
	}
}
