// Package encoder persists rendered frames as single-channel 8-bit images.
//
// Encoders are looked up by format name. Each one receives the raw
// width*height grayscale buffer produced by the rasterizer.
package encoder

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrBufferSize is returned when a pixel buffer does not hold width*height bytes
	ErrBufferSize = errors.New("pixel buffer does not match image size")
	// ErrUnknownFormat is returned by ForFormat for unregistered names
	ErrUnknownFormat = errors.New("unknown image format")
)

// Encoder writes a grayscale buffer as one image file
type Encoder interface {
	Extension() string
	Encode(w io.Writer, width, height int, pix []byte) error
}

// encoderFunc adapts an image.Image based encode function
type encoderFunc struct {
	ext    string
	encode func(io.Writer, image.Image) error
}

func (e encoderFunc) Extension() string { return e.ext }

func (e encoderFunc) Encode(w io.Writer, width, height int, pix []byte) error {
	img, err := grayImage(width, height, pix)
	if err != nil {
		return err
	}
	return errors.Wrapf(e.encode(w, img), "[Encode] %s", e.ext)
}

// pgmEncoder writes binary Netpbm graymaps (P5)
type pgmEncoder struct{}

func (pgmEncoder) Extension() string { return "pgm" }

func (pgmEncoder) Encode(w io.Writer, width, height int, pix []byte) error {
	if _, err := grayImage(width, height, pix); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P5\n%d %d\n255\n", width, height); err != nil {
		return errors.Wrap(err, "[Encode] pgm header")
	}
	if _, err := bw.Write(pix); err != nil {
		return errors.Wrap(err, "[Encode] pgm pixels")
	}
	return errors.Wrap(bw.Flush(), "[Encode] pgm flush")
}

// Encoder registry (format → encoder)
var encoders = map[string]Encoder{
	"png": encoderFunc{ext: "png", encode: png.Encode},
	"bmp": encoderFunc{ext: "bmp", encode: bmp.Encode},
	"tiff": encoderFunc{ext: "tiff", encode: func(w io.Writer, m image.Image) error {
		return tiff.Encode(w, m, &tiff.Options{Compression: tiff.Deflate})
	}},
	"pgm": pgmEncoder{},
}

// ForFormat returns the encoder registered under format
func ForFormat(format string) (Encoder, error) {
	e, ok := encoders[format]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFormat, "[ForFormat] %q (have %v)", format, Formats())
	}
	return e, nil
}

// Formats lists registered format names in sorted order
func Formats() []string {
	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func grayImage(width, height int, pix []byte) (*image.Gray, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height {
		return nil, errors.Wrapf(ErrBufferSize, "[Encode] %dx%d with %d bytes", width, height, len(pix))
	}
	return &image.Gray{
		Pix:    pix,
		Stride: width,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}
