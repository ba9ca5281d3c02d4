package encoder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-raster/model"
)

// FrameName returns the file name for a generation, zero padded to five
// digits so that lexical order matches render order: life_00042.png
func FrameName(prefix string, generation int, ext string) string {
	return fmt.Sprintf("%s_%05d.%s", prefix, generation, ext)
}

// FileSink writes each frame to its own file in Dir
type FileSink struct {
	Dir     string
	Prefix  string
	Encoder Encoder
}

// Path returns where the frame for generation will be written
func (s FileSink) Path(generation int) string {
	return filepath.Join(s.Dir, FrameName(s.Prefix, generation, s.Encoder.Extension()))
}

// WriteFrame encodes frame to its generation file. A failed write removes the partial file.
func (s FileSink) WriteFrame(frame model.Frame) (err error) {
	if err = os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.Wrapf(err, "[WriteFrame] failed to create directory: %+v", s.Dir)
	}

	path := s.Path(frame.Generation)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[WriteFrame] failed to create file: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "[WriteFrame] failed to close file: %+v", path)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	if err = s.Encoder.Encode(f, frame.Width, frame.Height, frame.Pix); err != nil {
		return errors.Wrapf(err, "[WriteFrame] failed to encode file: %+v", path)
	}
	return nil
}
