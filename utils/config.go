package utils

import (
	"encoding/json"
	"github.com/pkg/errors"
	"os"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration for a run
type Config struct {
	Width              int    `json:"width"`
	Height             int    `json:"height"`
	Scale              int    `json:"scale"`
	GenFrom            int    `json:"gen_from"`
	GenTo              int    `json:"gen_to"`
	Seed               int64  `json:"seed"`
	PatternFile        string `json:"pattern_file"`
	OutputDir          string `json:"output_dir"`
	FilePrefix         string `json:"file_prefix"`
	Format             string `json:"format"`
	Boundary           string `json:"boundary"`
	UseParallel        bool   `json:"use_parallel"`
	Workers            int    `json:"workers"`
	AbortOnEncodeError bool   `json:"abort_on_encode_error"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:       64,
		Height:      64,
		Scale:       4,
		GenFrom:     0,
		GenTo:       100,
		OutputDir:   ".",
		FilePrefix:  "life",
		Format:      "png",
		Boundary:    "flat",
		UseParallel: false,
		Workers:     0, // one per CPU
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the settings that would otherwise fail deep inside a run
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid size %dx%d must be positive", c.Width, c.Height)
	case c.Scale <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] scale %d must be positive", c.Scale)
	case c.GenFrom < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] gen_from %d must not be negative", c.GenFrom)
	case c.GenTo < c.GenFrom:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] gen_to %d is before gen_from %d", c.GenTo, c.GenFrom)
	case c.FilePrefix == "":
		return errors.Wrap(ErrInvalidConfig, "[Validate] file_prefix must not be empty")
	}
	return nil
}
