// Package config loads the optional aoc2020.yaml file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2020/internal/logger"
)

// DefaultPath is read when no --config flag is given. Its absence is not an error.
const DefaultPath = "aoc2020.yaml"

var (
	// ErrNotFound reports an explicitly requested file that does not exist.
	ErrNotFound = errors.New("config: file not found")
	// ErrInvalid reports a file that does not parse or holds bad values.
	ErrInvalid = errors.New("config: invalid")
)

// Config is the on-disk configuration.
type Config struct {
	InputsDir string            `yaml:"inputs_dir"`
	Log       LogConfig         `yaml:"log"`
	Days      map[int]DayConfig `yaml:"days"`
}

// LogConfig mirrors logger.Config.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DayConfig holds per-day overrides.
type DayConfig struct {
	Input string `yaml:"input"`
}

// Error wraps a failure with the operation and file involved.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%s (path=%s): %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		InputsDir: "inputs",
		Log:       LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads path. When explicit is false a missing file yields Default().
// Fields absent from the file keep their defaults.
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return Config{}, &Error{Op: "config.load", Path: path, Err: err}
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, &Error{Op: "config.load", Path: path, Err: fmt.Errorf("%w: %v", ErrInvalid, err)}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, &Error{Op: "config.validate", Path: path, Err: err}
	}

	return cfg, nil
}

// Validate checks values yaml cannot type-check on its own.
func (c Config) Validate() error {
	if c.InputsDir == "" {
		return fmt.Errorf("%w: inputs_dir is empty", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalid, err)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	for day := range c.Days {
		if day < 1 || day > 25 {
			return fmt.Errorf("%w: days: no day %d", ErrInvalid, day)
		}
	}

	return nil
}

// Overrides returns the per-day input paths.
func (c Config) Overrides() map[int]string {
	out := make(map[int]string, len(c.Days))
	for day, dc := range c.Days {
		if dc.Input != "" {
			out[day] = dc.Input
		}
	}

	return out
}
