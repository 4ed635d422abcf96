// Package inputs locates puzzle inputs: the per-account files under an inputs
// directory, and the worked examples bundled with the binary.
package inputs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed examples/*.txt
var examples embed.FS

var (
	// ErrNoExample is returned when no worked example is bundled for a day.
	ErrNoExample = errors.New("inputs: no bundled example")
	// ErrMissing is returned when the input file for a day does not exist.
	ErrMissing = errors.New("inputs: input file not found")
)

// FileName is the conventional input file name for day: "day07.txt".
func FileName(day int) string {
	return fmt.Sprintf("day%02d.txt", day)
}

// Example returns the bundled worked example for day and part. A part-specific
// example (day05_2.txt) wins over the shared one (day05.txt).
func Example(day, part int) (string, error) {
	names := []string{
		fmt.Sprintf("examples/day%02d_%d.txt", day, part),
		"examples/" + FileName(day),
	}
	for _, name := range names {
		b, err := examples.ReadFile(name)
		if err == nil {
			return string(b), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", err
		}
	}

	return "", fmt.Errorf("%w for day %d part %d", ErrNoExample, day, part)
}

// Loader reads real puzzle inputs from disk.
type Loader struct {
	// Dir holds dayNN.txt files.
	Dir string
	// Overrides maps a day to an explicit file path, used instead of Dir.
	Overrides map[int]string
}

// Path returns the file the loader reads for day.
func (l Loader) Path(day int) string {
	if p, ok := l.Overrides[day]; ok && p != "" {
		return p
	}

	return filepath.Join(l.Dir, FileName(day))
}

// Load reads the input for day.
func (l Loader) Load(day int) (string, error) {
	path := l.Path(day)
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrMissing, path)
	}
	if err != nil {
		return "", fmt.Errorf("inputs: read %s: %w", path, err)
	}

	return string(b), nil
}
