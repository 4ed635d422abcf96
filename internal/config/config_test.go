package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2020/internal/config"
)

func write(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "aoc2020.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestLoad_Full(t *testing.T) {
	p := write(t, `
inputs_dir: puzzles
log:
  level: debug
  format: json
days:
  7:
    input: custom/day07.txt
  3: {}
`)
	cfg, err := config.Load(p, true)
	require.NoError(t, err)
	assert.Equal(t, "puzzles", cfg.InputsDir)
	assert.Equal(t, config.LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, map[int]string{7: "custom/day07.txt"}, cfg.Overrides())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Load(write(t, "log:\n  level: warn\n"), true)
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputsDir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := config.Load(missing, false)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, err = config.Load(missing, true)
	require.ErrorIs(t, err, config.ErrNotFound)
	var cerr *config.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, missing, cerr.Path)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"Syntax":    "log: [\n",
		"Level":     "log:\n  level: loud\n",
		"Format":    "log:\n  format: xml\n",
		"EmptyDir":  "inputs_dir: \"\"\n",
		"DayRange":  "days:\n  26:\n    input: x\n",
		"DayNotInt": "days:\n  seven:\n    input: x\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, body), true)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}
