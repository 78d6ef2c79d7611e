package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/rookpad/counter"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rookpad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
range       = "2-4"
strategy    = "enumeration"
max_results = 5000
parallel    = 2
breakdown   = true
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)

	s := defaultSettings()
	cfg.apply(&s, zap.NewNop())
	assert.Equal(t, settings{
		Min:        2,
		Max:        4,
		Strategy:   counter.Enumeration,
		MaxResults: 5000,
		Parallel:   2,
		Breakdown:  true,
	}, s)
}

// TestResolveSettings_FlagsOverrideConfig checks precedence: defaults,
// then file, then flags.
func TestResolveSettings_FlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `
length   = 6
strategy = "enum"
`)
	s, err := resolveSettings(rawFlags{config: path, strategy: "dp"}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 6, s.Min)
	assert.Equal(t, 6, s.Max)
	assert.Equal(t, counter.DynamicProgramming, s.Strategy)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, `length = `))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, `colour = "blue"`))
	assert.Error(t, err, "unknown attributes are rejected")

	_, err = resolveSettings(rawFlags{config: writeConfig(t, `min = "x"`)}, zap.NewNop())
	assert.Error(t, err, "type mismatch is a decode error")
}
