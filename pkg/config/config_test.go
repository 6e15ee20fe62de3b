package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	opts := cfg.SolverOptions()
	assert.True(t, opts.ExcludeFullCoverage)
	assert.Equal(t, 5, opts.ShortListThreshold)
	assert.Equal(t, 4096, opts.ParallelThreshold)

	assert.Zero(t, cfg.SessionOptions().MaxMisses)
	assert.Equal(t, 6, cfg.SelfTest.MaxMisses)
	assert.Equal(t, 26, cfg.SelfTest.MaxTurns)
	assert.True(t, cfg.CLI.Color)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), loaded)
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Game.MaxMisses = 8
	cfg.Dict.Path = "words.txt"
	cfg.Solver.Workers = 3
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 8, loaded.SessionOptions().MaxMisses)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[solver]
short_list_threshold = 9
exclude_full_coverage = false

[cli]
color = "yes"
show_candidates = false

[selftest]
max_turns = 12
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Solver.ShortListThreshold)
	assert.False(t, cfg.Solver.ExcludeFullCoverage)
	assert.True(t, cfg.CLI.Color, "mistyped value keeps its default")
	assert.False(t, cfg.CLI.ShowCandidates)
	assert.Equal(t, 12, cfg.SelfTest.MaxTurns)
	assert.Equal(t, 6, cfg.SelfTest.MaxMisses)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[solver\nnot toml at all ==="), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := DefaultConfig()
	cfg.Game.MaxMisses = 4
	require.NoError(t, SaveConfig(cfg, path))

	loaded, active, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, active)
	assert.Equal(t, 4, loaded.Game.MaxMisses)
}

func TestGetActiveConfigPath(t *testing.T) {
	assert.Equal(t, "builtin defaults", GetActiveConfigPath(""))
	assert.True(t, filepath.IsAbs(GetActiveConfigPath("config.toml")))
}
