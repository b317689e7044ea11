package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wolftimer/internal/core/model"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, cfg)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigAndApply(t *testing.T) {
	path := ConfigPath(t.TempDir())
	data := "[session]\nminutes = 30\nquestions = 20\nopacity = 5\nblocks = 0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	applied := cfg.Apply(model.DefaultSessionConfig())
	assert.Equal(t, 30, applied.TimePerBlockMinutes)
	assert.Equal(t, 2, applied.NumBlocks)
	assert.Equal(t, 20, applied.NumQuestionsPerBlock)
	assert.Equal(t, model.MinOpacityPercent, applied.OpacityPercent)
	assert.Equal(t, 90, applied.SecondsPerQuestion())
}

func TestLoadConfigInvalid(t *testing.T) {
	path := ConfigPath(t.TempDir())
	require.NoError(t, os.WriteFile(path, []byte("[session\nminutes = "), 0o644))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "decode config")
}

func TestEnsureTemplate(t *testing.T) {
	path := ConfigPath(filepath.Join(t.TempDir(), "WolfTimer"))

	created, err := EnsureTemplate(path)
	require.NoError(t, err)
	assert.True(t, created)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSessionConfig(), cfg.Apply(model.DefaultSessionConfig()))

	created, err = EnsureTemplate(path)
	require.NoError(t, err)
	assert.False(t, created)
}
