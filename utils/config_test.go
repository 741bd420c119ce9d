package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{20, 30}, cfg.AllowedRows)
	assert.Equal(t, []int{20, 30, 50}, cfg.AllowedCols)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"allowed_rows":[10],"frame_delay":0,"clear_screen":false}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10}, cfg.AllowedRows)
	assert.Equal(t, []int{20, 30, 50}, cfg.AllowedCols)
	assert.Equal(t, time.Duration(0), cfg.FrameDelay)
	assert.False(t, cfg.ClearScreen)
	assert.True(t, cfg.DetectCycles)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadConfig(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"allowed_rows":`), 0o644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"allowed_cols":[]}`), 0o644))
	_, err = LoadConfig(invalid)
	assert.ErrorContains(t, err, "allowed_cols")
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AllowedRows = []int{20, 0}
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.DefaultProbability = 1.5
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.FrameDelay = -time.Second
	assert.Error(t, cfg.Validate())
}
