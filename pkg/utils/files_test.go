package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPathInfo(t *testing.T) {
	dir := t.TempDir()
	full, parent, err := GetPathInfo(filepath.Join(dir, "sub", "..", "main.src"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "main.src"), full)
	assert.Equal(t, dir, parent)
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.src")
	require.NoError(t, os.WriteFile(path, []byte("XY+(XY)"), 0o644))

	src, full, err := LoadSource(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("XY+(XY)"), src)
	assert.Equal(t, path, full)

	_, _, err = LoadSource(filepath.Join(dir, "missing.src"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(1)
	assert.True(t, logger.V(1).Enabled())
	assert.False(t, logger.V(2).Enabled())
}
