package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	assert.False(t, Exists(dir))
	assert.NoError(t, EnsureDir(dir))
	assert.True(t, IsDir(dir))
	// existing directories are fine
	assert.NoError(t, EnsureDir(dir))
}

func TestIsDir(t *testing.T) {
	name := filepath.Join(t.TempDir(), "x.png")
	assert.False(t, Exists(name))
	assert.False(t, IsDir(name))

	assert.NoError(t, os.WriteFile(name, []byte("abc"), 0644))
	assert.True(t, Exists(name))
	assert.False(t, IsDir(name))
	assert.True(t, IsDir(filepath.Dir(name)))
}
