package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cimg "github.com/go-imsto/imbatch/image"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "images_input", c.InputDir)
	assert.Equal(t, "images_output", c.OutputDir)
	assert.Equal(t, uint(800), c.Width)
	assert.Equal(t, uint(600), c.Height)
	assert.True(t, c.KeepRatio)
	assert.Equal(t, "JPEG", c.Format)
	assert.Equal(t, 85, c.Quality)
	assert.Equal(t, 1, c.Workers)
	assert.NoError(t, c.Validate())
	assert.Equal(t, cimg.FmtJPEG, c.OutputFormat())
	assert.Equal(t, ".jpeg", c.OutputExt())
}

/*
TestLoad ...

env:

IMBATCH_CONF_DIR=<dir with imbatch.ini>
IMBATCH_QUALITY=70
*/
func TestLoad(t *testing.T) {
	dir := t.TempDir()
	ini := "develop = true\n[resize]\ninput_dir = in\nwidth = 320\nheight = 240\nkeep_ratio = false\nformat = png\nquality = 90\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imbatch.ini"), []byte(ini), 0644))
	t.Setenv("IMBATCH_CONF_DIR", dir)
	t.Setenv("IMBATCH_QUALITY", "70")
	t.Setenv("IMBATCH_OUTPUT_DIR", "out")
	t.Setenv("IMBATCH_ENGINE", "imaging")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "in", c.InputDir)
	assert.Equal(t, "out", c.OutputDir)
	assert.Equal(t, uint(320), c.Width)
	assert.Equal(t, uint(240), c.Height)
	assert.False(t, c.KeepRatio)
	assert.Equal(t, "png", c.Format)
	assert.Equal(t, 70, c.Quality)
	assert.Equal(t, "imaging", c.Engine)
	assert.True(t, c.InDevelop())
	assert.Equal(t, ".png", c.OutputExt())
	assert.NoError(t, c.Validate())
}

func TestLoadSize(t *testing.T) {
	c := Default()
	name := filepath.Join(t.TempDir(), "job.ini")
	require.NoError(t, os.WriteFile(name, []byte("[resize]\nsize = 1024x768\n"), 0644))
	require.NoError(t, c.LoadFile(name))
	assert.Equal(t, uint(1024), c.Width)
	assert.Equal(t, uint(768), c.Height)
}

func TestLoadWithoutFile(t *testing.T) {
	t.Setenv("IMBATCH_CONF_DIR", t.TempDir())
	t.Setenv("IMBATCH_KEEP_RATIO", "false")
	c, err := Load()
	require.NoError(t, err)
	assert.False(t, c.KeepRatio)
	assert.Equal(t, uint(800), c.Width)
}

func TestLoadBadValue(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imbatch.ini"), []byte("[resize]\nwidth = wide\n"), 0644))
	t.Setenv("IMBATCH_CONF_DIR", dir)
	_, err := Load()
	assert.Error(t, err)

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "imbatch.ini"), []byte("size = 10y10\n"), 0644))
	t.Setenv("IMBATCH_CONF_DIR", dir)
	_, err = Load()
	assert.ErrorIs(t, err, cimg.ErrInvalidSize)

	t.Setenv("IMBATCH_CONF_DIR", t.TempDir())
	t.Setenv("IMBATCH_WORKERS", "many")
	_, err = Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(c *Config)
	}{
		{"no input", func(c *Config) { c.InputDir = "" }},
		{"no output", func(c *Config) { c.OutputDir = "" }},
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"huge width", func(c *Config) { c.Width = cimg.MaxDimension + 1 }},
		{"huge height", func(c *Config) { c.Height = 1 << 30 }},
		{"quality low", func(c *Config) { c.Quality = 0 }},
		{"quality high", func(c *Config) { c.Quality = 101 }},
		{"format", func(c *Config) { c.Format = "TIFF" }},
		{"format path", func(c *Config) { c.Format = "a.png" }},
		{"engine", func(c *Config) { c.Engine = "magick" }},
		{"filter", func(c *Config) { c.Filter = "sinc" }},
		{"workers", func(c *Config) { c.Workers = 0 }},
	}
	for _, tt := range tests {
		c := Default()
		tt.edit(c)
		err := c.Validate()
		assert.ErrorIs(t, err, ErrInvalidConfig, tt.name)
	}

	c := Default()
	c.Format = "gif"
	c.Quality = 1
	assert.NoError(t, c.Validate())

	c = Default()
	c.Width, c.Height = cimg.MaxDimension, cimg.MaxDimension
	assert.NoError(t, c.Validate())
}
