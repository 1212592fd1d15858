package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-imsto/imbatch/config"
)

func TestCommandNames(t *testing.T) {
	var names []string
	for _, c := range commands {
		names = append(names, c.Name())
		assert.NotNil(t, c.Run, c.Name())
	}
	assert.Equal(t, []string{"resize", "list", "info"}, names)
}

func TestApplyFlags(t *testing.T) {
	c := config.Default()
	c.Quality = 60
	require.NoError(t, cmdResize.Flag.Parse([]string{"-w", "320", "-keep=false", "-format", "png", "in", "out"}))
	require.NoError(t, applyFlags(c, &cmdResize.Flag))
	applyDirs(c, cmdResize.Flag.Args())

	assert.Equal(t, uint(320), c.Width)
	assert.Equal(t, uint(600), c.Height)
	assert.False(t, c.KeepRatio)
	assert.Equal(t, "png", c.Format)
	// unset flags keep the loaded value
	assert.Equal(t, 60, c.Quality)
	assert.Equal(t, "in", c.InputDir)
	assert.Equal(t, "out", c.OutputDir)
}

func TestApplySizeFlag(t *testing.T) {
	fs := &cmdResize.Flag
	defer func() { *rzSize = "" }()

	c := config.Default()
	require.NoError(t, fs.Parse([]string{"-size", "1024x768"}))
	require.NoError(t, applyFlags(c, fs))
	assert.Equal(t, uint(1024), c.Width)
	assert.Equal(t, uint(768), c.Height)

	require.NoError(t, fs.Parse([]string{"-size", "big"}))
	assert.Error(t, applyFlags(config.Default(), fs))
}
