package batch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestIsCandidate(t *testing.T) {
	for _, name := range []string{"a.png", "photo.JPG", "b.jpeg", "c.Bmp", "d.GIF", "x.tar.png"} {
		assert.True(t, IsCandidate(name), name)
	}
	for _, name := range []string{"notes.txt", "a.webp", "png", "a.png.bak", "README"} {
		assert.False(t, IsCandidate(name), name)
	}
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "photo.JPG", "x")
	touch(t, dir, "a.png", "x")
	touch(t, dir, "notes.txt", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.png"), 0755))
	touch(t, filepath.Join(dir, "nested.png"), "inner.png", "x")

	cands, err := List(dir)
	require.NoError(t, err)
	var names []string
	for _, c := range cands {
		names = append(names, c.Name)
		assert.Equal(t, filepath.Join(dir, c.Name), c.Path)
	}
	assert.ElementsMatch(t, []string{"photo.JPG", "a.png"}, names)
}

func TestListErrors(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "missing"))
	var de *DirError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "open", de.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	file := touch(t, t.TempDir(), "plain.png", "x")
	_, err = List(file)
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "readdir", de.Op)
	assert.Contains(t, err.Error(), file)
}

func TestOutputName(t *testing.T) {
	tests := []struct{ name, ext, want string }{
		{"a.png", ".jpeg", "a.jpeg"},
		{"photo.JPG", ".png", "photo.png"},
		{"x.tar.gif", ".bmp", "x.tar.bmp"},
		{".png", ".jpeg", ".png.jpeg"},
		{"b.jpg", ".jpg", "b.jpg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OutputName(tt.name, tt.ext), tt.name)
	}
}

func TestPlanOutputs(t *testing.T) {
	cands := []Candidate{
		{Name: "a.jpg", Path: "in/a.jpg"},
		{Name: "b.png", Path: "in/b.png"},
		{Name: "a.png", Path: "in/a.png"},
		{Name: "a.gif", Path: "in/a.gif"},
	}
	plans, collisions := PlanOutputs(cands, "out", ".jpeg")
	require.Len(t, plans, 4)
	assert.Equal(t, filepath.Join("out", "a.jpeg"), plans[0].Dest)
	assert.Equal(t, filepath.Join("out", "b.jpeg"), plans[1].Dest)
	require.Len(t, collisions, 1)
	assert.Equal(t, filepath.Join("out", "a.jpeg"), collisions[0].Dest)
	assert.Equal(t, []string{"a.jpg", "a.png", "a.gif"}, collisions[0].Names)

	_, collisions = PlanOutputs(cands[:2], "out", ".jpeg")
	assert.Empty(t, collisions)
}
