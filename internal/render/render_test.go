package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"graph.svg", "svg"},
		{"out/graph.png", "png"},
		{"graph.pdf", "pdf"},
		{"history.dot", "dot"},
		{"noext", ""},
		{"dir.with.dots/graph.svg", "svg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.path), tt.path)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "graph.dot")
	require.NoError(t, WriteFile(path, []byte("digraph {}\n")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "digraph {}\n", string(got))
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")
	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))
}

func TestWriteFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(filepath.Join(dir, "graph.dot"), []byte("x")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "graph.dot", entries[0].Name())
}
