package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apogeum/gitgraphz/internal/graph"
	"github.com/apogeum/gitgraphz/internal/history"
)

func writeStyle(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeStyle(t, `
colors:
  node: gray90
  cherry_pick: tomato
  head: seagreen
edges:
  revert: gray40
`)

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gray90", table.NodeFills[graph.ClassPlain])
	assert.Equal(t, "tomato", table.NodeFills[graph.ClassCherryPick])
	assert.Equal(t, "seagreen", table.RefFills[history.RefHead])
	assert.Equal(t, "gray40", table.RevertEdgeColor)

	// Untouched entries keep the stock palette.
	defaults := graph.DefaultStyles()
	assert.Equal(t, defaults.NodeFills[graph.ClassMerge], table.NodeFills[graph.ClassMerge])
	assert.Equal(t, defaults.RefFills[history.RefTag], table.RefFills[history.RefTag])
	assert.Equal(t, defaults.CherryPickEdgeColor, table.CherryPickEdgeColor)
}

func TestLoadEmptyFileKeepsDefaults(t *testing.T) {
	table, err := Load(writeStyle(t, ""))
	require.NoError(t, err)
	assert.Equal(t, graph.DefaultStyles(), table)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "reading style file")
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeStyle(t, "colors: [not, a, mapping]"))
	assert.ErrorContains(t, err, "parsing style file")
}
