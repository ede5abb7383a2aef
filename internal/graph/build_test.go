package graph

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apogeum/gitgraphz/internal/history"
)

type fakeDiffs struct {
	diffs map[string]string
	fail  string
}

func (f *fakeDiffs) Diff(_ context.Context, hash string) ([]byte, error) {
	if hash == f.fail {
		return nil, errors.New("diff invocation failed")
	}
	return []byte(f.diffs[hash]), nil
}

func findNode(t *testing.T, g *Graph, id string) Node {
	t.Helper()
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %q not found", id)
	return Node{}
}

func findEdges(g *Graph, from, to string) []Edge {
	var edges []Edge
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			edges = append(edges, e)
		}
	}
	return edges
}

func build(t *testing.T, commits []history.Commit, diffs *fakeDiffs) *Graph {
	t.Helper()
	b := NewBuilder(diffs)
	g, err := b.Build(context.Background(), commits)
	require.NoError(t, err)
	return g
}

func TestBuildFirstCommit(t *testing.T) {
	g := build(t, []history.Commit{
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial"},
	}, &fakeDiffs{})

	n := findNode(t, g, "a1")
	assert.Equal(t, ClassFirstCommit, n.Class)
	assert.Equal(t, "cornflowerblue", n.Fill)
	assert.Empty(t, g.Edges, "a root commit has no parent-link edge")
}

func TestBuildMerge(t *testing.T) {
	g := build(t, []history.Commit{
		{Hash: "m1", Parents: []string{"a1", "b2"}, Timestamp: 300, Author: "Alice", Message: "merge"},
	}, &fakeDiffs{})

	n := findNode(t, g, "m1")
	assert.Equal(t, ClassMerge, n.Class)
	require.Len(t, g.Edges, 2, "one edge per existing parent link")
	assert.Equal(t, Edge{From: "a1", To: "m1"}, g.Edges[0])
	assert.Equal(t, Edge{From: "b2", To: "m1"}, g.Edges[1])
}

// The concrete scenario: A (no parent), B and C both on A with the same
// message and identical content diffs, C later than B.
func TestBuildCherryPickScenario(t *testing.T) {
	commits := []history.Commit{
		{Hash: "c3", Parents: []string{"a1"}, Timestamp: 300, Author: "Alice", Message: "fix bug"},
		{Hash: "b2", Parents: []string{"a1"}, Timestamp: 200, Author: "Alice", Message: "fix bug"},
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial"},
	}
	diffs := &fakeDiffs{diffs: map[string]string{
		"b2": "@@ -1,1 +1,1 @@\n+fixed\n-broken\n",
		"c3": "@@ -7,1 +9,1 @@\n+fixed\n-broken\n",
	}}
	g := build(t, commits, diffs)

	assert.Equal(t, ClassCherryPick, findNode(t, g, "c3").Class)
	assert.Equal(t, ClassPlain, findNode(t, g, "b2").Class)
	assert.Equal(t, ClassFirstCommit, findNode(t, g, "a1").Class)

	require.Len(t, findEdges(g, "a1", "b2"), 1)
	require.Len(t, findEdges(g, "a1", "c3"), 1)

	picks := findEdges(g, "b2", "c3")
	require.Len(t, picks, 1)
	assert.Equal(t, "dotted", picks[0].Style)
	assert.Equal(t, "Cherry\nPick", picks[0].Label)
	assert.Equal(t, "red", picks[0].Color)
	assert.False(t, picks[0].NoConstraint)
}

// Every later duplicate pairs against the single earliest commit, never
// chaining through its predecessor.
func TestBuildCherryPickNoChaining(t *testing.T) {
	commits := []history.Commit{
		{Hash: "d4", Parents: []string{"a1"}, Timestamp: 400, Author: "Alice", Message: "fix bug"},
		{Hash: "c3", Parents: []string{"a1"}, Timestamp: 300, Author: "Alice", Message: "fix bug"},
		{Hash: "b2", Parents: []string{"a1"}, Timestamp: 200, Author: "Alice", Message: "fix bug"},
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial"},
	}
	diffs := &fakeDiffs{diffs: map[string]string{
		"b2": "+fixed\n",
		"c3": "+fixed\n",
		"d4": "+fixed\n",
	}}
	g := build(t, commits, diffs)

	assert.Len(t, findEdges(g, "b2", "c3"), 1)
	assert.Len(t, findEdges(g, "b2", "d4"), 1)
	assert.Empty(t, findEdges(g, "c3", "d4"))
}

func TestBuildRevertResolved(t *testing.T) {
	commits := []history.Commit{
		{Hash: "r1", Parents: []string{"b2"}, Timestamp: 300, Author: "Alice", Message: `Revert "fix bug"`},
		{Hash: "b2", Parents: []string{"a1"}, Timestamp: 200, Author: "Alice", Message: "fix bug"},
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial"},
	}
	g := build(t, commits, &fakeDiffs{})

	assert.Equal(t, ClassRevert, findNode(t, g, "r1").Class)

	reverts := findEdges(g, "r1", "b2")
	require.Len(t, reverts, 1)
	assert.Equal(t, "dotted", reverts[0].Style)
	assert.Equal(t, "Revert", reverts[0].Label)
	assert.Equal(t, "azure4", reverts[0].Color)
	assert.True(t, reverts[0].NoConstraint, "a revert edge must not constrain layout")
}

func TestBuildRevertUnresolved(t *testing.T) {
	commits := []history.Commit{
		{Hash: "r1", Parents: []string{"a1"}, Timestamp: 300, Author: "Alice", Message: `Revert "long gone"`},
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial"},
	}
	g := build(t, commits, &fakeDiffs{})

	assert.Equal(t, ClassRevert, findNode(t, g, "r1").Class)

	sink := findNode(t, g, "revert_r1")
	assert.True(t, sink.Placeholder)
	assert.False(t, sink.Commit)

	edges := findEdges(g, "r1", "revert_r1")
	require.Len(t, edges, 1)
	assert.Equal(t, "Revert ??", edges[0].Label)
	assert.Equal(t, "dotted", edges[0].Style)
}

func TestBuildStashScenario(t *testing.T) {
	// Log order puts the stash commit before its pseudo-parent, as an
	// all-refs traversal does.
	commits := []history.Commit{
		{Hash: "s1", Parents: []string{"p1", "p2"}, Timestamp: 400, Author: "Alice", Message: "WIP on master", Refs: "(refs/stash)"},
		{Hash: "p2", Parents: []string{"p1"}, Timestamp: 300, Author: "Alice", Message: "index on master"},
		{Hash: "p1", Parents: []string{"a1"}, Timestamp: 200, Author: "Alice", Message: "real work"},
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial"},
	}
	diffs := &fakeDiffs{diffs: map[string]string{
		"p1": "+real change\n",
		"p2": "",
		"s1": "+stashed\n",
	}}
	g := build(t, commits, diffs)

	stash := findNode(t, g, "s1")
	assert.Equal(t, ClassStash, stash.Class)
	assert.Contains(t, stash.Label, "STASH")
	assert.Equal(t, "red", stash.Fill)

	marker := findNode(t, g, "refs/stash")
	assert.Equal(t, "box", marker.Shape)
	assert.Equal(t, "red", marker.Fill)
	require.Len(t, findEdges(g, "refs/stash", "s1"), 1)

	index := findNode(t, g, "p2")
	assert.Equal(t, ClassStashIndex, index.Class)
	assert.Contains(t, index.Label, "STASH INDEX")

	work := findNode(t, g, "p1")
	assert.Equal(t, ClassPlain, work.Class)
}

func TestBuildRefMarkers(t *testing.T) {
	commits := []history.Commit{
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial", Refs: "(HEAD -> master, tag: v1.0, develop)"},
	}
	g := build(t, commits, &fakeDiffs{})

	head := findNode(t, g, "HEAD -> master")
	assert.Equal(t, "diamond", head.Shape)
	assert.Equal(t, "darkgreen", head.Fill)

	tag := findNode(t, g, "v1.0")
	assert.Equal(t, "oval", tag.Shape)
	assert.Equal(t, "yellow2", tag.Fill)

	branch := findNode(t, g, "develop")
	assert.Equal(t, "oval", branch.Shape)
	assert.Equal(t, "orange", branch.Fill)

	for _, id := range []string{"HEAD -> master", "v1.0", "develop"} {
		require.Len(t, findEdges(g, id, "a1"), 1, id)
	}
}

// Revert outranks cherry-pick when both apply to the same commit.
func TestBuildPrecedenceRevertOverCherryPick(t *testing.T) {
	commits := []history.Commit{
		{Hash: "r2", Parents: []string{"b1"}, Timestamp: 300, Author: "Alice", Message: `Revert "fix bug"`},
		{Hash: "r1", Parents: []string{"b1"}, Timestamp: 200, Author: "Alice", Message: `Revert "fix bug"`},
		{Hash: "b1", Parents: []string{"a0"}, Timestamp: 150, Author: "Alice", Message: "fix bug"},
		{Hash: "a0", Timestamp: 100, Author: "Alice", Message: "initial"},
	}
	diffs := &fakeDiffs{diffs: map[string]string{
		"r1": "+undo\n",
		"r2": "+undo\n",
	}}
	g := build(t, commits, diffs)

	// r2 duplicates r1's message and content, but it is also a revert.
	assert.Equal(t, ClassRevert, findNode(t, g, "r2").Class)
	assert.Len(t, findEdges(g, "r1", "r2"), 1, "the provenance edge is still emitted")
}

func TestBuildNodeLabels(t *testing.T) {
	commits := []history.Commit{
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: `say "hello"`},
	}

	b := NewBuilder(&fakeDiffs{})
	g, err := b.Build(context.Background(), commits)
	require.NoError(t, err)
	assert.Equal(t, "a1\n(Alice)", findNode(t, g, "a1").Label)

	b.ShowMessages = true
	g, err = b.Build(context.Background(), commits)
	require.NoError(t, err)
	assert.Equal(t, "a1\nsay 'hello'\n(Alice)", findNode(t, g, "a1").Label,
		"quotes in messages are replaced")
}

func TestBuildDiffFailureAborts(t *testing.T) {
	commits := []history.Commit{
		{Hash: "c2", Parents: []string{"a1"}, Timestamp: 200, Author: "Alice", Message: "dup"},
		{Hash: "c1", Parents: []string{"a1"}, Timestamp: 100, Author: "Alice", Message: "dup"},
	}
	b := NewBuilder(&fakeDiffs{fail: "c1"})
	_, err := b.Build(context.Background(), commits)
	assert.Error(t, err, "a failing diff invocation aborts the run")
}

func TestBuildDeterministic(t *testing.T) {
	commits := []history.Commit{
		{Hash: "c3", Parents: []string{"a1"}, Timestamp: 300, Author: "Alice", Message: "fix bug"},
		{Hash: "b2", Parents: []string{"a1"}, Timestamp: 200, Author: "Bob", Message: "fix bug", Refs: "(HEAD -> master, tag: v2)"},
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial"},
	}
	diffs := &fakeDiffs{diffs: map[string]string{"b2": "+x\n", "c3": "+x\n"}}

	first := build(t, commits, diffs).DOT()
	second := build(t, commits, diffs).DOT()
	assert.Equal(t, first, second, "identical input and diff responses give byte-identical output")
}

func TestBuildSequentialMatchesConcurrent(t *testing.T) {
	commits := []history.Commit{
		{Hash: "c3", Parents: []string{"a1"}, Timestamp: 300, Author: "Alice", Message: "fix bug"},
		{Hash: "b2", Parents: []string{"a1"}, Timestamp: 200, Author: "Alice", Message: "fix bug"},
		{Hash: "a1", Timestamp: 100, Author: "Alice", Message: "initial"},
	}
	diffs := &fakeDiffs{diffs: map[string]string{"b2": "+x\n", "c3": "+x\n"}}

	sequential := NewBuilder(diffs)
	sequential.Workers = 0
	sg, err := sequential.Build(context.Background(), commits)
	require.NoError(t, err)

	concurrent := NewBuilder(diffs)
	concurrent.Workers = 8
	cg, err := concurrent.Build(context.Background(), commits)
	require.NoError(t, err)

	assert.Equal(t, sg.DOT(), cg.DOT(), "prefetch concurrency cannot change the output")
}
