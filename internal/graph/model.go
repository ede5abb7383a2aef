// Package graph assembles parsed commit history into a typed graph of node
// and edge statements and serializes it to Graphviz DOT text once at the end.
package graph

// Classification is the final visual classification of a commit node.
type Classification int

const (
	ClassPlain Classification = iota
	ClassFirstCommit
	ClassMerge
	ClassCherryPick
	ClassRevert
	ClassStash
	ClassStashIndex
)

func (c Classification) String() string {
	switch c {
	case ClassFirstCommit:
		return "first-commit"
	case ClassMerge:
		return "merge"
	case ClassCherryPick:
		return "cherry-pick"
	case ClassRevert:
		return "revert"
	case ClassStash:
		return "stash"
	case ClassStashIndex:
		return "stash-index"
	default:
		return "plain"
	}
}

// Node is one node statement. Commit nodes carry their classification;
// reference markers and placeholder sinks do not.
type Node struct {
	ID    string
	Label string
	Shape string
	Fill  string

	// Filled adds style=filled.
	Filled bool
	// Placeholder marks a zero-size sink anchoring an unresolved revert edge.
	Placeholder bool
	// Commit marks nodes that represent commits, as opposed to reference
	// markers and placeholders.
	Commit bool
	Class  Classification
}

// Edge is one edge statement. The zero value is a plain solid parent link.
type Edge struct {
	From      string
	To        string
	Style     string
	Label     string
	Color     string
	FontColor string

	// NoConstraint emits constraint=false so the edge does not influence
	// node ranking during layout.
	NoConstraint bool
}

// Graph is an append-only collection of node and edge statements, built
// incrementally during the render pass and serialized once.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

func (g *Graph) AddNode(n Node) {
	g.Nodes = append(g.Nodes, n)
}

func (g *Graph) AddEdge(e Edge) {
	g.Edges = append(g.Edges, e)
}

// CommitNodes returns only the nodes representing commits.
func (g *Graph) CommitNodes() []Node {
	var nodes []Node
	for _, n := range g.Nodes {
		if n.Commit {
			nodes = append(nodes, n)
		}
	}
	return nodes
}
