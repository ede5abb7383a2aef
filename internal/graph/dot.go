package graph

import "github.com/emicklei/dot"

// DOT serializes the graph to Graphviz text. Serialization happens once; the
// emitted text is a function of the statement lists alone, so identical
// builds produce byte-identical output.
func (g *Graph) DOT() string {
	dg := dot.NewGraph(dot.Directed)

	for _, n := range g.Nodes {
		node := dg.Node(n.ID)
		node.Attr("label", n.Label)
		if n.Placeholder {
			node.Attr("shape", "none")
			node.Attr("height", "0")
			node.Attr("width", "0")
			continue
		}
		if n.Shape != "" {
			node.Attr("shape", n.Shape)
		}
		if n.Filled {
			node.Attr("style", "filled")
		}
		if n.Fill != "" {
			node.Attr("fillcolor", n.Fill)
		}
	}

	for _, e := range g.Edges {
		edge := dg.Edge(dg.Node(e.From), dg.Node(e.To))
		if e.Style != "" {
			edge.Attr("style", e.Style)
		}
		if e.Label != "" {
			edge.Attr("label", e.Label)
		}
		if e.Color != "" {
			edge.Attr("color", e.Color)
		}
		if e.FontColor != "" {
			edge.Attr("fontcolor", e.FontColor)
		}
		if e.NoConstraint {
			edge.Attr("constraint", "false")
		}
	}

	return dg.String()
}
