package graph

import "github.com/apogeum/gitgraphz/internal/history"

// StyleTable maps classifications and reference kinds to DOT style
// attributes. Precedence is decided by the builder; the table only answers
// "what does this classification look like".
type StyleTable struct {
	NodeFills map[Classification]string
	RefFills  map[history.RefKind]string
	RefShapes map[history.RefKind]string

	CherryPickEdgeColor string
	RevertEdgeColor     string
}

// DefaultStyles returns the stock palette.
func DefaultStyles() StyleTable {
	return StyleTable{
		NodeFills: map[Classification]string{
			ClassPlain:       "cornsilk",
			ClassFirstCommit: "cornflowerblue",
			ClassMerge:       "cornsilk2",
			ClassCherryPick:  "burlywood1",
			ClassRevert:      "azure4",
			ClassStash:       "red",
			ClassStashIndex:  "red",
		},
		RefFills: map[history.RefKind]string{
			history.RefHead:   "darkgreen",
			history.RefTag:    "yellow2",
			history.RefBranch: "orange",
			history.RefStash:  "red",
		},
		RefShapes: map[history.RefKind]string{
			history.RefHead:   "diamond",
			history.RefTag:    "oval",
			history.RefBranch: "oval",
			history.RefStash:  "box",
		},
		CherryPickEdgeColor: "red",
		RevertEdgeColor:     "azure4",
	}
}

// Fill returns the node fill color for a classification, falling back to the
// plain color.
func (s StyleTable) Fill(c Classification) string {
	if fill, ok := s.NodeFills[c]; ok {
		return fill
	}
	return s.NodeFills[ClassPlain]
}

func (s StyleTable) RefFill(k history.RefKind) string {
	return s.RefFills[k]
}

func (s StyleTable) RefShape(k history.RefKind) string {
	return s.RefShapes[k]
}
