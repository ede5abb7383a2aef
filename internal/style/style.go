// Package style loads optional yaml overrides for the graph color palette.
package style

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/apogeum/gitgraphz/internal/graph"
	"github.com/apogeum/gitgraphz/internal/history"
)

// File is the yaml schema of a style override file. Every field is optional;
// empty values keep the stock palette.
type File struct {
	Colors struct {
		Node        string `yaml:"node"`
		FirstCommit string `yaml:"first_commit"`
		Merge       string `yaml:"merge"`
		CherryPick  string `yaml:"cherry_pick"`
		Revert      string `yaml:"revert"`
		Stash       string `yaml:"stash"`
		StashIndex  string `yaml:"stash_index"`
		Head        string `yaml:"head"`
		Tag         string `yaml:"tag"`
		Branch      string `yaml:"branch"`
	} `yaml:"colors"`
	Edges struct {
		CherryPick string `yaml:"cherry_pick"`
		Revert     string `yaml:"revert"`
	} `yaml:"edges"`
}

// Load reads a style file and applies it on top of the default table.
func Load(path string) (graph.StyleTable, error) {
	table := graph.DefaultStyles()

	data, err := os.ReadFile(path)
	if err != nil {
		return table, fmt.Errorf("reading style file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return table, fmt.Errorf("parsing style file %s: %w", path, err)
	}

	override := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	node := table.NodeFills
	overrideKey(node, graph.ClassPlain, f.Colors.Node)
	overrideKey(node, graph.ClassFirstCommit, f.Colors.FirstCommit)
	overrideKey(node, graph.ClassMerge, f.Colors.Merge)
	overrideKey(node, graph.ClassCherryPick, f.Colors.CherryPick)
	overrideKey(node, graph.ClassRevert, f.Colors.Revert)
	overrideKey(node, graph.ClassStash, f.Colors.Stash)
	overrideKey(node, graph.ClassStashIndex, f.Colors.StashIndex)

	refs := table.RefFills
	if f.Colors.Head != "" {
		refs[history.RefHead] = f.Colors.Head
	}
	if f.Colors.Tag != "" {
		refs[history.RefTag] = f.Colors.Tag
	}
	if f.Colors.Branch != "" {
		refs[history.RefBranch] = f.Colors.Branch
	}
	if f.Colors.Stash != "" {
		refs[history.RefStash] = f.Colors.Stash
	}

	override(&table.CherryPickEdgeColor, f.Edges.CherryPick)
	override(&table.RevertEdgeColor, f.Edges.Revert)

	return table, nil
}

func overrideKey(m map[graph.Classification]string, k graph.Classification, v string) {
	if v != "" {
		m[k] = v
	}
}
