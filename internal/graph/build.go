package graph

import (
	"bytes"
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/apogeum/gitgraphz/internal/history"
)

// Builder runs the render pass: one scan over the parsed commit list,
// consulting the detectors per commit and appending node and edge statements.
type Builder struct {
	Diffs        history.DiffSource
	Styles       StyleTable
	ShowMessages bool

	// Workers bounds the concurrent fingerprint prefetch. Values below 2
	// keep every diff invocation sequential.
	Workers int
}

func NewBuilder(diffs history.DiffSource) *Builder {
	return &Builder{
		Diffs:   diffs,
		Styles:  DefaultStyles(),
		Workers: 4,
	}
}

// Build assembles the graph for the given commits, in input order. The
// message index is built first, then each commit is classified and emitted.
// Given an identical ordered commit list and identical diff responses the
// result is identical.
func (b *Builder) Build(ctx context.Context, commits []history.Commit) (*Graph, error) {
	ix := history.NewMessageIndex(commits)
	fp := history.NewFingerprinter(b.Diffs)

	if b.Workers > 1 {
		if err := fp.Prefetch(ctx, duplicateHashes(commits, ix), b.Workers); err != nil {
			return nil, err
		}
	}

	g := &Graph{}
	stashIndex := make(map[string]bool)

	for _, c := range commits {
		class := ClassPlain
		if len(c.Parents) == 0 {
			class = ClassFirstCommit
		}
		if len(c.Parents) == 2 {
			class = ClassMerge
		}

		prov, picked, err := history.DetectCherryPick(ctx, c, ix, fp)
		if err != nil {
			return nil, err
		}
		if picked {
			g.AddEdge(Edge{
				From:      prov.Earliest,
				To:        prov.Duplicate,
				Style:     "dotted",
				Label:     "Cherry\nPick",
				Color:     b.Styles.CherryPickEdgeColor,
				FontColor: b.Styles.CherryPickEdgeColor,
			})
			class = ClassCherryPick
		}

		if subject, isRevert := history.ParseRevertSubject(c.Message); isRevert {
			if original, found := ix.Earliest(subject); found {
				g.AddEdge(Edge{
					From:         c.Hash,
					To:           original,
					Style:        "dotted",
					Label:        "Revert",
					Color:        b.Styles.RevertEdgeColor,
					FontColor:    b.Styles.RevertEdgeColor,
					NoConstraint: true,
				})
			} else {
				logrus.Warnf("not able to find the original commit reverted by %s", c.Hash)
				sink := "revert_" + c.Hash
				g.AddNode(Node{ID: sink, Placeholder: true})
				g.AddEdge(Edge{
					From:      c.Hash,
					To:        sink,
					Style:     "dotted",
					Label:     "Revert ??",
					Color:     b.Styles.RevertEdgeColor,
					FontColor: b.Styles.RevertEdgeColor,
				})
			}
			class = ClassRevert
		}

		markers := history.ParseDecorations(c.Refs)
		for _, m := range markers {
			if m.Kind != history.RefStash {
				continue
			}
			class = ClassStash
			// A stash pseudo-parent carries no content changes; an
			// empty diff pre-classifies it for its own render visit.
			for _, parent := range c.Parents {
				empty, err := b.emptyDiff(ctx, parent)
				if err != nil {
					return nil, err
				}
				if empty {
					logrus.Debugf("empty diff on %s, pre-classifying as stash index", parent)
					stashIndex[parent] = true
					break
				}
			}
		}

		if stashIndex[c.Hash] {
			class = ClassStashIndex
		}

		g.AddNode(Node{
			ID:     c.Hash,
			Label:  b.nodeLabel(c, class),
			Shape:  "box",
			Fill:   b.Styles.Fill(class),
			Filled: true,
			Commit: true,
			Class:  class,
		})
		for _, parent := range c.Parents {
			g.AddEdge(Edge{From: parent, To: c.Hash})
		}

		for _, m := range markers {
			g.AddNode(Node{
				ID:     m.Name,
				Label:  m.Name,
				Shape:  b.Styles.RefShape(m.Kind),
				Fill:   b.Styles.RefFill(m.Kind),
				Filled: true,
			})
			g.AddEdge(Edge{From: m.Name, To: c.Hash})
		}
	}

	return g, nil
}

func (b *Builder) nodeLabel(c history.Commit, class Classification) string {
	var label strings.Builder
	label.WriteString(c.Hash)
	if b.ShowMessages {
		label.WriteString("\n")
		label.WriteString(strings.ReplaceAll(c.Message, `"`, "'"))
	}
	switch class {
	case ClassStash:
		label.WriteString("\nSTASH")
	case ClassStashIndex:
		label.WriteString("\nSTASH INDEX")
	}
	label.WriteString("\n(" + c.Author + ")")
	return label.String()
}

func (b *Builder) emptyDiff(ctx context.Context, hash string) (bool, error) {
	diff, err := b.Diffs.Diff(ctx, hash)
	if err != nil {
		return false, err
	}
	return len(bytes.TrimSpace(diff)) == 0, nil
}

// duplicateHashes collects every hash the cherry-pick pass will fingerprint:
// commits whose message maps to an earlier distinct commit, plus that
// earliest commit itself.
func duplicateHashes(commits []history.Commit, ix *history.MessageIndex) []string {
	var hashes []string
	seen := make(map[string]bool)
	for _, c := range commits {
		earliest, ok := ix.Earliest(c.Message)
		if !ok || earliest == c.Hash {
			continue
		}
		ets, ok := ix.Timestamp(earliest)
		if !ok || c.Timestamp <= ets {
			continue
		}
		for _, h := range []string{earliest, c.Hash} {
			if !seen[h] {
				seen[h] = true
				hashes = append(hashes, h)
			}
		}
	}
	return hashes
}
