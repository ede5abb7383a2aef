// Package history parses a git log stream into commit records and runs the
// relationship-inference passes: duplicate (cherry-pick) detection, revert
// pairing, and reference classification.
package history

// Commit is one parsed log record. It is immutable after parsing; every later
// pass reads it, none mutates it.
type Commit struct {
	Hash      string
	Parents   []string
	Timestamp int64
	Author    string
	Message   string
	Refs      string
}
