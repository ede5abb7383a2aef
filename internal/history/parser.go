package history

import (
	"strconv"
	"strings"
)

// ParseLine parses a single log line of the form
//
//	[<epoch>||<author>||<message>||<refs>] <hash> <parent1>? <parent2>?
//
// and reports whether the line was a commit line. Blank separators and
// malformed lines return ok=false and are dropped by the caller.
func ParseLine(line string) (Commit, bool) {
	if !strings.HasPrefix(line, "[") {
		return Commit{}, false
	}
	end := strings.LastIndex(line, "]")
	if end < 0 {
		return Commit{}, false
	}
	head, tail := line[1:end], line[end+1:]

	epoch, rest, ok := strings.Cut(head, "||")
	if !ok {
		return Commit{}, false
	}
	ts, err := strconv.ParseInt(epoch, 10, 64)
	if err != nil {
		return Commit{}, false
	}

	// The refs field is everything after the last separator, so a message
	// containing "||" stays part of the message.
	sep := strings.LastIndex(rest, "||")
	if sep < 0 {
		return Commit{}, false
	}
	mid, refs := rest[:sep], rest[sep+2:]
	author, message, ok := strings.Cut(mid, "||")
	if !ok {
		return Commit{}, false
	}
	// %d expands with a leading space when decorations are present.
	refs = strings.TrimPrefix(refs, " ")

	fields := strings.Fields(tail)
	if len(fields) == 0 || len(fields) > 3 {
		return Commit{}, false
	}
	for _, f := range fields {
		if !isHex(f) {
			return Commit{}, false
		}
	}

	return Commit{
		Hash:      fields[0],
		Parents:   fields[1:],
		Timestamp: ts,
		Author:    author,
		Message:   message,
		Refs:      refs,
	}, true
}

// ParseLog parses every line of a log stream, dropping non-commit lines.
// Output order follows input order; the parser imposes no ordering.
func ParseLog(lines []string) []Commit {
	commits := make([]Commit, 0, len(lines))
	for _, line := range lines {
		if c, ok := ParseLine(line); ok {
			commits = append(commits, c)
		}
	}
	return commits
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
