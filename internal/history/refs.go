package history

import "strings"

// RefKind classifies a single reference decoration entry.
type RefKind int

const (
	RefBranch RefKind = iota
	RefHead
	RefTag
	RefStash
)

// RefMarker is one decoration entry with its display name. Tag names are
// stripped of their "tag: " prefix.
type RefMarker struct {
	Name string
	Kind RefKind
}

// ParseDecorations splits a raw decoration string, a parenthesized
// comma-separated list, into classified markers. Classification priority per
// entry: HEAD, then tag, then stash, else branch.
func ParseDecorations(refs string) []RefMarker {
	refs = strings.NewReplacer("(", "", ")", "").Replace(refs)
	var markers []RefMarker
	for _, entry := range strings.Split(refs, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		switch {
		case strings.Contains(entry, "HEAD"):
			markers = append(markers, RefMarker{Name: entry, Kind: RefHead})
		case strings.Contains(entry, "tag"):
			markers = append(markers, RefMarker{Name: strings.TrimPrefix(entry, "tag: "), Kind: RefTag})
		case strings.Contains(entry, "stash"):
			markers = append(markers, RefMarker{Name: entry, Kind: RefStash})
		default:
			markers = append(markers, RefMarker{Name: entry, Kind: RefBranch})
		}
	}
	return markers
}
