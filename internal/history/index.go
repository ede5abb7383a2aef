package history

// MessageIndex maps each exact message text to the chronologically earliest
// commit carrying it. Equality is exact string equality, no normalization.
// It also retains a timestamp per hash for later tie-break comparisons.
type MessageIndex struct {
	earliest map[string]string
	times    map[string]int64
}

// NewMessageIndex builds the index in one pass over all parsed commits.
// For a message seen on N commits the index holds exactly the
// minimum-timestamp hash; ties keep the first one seen.
func NewMessageIndex(commits []Commit) *MessageIndex {
	ix := &MessageIndex{
		earliest: make(map[string]string, len(commits)),
		times:    make(map[string]int64, len(commits)),
	}
	for _, c := range commits {
		ix.times[c.Hash] = c.Timestamp
		prev, ok := ix.earliest[c.Message]
		if !ok || c.Timestamp < ix.times[prev] {
			ix.earliest[c.Message] = c.Hash
		}
	}
	return ix
}

// Earliest returns the hash of the earliest commit with the given message.
func (ix *MessageIndex) Earliest(message string) (string, bool) {
	h, ok := ix.earliest[message]
	return h, ok
}

// Timestamp returns the recorded timestamp for a hash.
func (ix *MessageIndex) Timestamp(hash string) (int64, bool) {
	t, ok := ix.times[hash]
	return t, ok
}
