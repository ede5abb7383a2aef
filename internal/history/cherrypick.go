package history

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Provenance links a duplicated commit back to the earliest commit carrying
// the same message. Every later duplicate pairs against that single earliest
// commit, never against its immediate predecessor.
type Provenance struct {
	Earliest  string
	Duplicate string
}

// DetectCherryPick reports whether c duplicates an earlier commit. The commit
// qualifies when its message maps to a strictly earlier, distinct commit in
// the index and both change sets fingerprint identically. A message with a
// single occurrence never triggers detection.
func DetectCherryPick(ctx context.Context, c Commit, ix *MessageIndex, fp *Fingerprinter) (Provenance, bool, error) {
	earliest, ok := ix.Earliest(c.Message)
	if !ok || earliest == c.Hash {
		return Provenance{}, false, nil
	}
	ets, ok := ix.Timestamp(earliest)
	if !ok || c.Timestamp <= ets {
		return Provenance{}, false, nil
	}

	fpEarliest, err := fp.Fingerprint(ctx, earliest)
	if err != nil {
		return Provenance{}, false, err
	}
	fpCurrent, err := fp.Fingerprint(ctx, c.Hash)
	if err != nil {
		return Provenance{}, false, err
	}
	logrus.Debugf("message %q: fingerprints %s / %s", c.Message, fpEarliest, fpCurrent)
	if fpEarliest != fpCurrent {
		return Provenance{}, false, nil
	}
	return Provenance{Earliest: earliest, Duplicate: c.Hash}, true, nil
}
