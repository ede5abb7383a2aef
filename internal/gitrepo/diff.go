package gitrepo

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Diff returns the textual diff of a commit against its first parent. Empty
// output means the commit carries no changes; a non-zero exit is a hard
// failure even when the caller is only probing for emptiness. Results are
// cached per hash for the lifetime of the handle, so concurrent fingerprint
// prefetches and stash probes never repeat an invocation.
func (r *Repo) Diff(ctx context.Context, hash string) ([]byte, error) {
	r.mu.Lock()
	if diff, ok := r.diffs[hash]; ok {
		r.mu.Unlock()
		return diff, nil
	}
	r.mu.Unlock()

	logrus.Debugf("diff command: git diff %s^ %s", hash, hash)
	cmd := exec.CommandContext(ctx, "git", "diff", hash+"^", hash)
	cmd.Dir = r.Path
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff %s^ %s failed: %w", hash, hash, err)
	}

	r.mu.Lock()
	r.diffs[hash] = out
	r.mu.Unlock()
	return out, nil
}
