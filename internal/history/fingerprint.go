package history

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"sync"
)

// DiffSource supplies the textual diff of a commit against its first parent.
// Empty output means "no changes"; a non-nil error is a hard failure.
type DiffSource interface {
	Diff(ctx context.Context, hash string) ([]byte, error)
}

// Fingerprinter computes content-based equivalence fingerprints for commits.
// Two commits with identical content diffs yield equal fingerprints; hunk
// headers, index lines and context lines do not contribute. Results are
// memoized so each hash costs at most one diff invocation per run.
type Fingerprinter struct {
	src DiffSource

	mu    sync.Mutex
	cache map[string]string
}

func NewFingerprinter(src DiffSource) *Fingerprinter {
	return &Fingerprinter{src: src, cache: make(map[string]string)}
}

// Fingerprint returns the digest for the commit's change set. The digest is a
// SHA-1 over the added/removed lines only; it is an equivalence key, not a
// security artifact.
func (f *Fingerprinter) Fingerprint(ctx context.Context, hash string) (string, error) {
	f.mu.Lock()
	if fp, ok := f.cache[hash]; ok {
		f.mu.Unlock()
		return fp, nil
	}
	f.mu.Unlock()

	diff, err := f.src.Diff(ctx, hash)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(contentLines(diff))
	fp := hex.EncodeToString(sum[:])

	f.mu.Lock()
	f.cache[hash] = fp
	f.mu.Unlock()
	return fp, nil
}

// Prefetch computes fingerprints for the given hashes with a bounded worker
// pool. Lookups are independent of each other, so fetch order cannot affect
// any tie-break decision; those are made from the already-built MessageIndex.
// The first error encountered is returned after all workers drain.
func (f *Fingerprinter) Prefetch(ctx context.Context, hashes []string, workers int) error {
	if workers < 1 {
		workers = 1
	}
	if workers > len(hashes) {
		workers = len(hashes)
	}
	if workers == 0 {
		return nil
	}

	jobs := make(chan string)
	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for h := range jobs {
				if _, err := f.Fingerprint(ctx, h); err != nil {
					errMu.Lock()
					if firstErr == nil {
						firstErr = err
					}
					errMu.Unlock()
				}
			}
		}()
	}

	seen := make(map[string]bool, len(hashes))
	for _, h := range hashes {
		if !seen[h] {
			seen[h] = true
			jobs <- h
		}
	}
	close(jobs)
	wg.Wait()
	return firstErr
}

// contentLines keeps only the lines starting with "+" or "-", dropping hunk
// headers, hashes and context.
func contentLines(diff []byte) []byte {
	var kept [][]byte
	for _, line := range bytes.Split(diff, []byte("\n")) {
		if bytes.HasPrefix(line, []byte("+")) || bytes.HasPrefix(line, []byte("-")) {
			kept = append(kept, line)
		}
	}
	return bytes.Join(kept, []byte("\n"))
}
