// Package gitrepo is the repository access collaborator: opening or cloning
// a repository and spawning the git log/diff commands the core consumes.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	gogit "github.com/go-git/go-git/v5"
	"github.com/sirupsen/logrus"
)

// ErrNotRepository reports that a path is not inside a git repository.
var ErrNotRepository = errors.New("not a git repository")

// Repo is a read-only handle on a git repository. All invocations are
// read-only, so no locking is needed beyond the diff cache.
type Repo struct {
	// Path is the working tree root, or the clone directory for remote
	// repositories.
	Path string

	tmp string

	mu    sync.Mutex
	diffs map[string][]byte
}

// Open validates that path is a git repository and returns a handle on it.
func Open(path string) (*Repo, error) {
	if path == "" {
		path = "."
	}
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, path)
		}
		return nil, fmt.Errorf("opening repository %s: %w", path, err)
	}
	return &Repo{Path: path, diffs: make(map[string][]byte)}, nil
}

// Clone clones url into a temporary directory, removed by Close.
func Clone(ctx context.Context, url string) (*Repo, error) {
	dir, err := os.MkdirTemp("", "gitgraphz-*")
	if err != nil {
		return nil, err
	}
	logrus.Infof("cloning %s into %s", url, dir)
	if _, err := gogit.PlainCloneContext(ctx, dir, false, &gogit.CloneOptions{URL: url}); err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("cloning %s: %w", url, err)
	}
	return &Repo{Path: dir, tmp: dir, diffs: make(map[string][]byte)}, nil
}

// Acquire opens spec when it is an existing directory (or empty, meaning the
// working directory) and clones it otherwise.
func Acquire(ctx context.Context, spec string) (*Repo, error) {
	if spec == "" {
		return Open("")
	}
	if info, err := os.Stat(spec); err == nil && info.IsDir() {
		return Open(spec)
	}
	return Clone(ctx, spec)
}

// Cloned reports whether the repository lives in a temporary clone.
func (r *Repo) Cloned() bool {
	return r.tmp != ""
}

// Close removes the temporary clone directory, if any.
func (r *Repo) Close() error {
	if r.tmp == "" {
		return nil
	}
	return os.RemoveAll(r.tmp)
}
