package commands

import (
	"context"
	"strings"

	"github.com/apogeum/gitgraphz/cmd/gitgraphz/internal/clierr"
	"github.com/apogeum/gitgraphz/internal/gitrepo"
	"github.com/apogeum/gitgraphz/internal/graph"
	"github.com/apogeum/gitgraphz/internal/history"
	"github.com/apogeum/gitgraphz/internal/style"
)

// Exit codes: repository access failures are distinguished so wrappers can
// tell "not a repo" from downstream command failures.
const exitRepoAccess = 2

func acquireRepo(ctx context.Context) (*gitrepo.Repo, error) {
	repo, err := gitrepo.Acquire(ctx, opts.repo)
	if err != nil {
		return nil, clierr.Wrap(exitRepoAccess, "repository access failed", err)
	}
	return repo, nil
}

// buildGraph runs the whole pipeline: log, parse, detect, assemble.
func buildGraph(ctx context.Context, repo *gitrepo.Repo) (*graph.Graph, error) {
	lines, err := repo.Log(ctx, opts.revRange, logOptions())
	if err != nil {
		return nil, err
	}
	commits := history.ParseLog(lines)

	builder := graph.NewBuilder(repo)
	builder.ShowMessages = opts.messages
	if opts.styleFile != "" {
		styles, err := style.Load(opts.styleFile)
		if err != nil {
			return nil, err
		}
		builder.Styles = styles
	}
	return builder.Build(ctx, commits)
}

func logOptions() []string {
	if len(opts.logOptions) == 1 && opts.logOptions[0] == "" {
		return []string{}
	}
	return opts.logOptions
}

// linkURL resolves the base URL used for commit links in html output. Only
// https URLs are accepted; a cloned repository's URL doubles as the default.
func linkURL(repo *gitrepo.Repo) string {
	url := opts.url
	if url == "" && repo.Cloned() {
		url = opts.repo
	}
	if !strings.HasPrefix(url, "https://") {
		return ""
	}
	return url
}
