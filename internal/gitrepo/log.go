package gitrepo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// logFormat emits one line per commit in the fixed grammar the parser
// understands: [<epoch>||<author>||<message>||<refs>] <hash> <parents>.
const logFormat = "[%ct||%cn||%s||%d] %h %p"

// Log runs git log and returns its raw output lines. With a nil options
// slice the traversal covers all refs; pass an empty slice to suppress that.
// revRange, when non-empty, is handed to git log verbatim.
func (r *Repo) Log(ctx context.Context, revRange string, options []string) ([]string, error) {
	args := []string{"log", "--pretty=format:" + logFormat}
	if options == nil {
		options = []string{"--all"}
	}
	args = append(args, options...)
	if revRange != "" {
		logrus.Infof("range: %s", revRange)
		args = append(args, revRange)
	}

	logrus.Infof("git log command: git %s", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Path
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git log failed: %w", err)
	}
	return strings.Split(string(out), "\n"), nil
}

// CommitBody returns the full git log entry for a single commit, used for
// HTML tooltips. Failures degrade to an empty body instead of aborting,
// since some graph nodes are not commits.
func (r *Repo) CommitBody(ctx context.Context, hash string) string {
	cmd := exec.CommandContext(ctx, "git", "log", "-n1", hash)
	cmd.Dir = r.Path
	out, err := cmd.Output()
	if err != nil {
		logrus.Debugf("git log -n1 %s failed: %v", hash, err)
		return ""
	}
	return string(out)
}
