// Package render drives the external graph-layout tool: piping DOT text
// through the dot binary to produce images or inline SVG.
package render

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format returns the dot output format implied by a file name, e.g. "svg"
// for graph.svg.
func Format(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// SVG renders DOT text to SVG bytes.
func SVG(ctx context.Context, dotText string) ([]byte, error) {
	return run(ctx, dotText, "-Tsvg")
}

// Image renders DOT text into the given file; the extension selects the
// format, any -T argument the dot tool accepts.
func Image(ctx context.Context, dotText, path string) error {
	_, err := run(ctx, dotText, "-T"+Format(path), "-o", path)
	return err
}

func run(ctx context.Context, dotText string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath("dot"); err != nil {
		return nil, fmt.Errorf("graphviz dot not found in PATH: %w", err)
	}

	logrus.Infof("dot command: dot %s", strings.Join(args, " "))
	cmd := exec.CommandContext(ctx, "dot", args...)
	cmd.Stdin = strings.NewReader(dotText)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("dot failed: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("dot failed: %w", err)
	}
	return stdout.Bytes(), nil
}
