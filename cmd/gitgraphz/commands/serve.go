package commands

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/apogeum/gitgraphz/internal/render"
	"github.com/apogeum/gitgraphz/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a live preview that refreshes when the repository changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			repo, err := acquireRepo(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			build := func(ctx context.Context) ([]byte, error) {
				g, err := buildGraph(ctx, repo)
				if err != nil {
					return nil, err
				}
				return render.SVG(ctx, g.DOT())
			}

			watchDir := filepath.Join(repo.Path, ".git")
			return server.New(addr, watchDir, build).Start(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
