package commands

import (
	"github.com/spf13/cobra"

	"github.com/apogeum/gitgraphz/internal/htmlpage"
	"github.com/apogeum/gitgraphz/internal/render"
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render the graph into a file",
		Long: `Render the graph into a file. The extension selects the format: .dot
writes the graph text, .html builds a standalone page with commit tooltips,
anything else is handed to the dot tool (svg, png, pdf, ...).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			repo, err := acquireRepo(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			g, err := buildGraph(ctx, repo)
			if err != nil {
				return err
			}
			text := g.DOT()

			switch render.Format(path) {
			case "dot":
				return render.WriteFile(path, []byte(text))
			case "html":
				svg, err := render.SVG(ctx, text)
				if err != nil {
					return err
				}
				page, err := htmlpage.Build(ctx, g, svg, repo, linkURL(repo))
				if err != nil {
					return err
				}
				return render.WriteFile(path, []byte(page))
			default:
				return render.Image(ctx, text, path)
			}
		},
	}
	return cmd
}
