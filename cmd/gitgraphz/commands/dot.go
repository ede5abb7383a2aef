package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apogeum/gitgraphz/internal/render"
)

func newDotCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Emit the graph as Graphviz DOT text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
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

			if output == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}
			return render.WriteFile(output, []byte(text))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write DOT to a file instead of stdout")
	return cmd
}
