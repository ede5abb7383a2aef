package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

type options struct {
	repo       string
	url        string
	revRange   string
	logOptions []string
	messages   bool
	styleFile  string
	verbosity  int
}

var opts options

// NewRootCmd constructs the gitgraphz root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gitgraphz",
		Short:         "Render a git history as an annotated Graphviz graph",
		Long: `gitgraphz renders a repository's commit history as a graph showing
tags, branches, stash nodes, cherry-picks and reverts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case opts.verbosity >= 2:
				logrus.SetLevel(logrus.DebugLevel)
			case opts.verbosity == 1:
				logrus.SetLevel(logrus.InfoLevel)
			default:
				logrus.SetLevel(logrus.WarnLevel)
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.repo, "repo", "p", "", "git repository to use: a local directory, or a clone URL")
	pf.StringVarP(&opts.url, "url", "u", "", "repository base URL for commit links in html output")
	pf.StringVarP(&opts.revRange, "range", "r", "", "git commit range")
	pf.StringArrayVar(&opts.logOptions, "option", nil,
		`extra option for the git log command; repeatable (default --all, use --option="" to suppress)`)
	pf.BoolVarP(&opts.messages, "messages", "m", false, "show commit messages in nodes")
	pf.StringVar(&opts.styleFile, "style", "", "yaml file overriding node and edge colors")
	pf.CountVarP(&opts.verbosity, "verbose", "v", "show info messages, or debug messages if given twice")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the gitgraphz version",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gitgraphz version %s\n", Version)
		},
	})
	cmd.AddCommand(newDotCmd())
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}
