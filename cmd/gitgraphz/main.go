package main

import (
	"fmt"
	"os"

	"github.com/apogeum/gitgraphz/cmd/gitgraphz/commands"
	"github.com/apogeum/gitgraphz/cmd/gitgraphz/internal/clierr"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
