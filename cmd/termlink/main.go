// Command termlink links glossary definitions against a term catalog.
//
// The catalog is a JSON or YAML file of (name, definition) pairs; its path
// comes from --catalog, CATALOG_PATH or the config file (CONFIG_PATH).
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	root := &cobra.Command{
		Use:           "termlink",
		Short:         "Link glossary definitions to the terms they mention",
		Long:          "termlink finds names of other glossary terms inside each definition and turns them into cross-reference links.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "path to the term catalog (.json, .yaml, .yml); overrides CATALOG_PATH")

	root.AddCommand(linkCmd(&opts))
	root.AddCommand(renderCmd(&opts))
	root.AddCommand(backlinksCmd(&opts))
	root.AddCommand(checkCmd(&opts))
	root.AddCommand(versionCmd())

	return root
}
