// Command ecoleta runs the Ecoleta collection point API.
//
//	ecoleta serve     start the HTTP API and the background job workers
//	ecoleta migrate   apply pending database migrations and exit
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ecoleta",
		Short:         "Ecoleta waste collection point API",
		SilenceUsage: true,
	}

	root.AddCommand(newServeCmd(), newMigrateCmd())

	return root
}
