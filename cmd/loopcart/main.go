package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/loopcart-io/loopcart/internal/interfaces/cli/migrate"
	"github.com/loopcart-io/loopcart/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loopcart",
		Short: "Loopcart - subscription commerce service",
		Long:  `Loopcart manages subscription line items, order previews and the subscription audit trail.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
