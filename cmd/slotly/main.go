package main

import (
	"os"

	"github.com/spf13/cobra"

	"slotly/internal/interfaces/cli/migrate"
	"slotly/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slotly",
		Short: "Slotly - multi-tenant appointment booking backend",
		Long:  `Slotly is a multi-tenant appointment booking service with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
