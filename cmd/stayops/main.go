package main

import (
	"os"

	"github.com/spf13/cobra"

	"stayops/internal/interfaces/cli/migrate"
	"stayops/internal/interfaces/cli/server"
	"stayops/internal/interfaces/cli/superadmin"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stayops",
		Short: "StayOps - hotel network back office",
		Long:  `StayOps is the back-office service for a hotel onboarding network: location master data, catalog and menu management, and agent and hotel administration.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		superadmin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
