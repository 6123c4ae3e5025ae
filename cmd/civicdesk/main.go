// @title CivicDesk API
// @version 1.0
// @description Civic complaint intake, tracking and triage.
// @BasePath /api
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/civicdesk/civicdesk/internal/interfaces/cli/migrate"
	"github.com/civicdesk/civicdesk/internal/interfaces/cli/seed"
	"github.com/civicdesk/civicdesk/internal/interfaces/cli/server"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "civicdesk",
		Short: "CivicDesk - civic complaint tracking",
		Long:  `CivicDesk accepts citizen complaints, routes them to municipal departments and tracks them to resolution.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
