package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coursecat/api/internal/bootstrap"
	"github.com/coursecat/api/internal/db"
	"github.com/coursecat/api/internal/pkg/logger"
	"github.com/coursecat/api/internal/server"
)

var rootCmd = &cobra.Command{
	Use:   "coursecat",
	Short: "Course catalog management backend",
	Long:  "HTTP backend for managing users, instructors, action areas and courses.",
}

// serveCmd starts the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		srv, err := server.NewServer()
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize server")
			os.Exit(1)
		}

		if err := srv.Run(); err != nil {
			logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
			os.Exit(1)
		}

		logger.Info().Msg("Application finished gracefully.")
	},
}

// migrateCmd applies pending migrations and exits
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		return bootstrap.RunMigrations(context.Background(), database.Pool, lgr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
