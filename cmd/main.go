package main

import (
	"fmt"
	"os"

	"github.com/janhvi13092005/doc-talk-connect/cmd/bootstrap"
	"github.com/janhvi13092005/doc-talk-connect/config"
	"github.com/janhvi13092005/doc-talk-connect/internal/infrastructure/database"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "doctalk",
		Short: "DocTalk Connect patient booking service",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Initialize application with all dependencies
			app, err := bootstrap.New(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}

			app.Run()
			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error {
				return m.Up()
			})
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(func(m *database.Migrator) error {
				return m.Down(steps)
			})
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back (0 rolls back all)")

	cmd.AddCommand(upCmd)
	cmd.AddCommand(downCmd)
	return cmd
}

func withMigrator(fn func(m *database.Migrator) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})

	m, err := database.NewMigrator(cfg.DB, log)
	if err != nil {
		return err
	}
	defer m.Close()

	return fn(m)
}
