package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dtroode/lifeos-server/database"
	"github.com/dtroode/lifeos-server/internal/config"
	"github.com/dtroode/lifeos-server/internal/logger"
	"github.com/dtroode/lifeos-server/internal/repository/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Long: `Apply the embedded goose migrations to DATABASE_DSN and print the
resulting schema version. "serve" applies them too; this command is for
running them ahead of a deploy.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		return fmt.Errorf("migrate requires STORE_DRIVER=%s, got %q", config.StoreDriverPostgres, cfg.StoreDriver)
	}
	log := logger.New(cfg.LogLevel)

	ctx := cmd.Context()
	conn, err := postgres.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := database.Migrate(ctx, conn.DB); err != nil {
		return err
	}

	version, err := database.Version(ctx, conn.DB)
	if err != nil {
		return err
	}

	log.Info("migrations applied", "version", version)
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
	return nil
}
