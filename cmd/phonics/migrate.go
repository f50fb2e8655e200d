package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/phonics-backend/internal/adapter/postgres"
	"github.com/heartmarshall/phonics-backend/internal/app"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cfg.Database.Enabled() {
				return errors.New("database.dsn is not configured")
			}
			return postgres.Migrate(cmd.Context(), cfg.Database.DSN, app.NewLogger(cfg.Log))
		},
	}
}
