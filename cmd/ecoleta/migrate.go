package main

import (
	"fmt"

	"github.com/deppfellow/ecoleta/internal/config"
	"github.com/deppfellow/ecoleta/internal/database"
	"github.com/deppfellow/ecoleta/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log := logger.NewLogger(cfg.Observability)

			return database.Migrate(cmd.Context(), &log, cfg)
		},
	}
}
