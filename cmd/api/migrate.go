package main

import (
	"github.com/spf13/cobra"

	"github.com/bryanwahyu/roi-simulator/internal/infra/db"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the roi_scenarios table if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			ctx := logger.WithContext(cmd.Context())

			store, err := db.Open(ctx, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Migrate(ctx); err != nil {
				return err
			}
			logger.Info().Str("driver", store.Driver).Msg("schema up to date")
			return nil
		},
	}
}
