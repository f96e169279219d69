package main

import (
	"github.com/spf13/cobra"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/config"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/database"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the Postgres schema and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.LogLevel, cfg.AppEnv)
		defer logger.Sync()

		db, err := openPostgres(cfg)
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		return database.AutoMigrate(db)
	},
}
