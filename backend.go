package main

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/config"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/database"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/repositories"
)

type backend struct {
	name     string
	joins    repositories.JoinRepository
	rooms    repositories.RoomRepository
	deposits repositories.DepositRepository
	close    func() error
}

func openBackend(cfg *config.Config) (*backend, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		return &backend{
			name:     config.BackendMemory,
			joins:    repositories.NewMemoryJoinRepository(),
			rooms:    repositories.NewMemoryRoomRepository(),
			deposits: repositories.NewMemoryDepositRepository(),
			close:    func() error { return nil },
		}, nil
	case config.BackendPostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		return &backend{
			name:     config.BackendPostgres,
			joins:    repositories.NewGormJoinRepository(db),
			rooms:    repositories.NewGormRoomRepository(db),
			deposits: repositories.NewGormDepositRepository(db),
			close:    sqlDB.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func openPostgres(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required for the %s backend", config.BackendPostgres)
	}
	return database.Connect(cfg.DatabaseURL, cfg.LogLevel == "debug")
}
