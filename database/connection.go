package database

import (
	"fmt"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the hosted Postgres backend.
func Connect(dsn string, debug bool) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), newGormConfig(debug))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	logger.Info("Database connected")
	return db, nil
}

func newGormConfig(debug bool) *gorm.Config {
	return &gorm.Config{
		Logger: NewLogger(Options{
			Debug:         debug,
			SlowThreshold: 200 * time.Millisecond,
		}),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Surface unique violations as gorm.ErrDuplicatedKey.
		TranslateError: true,
	}
}

func AutoMigrate(db *gorm.DB) error {
	logger.Info("Running database migrations...")

	if err := db.AutoMigrate(
		&models.TournamentJoin{},
		&models.RoomRecord{},
		&models.Deposit{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migrations completed")
	return nil
}
