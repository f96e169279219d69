package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJoinRepository expects the gorm.DB to be opened with TranslateError so
// unique index violations surface as gorm.ErrDuplicatedKey.
type GormJoinRepository struct {
	db *gorm.DB
}

func NewGormJoinRepository(db *gorm.DB) *GormJoinRepository {
	return &GormJoinRepository{db: db}
}

func (r *GormJoinRepository) Insert(ctx context.Context, join *models.TournamentJoin) error {
	if err := r.db.WithContext(ctx).Create(join).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert join: %w", err)
	}
	return nil
}

func (r *GormJoinRepository) Exists(ctx context.Context, tournamentID, bgmiID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TournamentJoin{}).
		Where("tournament_id = ? AND bgmi_id = ?", tournamentID, bgmiID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check join: %w", err)
	}
	return count > 0, nil
}

func (r *GormJoinRepository) CountByTournament(ctx context.Context, tournamentID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TournamentJoin{}).
		Where("tournament_id = ?", tournamentID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count joins: %w", err)
	}
	return count, nil
}

func (r *GormJoinRepository) List(ctx context.Context) ([]models.TournamentJoin, error) {
	joins := []models.TournamentJoin{}
	if err := r.db.WithContext(ctx).Order("joined_at ASC").Find(&joins).Error; err != nil {
		return nil, fmt.Errorf("failed to list joins: %w", err)
	}
	return joins, nil
}

func (r *GormJoinRepository) ListByPlayer(ctx context.Context, bgmiID string) ([]models.TournamentJoin, error) {
	joins := []models.TournamentJoin{}
	if err := r.db.WithContext(ctx).
		Where("bgmi_id = ?", bgmiID).
		Order("joined_at ASC").
		Find(&joins).Error; err != nil {
		return nil, fmt.Errorf("failed to list player joins: %w", err)
	}
	return joins, nil
}

func (r *GormJoinRepository) BackfillRoom(ctx context.Context, tournamentID, roomID, roomPassword string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.TournamentJoin{}).
		Where("tournament_id = ?", tournamentID).
		Updates(map[string]interface{}{
			"room_id":       roomID,
			"room_password": roomPassword,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to backfill room: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormJoinRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.TournamentJoin{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete join: %w", err)
	}
	return nil
}

func (r *GormJoinRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.TournamentJoin{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count joins: %w", err)
	}
	return count, nil
}

type GormRoomRepository struct {
	db *gorm.DB
}

func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

func (r *GormRoomRepository) Upsert(ctx context.Context, room *models.RoomRecord) error {
	if room.UpdatedAt.IsZero() {
		room.UpdatedAt = time.Now()
	}
	if err := r.db.WithContext(ctx).Clauses(
		clause.OnConflict{
			Columns:   []clause.Column{{Name: "tournament_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"room_id", "room_password", "updated_at"}),
		},
	).Create(room).Error; err != nil {
		return fmt.Errorf("failed to upsert room: %w", err)
	}
	return nil
}

func (r *GormRoomRepository) Get(ctx context.Context, tournamentID string) (*models.RoomRecord, error) {
	var room models.RoomRecord
	if err := r.db.WithContext(ctx).First(&room, "tournament_id = ?", tournamentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get room: %w", err)
	}
	return &room, nil
}

func (r *GormRoomRepository) List(ctx context.Context) ([]models.RoomRecord, error) {
	rooms := []models.RoomRecord{}
	if err := r.db.WithContext(ctx).Order("tournament_id ASC").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *GormRoomRepository) Delete(ctx context.Context, tournamentID string) error {
	if err := r.db.WithContext(ctx).Delete(&models.RoomRecord{}, "tournament_id = ?", tournamentID).Error; err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return nil
}

func (r *GormRoomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.RoomRecord{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

type GormDepositRepository struct {
	db *gorm.DB
}

func NewGormDepositRepository(db *gorm.DB) *GormDepositRepository {
	return &GormDepositRepository{db: db}
}

func (r *GormDepositRepository) Insert(ctx context.Context, deposit *models.Deposit) error {
	if err := r.db.WithContext(ctx).Create(deposit).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to insert deposit: %w", err)
	}
	return nil
}

func (r *GormDepositRepository) Get(ctx context.Context, id string) (*models.Deposit, error) {
	var deposit models.Deposit
	if err := r.db.WithContext(ctx).First(&deposit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deposit: %w", err)
	}
	return &deposit, nil
}

func (r *GormDepositRepository) UpdateStatus(ctx context.Context, id, status string, approvedAt *time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&models.Deposit{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      status,
			"approved_at": approvedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update deposit status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormDepositRepository) List(ctx context.Context, profileID string) ([]models.Deposit, error) {
	deposits := []models.Deposit{}
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if profileID != "" {
		q = q.Where("profile_id = ?", profileID)
	}
	if err := q.Find(&deposits).Error; err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	return deposits, nil
}

func (r *GormDepositRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.Deposit{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	return nil
}

func (r *GormDepositRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Deposit{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count deposits: %w", err)
	}
	return count, nil
}
