package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// JoinRepository stores tournament registrations.
// Insert returns ErrDuplicate when the (tournament, player) pair already exists.
type JoinRepository interface {
	Insert(ctx context.Context, join *models.TournamentJoin) error
	Exists(ctx context.Context, tournamentID, bgmiID string) (bool, error)
	CountByTournament(ctx context.Context, tournamentID string) (int64, error)
	List(ctx context.Context) ([]models.TournamentJoin, error)
	ListByPlayer(ctx context.Context, bgmiID string) ([]models.TournamentJoin, error)
	// BackfillRoom copies room credentials onto every join of the tournament.
	BackfillRoom(ctx context.Context, tournamentID, roomID, roomPassword string) (int64, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// RoomRepository is the room directory keyed by tournament id.
type RoomRepository interface {
	Upsert(ctx context.Context, room *models.RoomRecord) error
	Get(ctx context.Context, tournamentID string) (*models.RoomRecord, error)
	List(ctx context.Context) ([]models.RoomRecord, error)
	Delete(ctx context.Context, tournamentID string) error
	Count(ctx context.Context) (int64, error)
}

// DepositRepository stores deposit claims. List is ordered newest first.
type DepositRepository interface {
	Insert(ctx context.Context, deposit *models.Deposit) error
	Get(ctx context.Context, id string) (*models.Deposit, error)
	UpdateStatus(ctx context.Context, id, status string, approvedAt *time.Time) error
	// List returns every deposit when profileID is empty.
	List(ctx context.Context, profileID string) ([]models.Deposit, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
