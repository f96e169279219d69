package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
)

// MemoryJoinRepository keeps joins in insertion order.
type MemoryJoinRepository struct {
	mu    sync.RWMutex
	joins []models.TournamentJoin
}

func NewMemoryJoinRepository() *MemoryJoinRepository {
	return &MemoryJoinRepository{}
}

func (r *MemoryJoinRepository) Insert(ctx context.Context, join *models.TournamentJoin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.joins {
		if j.ID == join.ID || (j.TournamentID == join.TournamentID && j.BgmiID == join.BgmiID) {
			return ErrDuplicate
		}
	}
	r.joins = append(r.joins, *join)
	return nil
}

func (r *MemoryJoinRepository) Exists(ctx context.Context, tournamentID, bgmiID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, j := range r.joins {
		if j.TournamentID == tournamentID && j.BgmiID == bgmiID {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryJoinRepository) CountByTournament(ctx context.Context, tournamentID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	for _, j := range r.joins {
		if j.TournamentID == tournamentID {
			n++
		}
	}
	return n, nil
}

func (r *MemoryJoinRepository) List(ctx context.Context) ([]models.TournamentJoin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.TournamentJoin, len(r.joins))
	copy(out, r.joins)
	return out, nil
}

func (r *MemoryJoinRepository) ListByPlayer(ctx context.Context, bgmiID string) ([]models.TournamentJoin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []models.TournamentJoin{}
	for _, j := range r.joins {
		if j.BgmiID == bgmiID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (r *MemoryJoinRepository) BackfillRoom(ctx context.Context, tournamentID, roomID, roomPassword string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for i := range r.joins {
		if r.joins[i].TournamentID == tournamentID {
			r.joins[i].RoomID = roomID
			r.joins[i].RoomPassword = roomPassword
			n++
		}
	}
	return n, nil
}

func (r *MemoryJoinRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, j := range r.joins {
		if j.ID == id {
			r.joins = append(r.joins[:i], r.joins[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *MemoryJoinRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.joins)), nil
}

type MemoryRoomRepository struct {
	mu    sync.RWMutex
	rooms map[string]models.RoomRecord
	now   func() time.Time
}

func NewMemoryRoomRepository() *MemoryRoomRepository {
	return &MemoryRoomRepository{
		rooms: make(map[string]models.RoomRecord),
		now:   time.Now,
	}
}

func (r *MemoryRoomRepository) Upsert(ctx context.Context, room *models.RoomRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if room.UpdatedAt.IsZero() {
		room.UpdatedAt = r.now()
	}
	r.rooms[room.TournamentID] = *room
	return nil
}

func (r *MemoryRoomRepository) Get(ctx context.Context, tournamentID string) (*models.RoomRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.rooms[tournamentID]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (r *MemoryRoomRepository) List(ctx context.Context) ([]models.RoomRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.RoomRecord, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TournamentID < out[j].TournamentID
	})
	return out, nil
}

func (r *MemoryRoomRepository) Delete(ctx context.Context, tournamentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, tournamentID)
	return nil
}

func (r *MemoryRoomRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.rooms)), nil
}

type MemoryDepositRepository struct {
	mu       sync.RWMutex
	deposits map[string]models.Deposit
}

func NewMemoryDepositRepository() *MemoryDepositRepository {
	return &MemoryDepositRepository{deposits: make(map[string]models.Deposit)}
}

func (r *MemoryDepositRepository) Insert(ctx context.Context, deposit *models.Deposit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.deposits[deposit.ID]; ok {
		return ErrDuplicate
	}
	r.deposits[deposit.ID] = *deposit
	return nil
}

func (r *MemoryDepositRepository) Get(ctx context.Context, id string) (*models.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.deposits[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (r *MemoryDepositRepository) UpdateStatus(ctx context.Context, id, status string, approvedAt *time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.deposits[id]
	if !ok {
		return ErrNotFound
	}
	d.Status = status
	d.ApprovedAt = approvedAt
	r.deposits[id] = d
	return nil
}

func (r *MemoryDepositRepository) List(ctx context.Context, profileID string) ([]models.Deposit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Deposit, 0, len(r.deposits))
	for _, d := range r.deposits {
		if profileID != "" && d.ProfileID != profileID {
			continue
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryDepositRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.deposits, id)
	return nil
}

func (r *MemoryDepositRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.deposits)), nil
}
