package services

import (
	"context"
	"errors"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/apperror"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/repositories"
	"github.com/google/uuid"
)

const (
	MsgJoined        = "Successfully joined the tournament"
	MsgAlreadyJoined = "You have already joined this tournament"
	MsgSlotsFull     = "Tournament slots are full"
)

type JoinOutcome string

const (
	JoinOutcomeJoined        JoinOutcome = "joined"
	JoinOutcomeAlreadyJoined JoinOutcome = "already_joined"
	JoinOutcomeSlotsFull     JoinOutcome = "slots_full"
)

// TournamentService is the join ledger and the room directory.
type TournamentService struct {
	Joins repositories.JoinRepository
	Rooms repositories.RoomRepository

	slots *slotLocks
	now   func() time.Time
}

func NewTournamentService(joins repositories.JoinRepository, rooms repositories.RoomRepository) *TournamentService {
	return &TournamentService{
		Joins: joins,
		Rooms: rooms,
		slots: newSlotLocks(),
		now:   time.Now,
	}
}

type JoinRequest struct {
	TournamentID   models.FlexString `json:"tournamentId" form:"tournamentId"`
	TournamentName string            `json:"tournamentName" form:"tournamentName"`
	Date           string            `json:"date" form:"date"`
	Time           string            `json:"time" form:"time"`
	EntryFee       models.FlexString `json:"entryFee" form:"entryFee"`
	PrizePool      models.FlexString `json:"prizePool" form:"prizePool"`
	PlayerName     string            `json:"playerName" form:"playerName"`
	BgmiID         models.FlexString `json:"bgmiId" form:"bgmiId"`
}

// JoinResult describes a join attempt. Rejections are outcomes, not errors.
type JoinResult struct {
	Outcome JoinOutcome
	Join    *models.TournamentJoin
}

func (r *JoinResult) Success() bool {
	return r.Outcome == JoinOutcomeJoined
}

func (r *JoinResult) Message() string {
	switch r.Outcome {
	case JoinOutcomeAlreadyJoined:
		return MsgAlreadyJoined
	case JoinOutcomeSlotsFull:
		return MsgSlotsFull
	default:
		return MsgJoined
	}
}

// Join registers a player. The duplicate check, the capacity check and the
// insert run under a per-tournament lock held by this process only; two
// processes sharing one database can still both pass the capacity check.
func (s *TournamentService) Join(ctx context.Context, req JoinRequest) (*JoinResult, error) {
	tournamentID := cleanID(req.TournamentID.String())
	bgmiID := cleanID(req.BgmiID.String())
	if tournamentID == "" || bgmiID == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "tournamentId and bgmiId are required")
	}

	unlock := s.slots.Lock(tournamentID)
	defer unlock()

	exists, err := s.Joins.Exists(ctx, tournamentID, bgmiID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to check existing join")
	}
	if exists {
		return &JoinResult{Outcome: JoinOutcomeAlreadyJoined}, nil
	}

	count, err := s.Joins.CountByTournament(ctx, tournamentID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to count tournament slots")
	}
	if count >= models.MaxSlotsPerTournament {
		return &JoinResult{Outcome: JoinOutcomeSlotsFull}, nil
	}

	join := &models.TournamentJoin{
		ID:             uuid.NewString(),
		TournamentID:   tournamentID,
		TournamentName: cleanText(req.TournamentName),
		Date:           cleanText(req.Date),
		Time:           cleanText(req.Time),
		EntryFee:       cleanText(req.EntryFee.String()),
		PrizePool:      cleanText(req.PrizePool.String()),
		PlayerName:     cleanText(req.PlayerName),
		BgmiID:         bgmiID,
		Status:         models.JoinStatusRegistered,
		JoinedAt:       s.now(),
	}
	if err := s.Joins.Insert(ctx, join); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return &JoinResult{Outcome: JoinOutcomeAlreadyJoined}, nil
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to save join")
	}

	logger.Info("Player joined tournament",
		"tournament_id", tournamentID,
		"bgmi_id", bgmiID,
		"slot", count+1,
	)
	return &JoinResult{Outcome: JoinOutcomeJoined, Join: join}, nil
}

// CheckJoin reports whether the player holds a slot. A blank player id is simply not joined.
func (s *TournamentService) CheckJoin(ctx context.Context, tournamentID, bgmiID string) (bool, error) {
	tournamentID = cleanID(tournamentID)
	bgmiID = cleanID(bgmiID)
	if tournamentID == "" || bgmiID == "" {
		return false, nil
	}
	exists, err := s.Joins.Exists(ctx, tournamentID, bgmiID)
	if err != nil {
		return false, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to check join")
	}
	return exists, nil
}

// SlotCount returns the number of registrations and the fixed capacity.
func (s *TournamentService) SlotCount(ctx context.Context, tournamentID string) (int64, int, error) {
	count, err := s.Joins.CountByTournament(ctx, cleanID(tournamentID))
	if err != nil {
		return 0, models.MaxSlotsPerTournament, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to count tournament slots")
	}
	return count, models.MaxSlotsPerTournament, nil
}

// ListAllJoins is the admin listing. Room credentials are blanked here; players
// see them through MyMatches.
func (s *TournamentService) ListAllJoins(ctx context.Context) ([]models.TournamentJoin, error) {
	joins, err := s.Joins.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to list joins")
	}
	out := make([]models.TournamentJoin, len(joins))
	for i, j := range joins {
		out[i] = j.WithoutRoom()
	}
	return out, nil
}

// DeleteJoin removes a registration. Unknown ids are not an error.
func (s *TournamentService) DeleteJoin(ctx context.Context, id string) error {
	id = cleanID(id)
	if err := s.Joins.Delete(ctx, id); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to delete join")
	}
	logger.Info("Join deleted", "join_id", id)
	return nil
}

// MyMatches lists a player's registrations with room credentials resolved
// from the record first, then the room directory.
func (s *TournamentService) MyMatches(ctx context.Context, bgmiID string) ([]models.TournamentJoin, error) {
	bgmiID = cleanID(bgmiID)
	if bgmiID == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "bgmiId is required")
	}

	joins, err := s.Joins.ListByPlayer(ctx, bgmiID)
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to list matches")
	}

	rooms := make(map[string]models.RoomRecord)
	for i := range joins {
		j := &joins[i]
		room, ok := rooms[j.TournamentID]
		if !ok {
			r, err := s.Rooms.Get(ctx, j.TournamentID)
			switch {
			case err == nil:
				room = *r
			case errors.Is(err, repositories.ErrNotFound):
				room = models.RoomRecord{TournamentID: j.TournamentID}
			default:
				return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to resolve room")
			}
			rooms[j.TournamentID] = room
		}
		if j.RoomID == "" {
			j.RoomID = room.RoomID
		}
		if j.RoomPassword == "" {
			j.RoomPassword = room.RoomPassword
		}
	}
	return joins, nil
}
