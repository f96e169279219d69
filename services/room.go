package services

import (
	"context"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/apperror"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
)

type SetRoomRequest struct {
	TournamentID models.FlexString `json:"tournamentId" form:"tournamentId"`
	RoomID       models.FlexString `json:"roomId" form:"roomId"`
	RoomPassword models.FlexString `json:"roomPassword" form:"roomPassword"`
}

type SetRoomResult struct {
	Room         models.RoomRecord
	UpdatedJoins int64
}

// SetRoom upserts the room credentials and copies them onto the tournament's
// existing joins. The two writes are not transactional: a failed back-fill is
// logged and the directory entry stands.
func (s *TournamentService) SetRoom(ctx context.Context, req SetRoomRequest) (*SetRoomResult, error) {
	tournamentID := cleanID(req.TournamentID.String())
	if tournamentID == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "tournamentId is required")
	}

	room := models.RoomRecord{
		TournamentID: tournamentID,
		RoomID:       cleanID(req.RoomID.String()),
		RoomPassword: cleanID(req.RoomPassword.String()),
		UpdatedAt:    s.now(),
	}
	if err := s.Rooms.Upsert(ctx, &room); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to save room")
	}

	updated, err := s.Joins.BackfillRoom(ctx, tournamentID, room.RoomID, room.RoomPassword)
	if err != nil {
		logger.Error("Room saved but back-fill onto joins failed",
			"tournament_id", tournamentID,
			"error", err,
		)
		updated = 0
	}

	logger.Info("Room set", "tournament_id", tournamentID, "updated_joins", updated)
	return &SetRoomResult{Room: room, UpdatedJoins: updated}, nil
}

// PruneStaleRooms drops directory entries not touched within olderThan whose
// tournament no longer has any registration.
func (s *TournamentService) PruneStaleRooms(ctx context.Context, olderThan time.Duration) (int, error) {
	rooms, err := s.Rooms.List(ctx)
	if err != nil {
		return 0, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to list rooms")
	}

	cutoff := s.now().Add(-olderThan)
	pruned := 0
	for _, room := range rooms {
		if !room.UpdatedAt.Before(cutoff) {
			continue
		}
		count, err := s.Joins.CountByTournament(ctx, room.TournamentID)
		if err != nil {
			return pruned, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to count tournament joins")
		}
		if count > 0 {
			continue
		}
		if err := s.Rooms.Delete(ctx, room.TournamentID); err != nil {
			return pruned, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to delete room")
		}
		pruned++
	}
	return pruned, nil
}
