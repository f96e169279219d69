package models

import (
	"time"
)

// MaxSlotsPerTournament is the fixed number of registrations a tournament accepts.
const MaxSlotsPerTournament = 2

const JoinStatusRegistered = "Registered"

// TournamentJoin is one player's registration for one tournament.
// Tournament details are denormalized from the join request.
type TournamentJoin struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	TournamentID   string    `json:"tournamentId" gorm:"not null;index;uniqueIndex:idx_join_tournament_player"`
	TournamentName string    `json:"tournamentName"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	EntryFee       string    `json:"entryFee"`
	PrizePool      string    `json:"prizePool"`
	PlayerName     string    `json:"playerName"`
	BgmiID         string    `json:"bgmiId" gorm:"column:bgmi_id;not null;index;uniqueIndex:idx_join_tournament_player"`
	Status         string    `json:"status" gorm:"default:'Registered'"`
	JoinedAt       time.Time `json:"joinedAt" gorm:"autoCreateTime"`

	// Back-filled by SetRoom; resolved against the room directory at read time.
	RoomID       string `json:"roomId"`
	RoomPassword string `json:"roomPassword"`
}

func (TournamentJoin) TableName() string {
	return "tournament_joins"
}

// WithoutRoom returns a copy with the room credentials blanked.
func (j TournamentJoin) WithoutRoom() TournamentJoin {
	j.RoomID = ""
	j.RoomPassword = ""
	return j
}

// RoomRecord holds the lobby credentials organizers publish for a tournament.
type RoomRecord struct {
	TournamentID string    `json:"tournamentId" gorm:"primaryKey"`
	RoomID       string    `json:"roomId"`
	RoomPassword string    `json:"roomPassword"`
	UpdatedAt    time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

func (RoomRecord) TableName() string {
	return "tournament_rooms"
}
