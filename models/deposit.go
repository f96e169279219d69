package models

import "time"

// Known deposit statuses. Status is an open set: admins may store any value.
const (
	DepositStatusPending  = "pending"
	DepositStatusApproved = "approved"
	DepositStatusRejected = "rejected"
)

const (
	DefaultDepositUsername = "Unknown"
	DefaultDepositEmail    = "N/A"
)

// Deposit is a player's claim of an out-of-band payment awaiting admin review.
type Deposit struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	ProfileID        string     `json:"profileId" gorm:"not null;index"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	Amount           float64    `json:"amount" gorm:"not null"`
	UTR              string     `json:"utr" gorm:"column:utr;not null;index"`
	Status           string     `json:"status" gorm:"not null;default:'pending';index"`
	CreatedAt        time.Time  `json:"createdAt" gorm:"index"`
	CreatedAtDisplay string     `json:"createdAtDisplay"`
	ApprovedAt       *time.Time `json:"approvedAt"`
}

func (Deposit) TableName() string {
	return "deposits"
}
