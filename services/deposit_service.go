package services

import (
	"context"
	"errors"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/apperror"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/repositories"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/utils"
	"github.com/google/uuid"
	"github.com/xorcare/pointer"
)

type DepositService struct {
	Deposits repositories.DepositRepository

	notifications *notifyQueue
	loc           *time.Location
	now           func() time.Time
}

func NewDepositService(deposits repositories.DepositRepository, notifier DepositNotifier, loc *time.Location) *DepositService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DepositService{
		Deposits:      deposits,
		notifications: newNotifyQueue(notifier),
		loc:           loc,
		now:           time.Now,
	}
}

// Close waits for queued status notifications to be delivered.
func (s *DepositService) Close() {
	s.notifications.close()
}

type DepositRequest struct {
	ProfileID models.FlexString `json:"profileId" form:"profileId"`
	Amount    models.FlexFloat  `json:"amount"`
	UTR       models.FlexString `json:"utr" form:"utr"`
	Username  string            `json:"username" form:"username"`
	Email     string            `json:"email" form:"email"`
}

func (s *DepositService) Submit(ctx context.Context, req DepositRequest) (*models.Deposit, error) {
	profileID := cleanID(req.ProfileID.String())
	utr := cleanID(req.UTR.String())
	if profileID == "" || utr == "" || !req.Amount.Set {
		return nil, apperror.New(apperror.ErrCodeValidation, "profileId, amount and utr are required")
	}
	if req.Amount.Value <= 0 {
		return nil, apperror.New(apperror.ErrCodeValidation, "amount must be greater than zero")
	}

	username := cleanText(req.Username)
	if username == "" {
		username = models.DefaultDepositUsername
	}
	email := cleanID(req.Email)
	if email == "" {
		email = models.DefaultDepositEmail
	}

	now := s.now()
	d := &models.Deposit{
		ID:               uuid.NewString(),
		ProfileID:        profileID,
		Username:         username,
		Email:            email,
		Amount:           req.Amount.Value,
		UTR:              utr,
		Status:           models.DepositStatusPending,
		CreatedAt:        now,
		CreatedAtDisplay: utils.FormatDisplayTime(now, s.loc),
	}
	if err := s.Deposits.Insert(ctx, d); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to save deposit")
	}

	logger.Info("Deposit submitted", "deposit_id", d.ID, "profile_id", profileID, "amount", d.Amount)
	return d, nil
}

// UpdateStatus stores status verbatim. Only "approved" stamps approvedAt; any
// other value clears it.
func (s *DepositService) UpdateStatus(ctx context.Context, id, status string) (*models.Deposit, error) {
	id = cleanID(id)
	status = cleanID(status)
	if id == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "id is required")
	}
	if status == "" {
		return nil, apperror.New(apperror.ErrCodeValidation, "status is required")
	}

	d, err := s.Deposits.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.New(apperror.ErrCodeNotFound, "Deposit not found")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to load deposit")
	}

	var approvedAt *time.Time
	if status == models.DepositStatusApproved {
		approvedAt = pointer.Time(s.now())
	}
	if err := s.Deposits.UpdateStatus(ctx, id, status, approvedAt); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperror.New(apperror.ErrCodeNotFound, "Deposit not found")
		}
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to update deposit")
	}
	d.Status = status
	d.ApprovedAt = approvedAt

	logger.Info("Deposit status updated", "deposit_id", id, "status", status)
	s.notifications.push(*d)
	return d, nil
}

// List returns deposits newest first, all of them when profileID is empty.
func (s *DepositService) List(ctx context.Context, profileID string) ([]models.Deposit, error) {
	deposits, err := s.Deposits.List(ctx, cleanID(profileID))
	if err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to list deposits")
	}
	return deposits, nil
}

func (s *DepositService) Delete(ctx context.Context, id string) error {
	id = cleanID(id)
	if err := s.Deposits.Delete(ctx, id); err != nil {
		return apperror.Wrap(err, apperror.ErrCodeInternalError, "failed to delete deposit")
	}
	logger.Info("Deposit deleted", "deposit_id", id)
	return nil
}
