package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/apperror"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu  sync.Mutex
	got []models.Deposit
}

func (n *recordingNotifier) DepositStatusChanged(_ context.Context, d models.Deposit) error {
	// Slow the first delivery so a racing sender would overtake it.
	if n.count() == 0 {
		time.Sleep(20 * time.Millisecond)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.got = append(n.got, d)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.got)
}

func (n *recordingNotifier) statuses() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, len(n.got))
	for i, d := range n.got {
		out[i] = d.Status
	}
	return out
}

func newDepositService(t *testing.T, notifier DepositNotifier) *DepositService {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	s := NewDepositService(repositories.NewMemoryDepositRepository(), notifier, loc)
	s.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }
	t.Cleanup(s.Close)
	return s
}

func amount(v float64) models.FlexFloat {
	return models.FlexFloat{Value: v, Set: true}
}

func TestDepositSubmit_Validation(t *testing.T) {
	s := newDepositService(t, nil)

	tests := []struct {
		name string
		req  DepositRequest
	}{
		{name: "missing profile", req: DepositRequest{Amount: amount(100), UTR: "U1"}},
		{name: "missing utr", req: DepositRequest{ProfileID: "p1", Amount: amount(100)}},
		{name: "missing amount", req: DepositRequest{ProfileID: "p1", UTR: "U1"}},
		{name: "zero amount", req: DepositRequest{ProfileID: "p1", UTR: "U1", Amount: amount(0)}},
		{name: "negative amount", req: DepositRequest{ProfileID: "p1", UTR: "U1", Amount: amount(-5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Submit(context.Background(), tt.req)
			require.Error(t, err)
			assert.Equal(t, apperror.ErrCodeValidation, apperror.CodeOf(err))
		})
	}
}

func TestDepositSubmit_Defaults(t *testing.T) {
	s := newDepositService(t, nil)

	d, err := s.Submit(context.Background(), DepositRequest{ProfileID: "p1", Amount: amount(250.5), UTR: " UTR123 "})
	require.NoError(t, err)
	assert.NotEmpty(t, d.ID)
	assert.Equal(t, models.DefaultDepositUsername, d.Username)
	assert.Equal(t, models.DefaultDepositEmail, d.Email)
	assert.Equal(t, "UTR123", d.UTR)
	assert.Equal(t, models.DepositStatusPending, d.Status)
	assert.Equal(t, "17/10/2026, 3:00:00 pm", d.CreatedAtDisplay)
	assert.Nil(t, d.ApprovedAt)
}

func TestDepositUpdateStatus_ApprovedAtLifecycle(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	s := newDepositService(t, notifier)

	d, err := s.Submit(ctx, DepositRequest{ProfileID: "p1", Amount: amount(100), UTR: "U1", Email: "p1@example.com"})
	require.NoError(t, err)

	updated, err := s.UpdateStatus(ctx, d.ID, "approved")
	require.NoError(t, err)
	require.NotNil(t, updated.ApprovedAt)
	assert.Equal(t, models.DepositStatusApproved, updated.Status)

	stored, err := s.Deposits.Get(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ApprovedAt)

	updated, err = s.UpdateStatus(ctx, d.ID, " on-hold ")
	require.NoError(t, err)
	assert.Equal(t, "on-hold", updated.Status)
	assert.Nil(t, updated.ApprovedAt)

	stored, err = s.Deposits.Get(ctx, d.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ApprovedAt)

	s.Close()
	assert.Equal(t, []string{"approved", "on-hold"}, notifier.statuses())
}

func TestDepositNotifications_DeliveredInCommitOrder(t *testing.T) {
	ctx := context.Background()
	notifier := &recordingNotifier{}
	s := newDepositService(t, notifier)

	d, err := s.Submit(ctx, DepositRequest{ProfileID: "p1", Amount: amount(100), UTR: "U1"})
	require.NoError(t, err)

	want := []string{"approved", "rejected", "pending", "approved", "on-hold"}
	for _, status := range want {
		_, err := s.UpdateStatus(ctx, d.ID, status)
		require.NoError(t, err)
	}
	s.Close()

	assert.Equal(t, want, notifier.statuses())

	// Changes after Close are stored but not delivered.
	_, err = s.UpdateStatus(ctx, d.ID, "approved")
	require.NoError(t, err)
	assert.Len(t, notifier.statuses(), len(want))
}

func TestDepositSubmit_StoresTextVerbatim(t *testing.T) {
	s := newDepositService(t, nil)

	d, err := s.Submit(context.Background(), DepositRequest{
		ProfileID: "p1",
		Amount:    amount(10),
		UTR:       "U1",
		Username:  "Tom & Jerry",
		Email:     " o'neil@x.com ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Tom & Jerry", d.Username)
	assert.Equal(t, "o'neil@x.com", d.Email)
}

func TestDepositUpdateStatus_Errors(t *testing.T) {
	ctx := context.Background()
	s := newDepositService(t, nil)

	_, err := s.UpdateStatus(ctx, "missing", "approved")
	assert.Equal(t, apperror.ErrCodeNotFound, apperror.CodeOf(err))

	_, err = s.UpdateStatus(ctx, "missing", "")
	assert.Equal(t, apperror.ErrCodeValidation, apperror.CodeOf(err))

	_, err = s.UpdateStatus(ctx, "", "approved")
	assert.Equal(t, apperror.ErrCodeValidation, apperror.CodeOf(err))
}

func TestDepositListAndDelete(t *testing.T) {
	ctx := context.Background()
	s := newDepositService(t, nil)
	base := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)

	var ids []string
	for i, profile := range []string{"p1", "p2", "p1"} {
		at := base.Add(time.Duration(i) * time.Minute)
		s.now = func() time.Time { return at }
		d, err := s.Submit(ctx, DepositRequest{ProfileID: models.FlexString(profile), Amount: amount(10), UTR: "U"})
		require.NoError(t, err)
		ids = append(ids, d.ID)
	}

	all, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids[2], all[0].ID)
	assert.Equal(t, ids[0], all[2].ID)

	mine, err := s.List(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, ids[2], mine[0].ID)

	require.NoError(t, s.Delete(ctx, ids[1]))
	require.NoError(t, s.Delete(ctx, "missing"))
	all, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestResendNotifier_SkipsPlaceholderEmail(t *testing.T) {
	n := NewResendNotifier("re_test", "onboarding@resend.dev")
	err := n.DepositStatusChanged(context.Background(), models.Deposit{Email: models.DefaultDepositEmail})
	assert.NoError(t, err)
}

func TestResendNotifier_Body(t *testing.T) {
	n := NewResendNotifier("re_test", "onboarding@resend.dev")
	body := n.depositBody(models.Deposit{
		Username:         "Tom & Jerry",
		Amount:           12500,
		UTR:              "UTR9",
		Status:           "approved",
		CreatedAtDisplay: "17/10/2026, 3:00:00 pm",
	})
	assert.Contains(t, body, "12,500.00")
	assert.Contains(t, body, "Hi Tom &amp; Jerry,")
	assert.NotContains(t, body, "&amp;amp;")
	assert.Contains(t, body, "<strong>approved</strong>")
}
