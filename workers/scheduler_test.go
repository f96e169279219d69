package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/repositories"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/services"
)

func TestStartScheduler_RunsJobs(t *testing.T) {
	ctx := context.Background()
	joins := repositories.NewMemoryJoinRepository()
	rooms := repositories.NewMemoryRoomRepository()
	deposits := repositories.NewMemoryDepositRepository()
	tournaments := services.NewTournamentService(joins, rooms)

	require.NoError(t, rooms.Upsert(ctx, &models.RoomRecord{
		TournamentID: "old",
		RoomID:       "R1",
		UpdatedAt:    time.Now().Add(-48 * time.Hour),
	}))

	store := newMemoryStore()
	sched, err := StartScheduler(tournaments, NewArchiver("app", store, joins, deposits), SchedulerOptions{
		PruneInterval:   20 * time.Millisecond,
		RoomStaleAfter:  24 * time.Hour,
		ArchiveInterval: 20 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = sched.Shutdown() })

	assert.Eventually(t, func() bool {
		n, err := rooms.Count(ctx)
		return err == nil && n == 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		store.mu.Lock()
		defer store.mu.Unlock()
		return len(store.objects) >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestStartScheduler_Disabled(t *testing.T) {
	tournaments := services.NewTournamentService(repositories.NewMemoryJoinRepository(), repositories.NewMemoryRoomRepository())
	sched, err := StartScheduler(tournaments, nil, SchedulerOptions{})
	require.NoError(t, err)
	assert.Empty(t, sched.Jobs())
	require.NoError(t, sched.Shutdown())
}
