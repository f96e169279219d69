package workers

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/repositories"
)

type memoryStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryStore) PutObject(_ context.Context, key string, body []byte, contentType string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = body
	m.types[key] = contentType
	return nil
}

func TestArchiverSnapshot(t *testing.T) {
	ctx := context.Background()
	joins := repositories.NewMemoryJoinRepository()
	deposits := repositories.NewMemoryDepositRepository()
	require.NoError(t, joins.Insert(ctx, &models.TournamentJoin{ID: "j1", TournamentID: "T1", BgmiID: "P1", RoomID: "R1"}))
	require.NoError(t, deposits.Insert(ctx, &models.Deposit{ID: "d1", ProfileID: "p1", Amount: 10, UTR: "U1", Status: "pending"}))

	store := newMemoryStore()
	a := NewArchiver("BGMI Tournament Server", store, joins, deposits)
	a.now = func() time.Time { return time.Date(2026, 10, 17, 9, 5, 0, 0, time.FixedZone("IST", 19800)) }

	prefix, err := a.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "backups/bgmi-tournament-server/20261017T033500Z", prefix)

	raw, ok := store.objects[prefix+"/joins.json"]
	require.True(t, ok)
	var gotJoins []models.TournamentJoin
	require.NoError(t, json.Unmarshal(raw, &gotJoins))
	require.Len(t, gotJoins, 1)
	assert.Equal(t, "R1", gotJoins[0].RoomID)
	assert.Equal(t, "application/json", store.types[prefix+"/joins.json"])

	raw, ok = store.objects[prefix+"/deposits.json"]
	require.True(t, ok)
	var gotDeposits []models.Deposit
	require.NoError(t, json.Unmarshal(raw, &gotDeposits))
	require.Len(t, gotDeposits, 1)
}

func TestArchiverSnapshot_StoreError(t *testing.T) {
	store := newMemoryStore()
	store.err = errors.New("bucket gone")
	a := NewArchiver("app", store, repositories.NewMemoryJoinRepository(), repositories.NewMemoryDepositRepository())

	_, err := a.Snapshot(context.Background())
	assert.ErrorContains(t, err, "bucket gone")
}

func TestNewArchiver_EmptyName(t *testing.T) {
	a := NewArchiver("", newMemoryStore(), repositories.NewMemoryJoinRepository(), repositories.NewMemoryDepositRepository())
	assert.Equal(t, "backups/default", a.prefix)
}
