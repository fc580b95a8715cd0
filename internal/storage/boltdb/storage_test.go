package boltdb

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/internal/storage"
)

// createTestStorage creates a temporary storage for tests
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// createTestChange creates a test sync change record
func createTestChange(id, deviceID string, seq int64, synced bool) *models.SyncChange {
	return &models.SyncChange{
		ID:             id,
		EntityType:     models.EntityTask,
		EntityID:       "task-1",
		ChangeType:     models.ChangeUpdate,
		DeviceID:       deviceID,
		Patch:          json.RawMessage(`{"title":"updated"}`),
		SequenceNumber: seq,
		Synced:         synced,
		CreatedAt:      time.Now().UTC(),
	}
}

func TestNew_Success(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// All buckets must exist after initialization
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketConfigs, bucketDevices, bucketChanges, bucketTasks, bucketComponents} {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	store, err := New(context.Background(), string([]byte{0}))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfig_CreateGetUpdate(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetConfig(ctx, "dev-001")
	require.ErrorIs(t, err, storage.ErrConfigNotFound)

	cfg := &models.SyncConfig{
		DeviceID:         "dev-001",
		DeviceName:       "workstation",
		Backend:          models.BackendCloud,
		Endpoint:         "https://sync.example.com",
		DefaultStrategy:  models.StrategyLastWriteWins,
		AutoSyncInterval: 60,
		Enabled:          true,
	}
	require.NoError(t, store.CreateConfig(ctx, cfg))

	got, err := store.GetConfig(ctx, "dev-001")
	require.NoError(t, err)
	assert.Equal(t, cfg.Backend, got.Backend)
	assert.Equal(t, cfg.Endpoint, got.Endpoint)

	got.Endpoint = "https://other.example.com"
	require.NoError(t, store.UpdateConfig(ctx, got))

	updated, err := store.GetConfig(ctx, "dev-001")
	require.NoError(t, err)
	assert.Equal(t, "https://other.example.com", updated.Endpoint)
}

func TestDevice_CRUD(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetDevice(ctx, "dev-001")
	require.ErrorIs(t, err, storage.ErrDeviceNotFound)

	device := &models.Device{
		DeviceID:    "dev-001",
		Name:        "workstation",
		OS:          "linux",
		IsCurrent:   true,
		SyncEnabled: true,
		LastSeenAt:  time.Now().UTC(),
	}
	require.NoError(t, store.CreateDevice(ctx, device))

	got, err := store.GetDevice(ctx, "dev-001")
	require.NoError(t, err)
	assert.Equal(t, "workstation", got.Name)
	assert.True(t, got.IsCurrent)

	require.NoError(t, store.CreateDevice(ctx, &models.Device{DeviceID: "dev-002", Name: "laptop"}))

	devices, err := store.ListDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 2)

	require.NoError(t, store.DeleteDevice(ctx, "dev-002"))
	require.ErrorIs(t, store.DeleteDevice(ctx, "dev-002"), storage.ErrDeviceNotFound)

	devices, err = store.ListDevices(ctx)
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestIncrementDeviceClock(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.CreateDevice(ctx, &models.Device{DeviceID: "dev-001"}))

	clock, err := store.IncrementDeviceClock(ctx, "dev-001")
	require.NoError(t, err)
	assert.Equal(t, int64(1), clock)

	clock, err = store.IncrementDeviceClock(ctx, "dev-001")
	require.NoError(t, err)
	assert.Equal(t, int64(2), clock)

	// Increment persists on the device record
	device, err := store.GetDevice(ctx, "dev-001")
	require.NoError(t, err)
	assert.Equal(t, int64(2), device.ClockValue)

	_, err = store.IncrementDeviceClock(ctx, "dev-missing")
	require.ErrorIs(t, err, storage.ErrDeviceNotFound)
}

func TestChanges_UnsyncedAndMarkSynced(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.CreateChange(ctx, createTestChange("ch-2", "dev-001", 2, false)))
	require.NoError(t, store.CreateChange(ctx, createTestChange("ch-1", "dev-001", 1, false)))
	require.NoError(t, store.CreateChange(ctx, createTestChange("ch-3", "dev-001", 3, true)))
	require.NoError(t, store.CreateChange(ctx, createTestChange("ch-4", "dev-002", 1, false)))

	unsynced, err := store.GetUnsyncedChanges(ctx, "dev-001")
	require.NoError(t, err)
	require.Len(t, unsynced, 2)
	// Ordered by sequence number
	assert.Equal(t, "ch-1", unsynced[0].ID)
	assert.Equal(t, "ch-2", unsynced[1].ID)

	require.NoError(t, store.MarkChangesSynced(ctx, []string{"ch-1", "ch-2", "ch-unknown"}))

	unsynced, err = store.GetUnsyncedChanges(ctx, "dev-001")
	require.NoError(t, err)
	assert.Empty(t, unsynced)
}

func TestGetLatestSequenceNumber(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	latest, err := store.GetLatestSequenceNumber(ctx, "dev-001")
	require.NoError(t, err)
	assert.Equal(t, int64(0), latest)

	require.NoError(t, store.CreateChange(ctx, createTestChange("ch-1", "dev-001", 4, true)))
	require.NoError(t, store.CreateChange(ctx, createTestChange("ch-2", "dev-001", 9, false)))
	require.NoError(t, store.CreateChange(ctx, createTestChange("ch-3", "dev-002", 20, false)))

	latest, err = store.GetLatestSequenceNumber(ctx, "dev-001")
	require.NoError(t, err)
	assert.Equal(t, int64(9), latest)
}

func TestGetSyncChangesByEntity(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	older := createTestChange("ch-1", "dev-001", 1, true)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := createTestChange("ch-2", "dev-002", 1, true)

	other := createTestChange("ch-3", "dev-001", 2, true)
	other.EntityID = "task-other"

	require.NoError(t, store.CreateChange(ctx, newer))
	require.NoError(t, store.CreateChange(ctx, older))
	require.NoError(t, store.CreateChange(ctx, other))

	history, err := store.GetSyncChangesByEntity(ctx, models.EntityTask, "task-1")
	require.NoError(t, err)
	require.Len(t, history, 2)
	// Ordered by creation time
	assert.Equal(t, "ch-1", history[0].ID)
	assert.Equal(t, "ch-2", history[1].ID)
}

func TestEntities_TaskAndDesignComponent(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	_, err := store.GetTask(ctx, "task-1")
	require.ErrorIs(t, err, storage.ErrEntityNotFound)

	task := &models.Task{ID: "task-1", Title: "wire the adapters", Status: "open", Priority: 2}
	require.NoError(t, store.SaveTask(ctx, task))

	gotTask, err := store.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "wire the adapters", gotTask.Title)

	_, err = store.GetDesignComponent(ctx, "comp-1")
	require.ErrorIs(t, err, storage.ErrEntityNotFound)

	component := &models.DesignComponent{ID: "comp-1", Name: "sync engine", Kind: "service", Version: 1}
	require.NoError(t, store.SaveDesignComponent(ctx, component))

	gotComponent, err := store.GetDesignComponent(ctx, "comp-1")
	require.NoError(t, err)
	assert.Equal(t, "sync engine", gotComponent.Name)
}

func TestStorageClosed(t *testing.T) {
	ctx := context.Background()
	closed := &Storage{}

	_, err := closed.GetConfig(ctx, "dev-001")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = closed.ListDevices(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	err = closed.CreateChange(ctx, createTestChange("ch", "dev", 1, false))
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
