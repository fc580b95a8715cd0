package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/pkg/api"
)

func cloudTestConfig(endpoint string) *models.SyncConfig {
	return &models.SyncConfig{
		DeviceID:       "dev-001",
		Backend:        models.BackendCloud,
		Endpoint:       endpoint,
		CredentialsRef: "test-token",
	}
}

func TestCloudConnect(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/sync/ping", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adapter := NewCloud(testLogger())
	ctx := context.Background()

	require.NoError(t, adapter.Connect(ctx, cloudTestConfig(server.URL)))
	assert.True(t, adapter.Connected())
	assert.Equal(t, "Bearer test-token", gotAuth)

	// Reconnecting while connected is a no-op.
	require.NoError(t, adapter.Connect(ctx, cloudTestConfig(server.URL)))

	require.NoError(t, adapter.Disconnect(ctx))
	assert.False(t, adapter.Connected())
}

func TestCloudConnectUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	adapter := NewCloud(testLogger())

	err := adapter.Connect(context.Background(), cloudTestConfig(server.URL))
	require.Error(t, err)
	assert.False(t, adapter.Connected())
}

func TestCloudPushChanges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/sync/ping":
			w.WriteHeader(http.StatusOK)
		case "/api/v1/sync/push":
			var req api.PushRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "dev-001", req.DeviceID)
			require.Len(t, req.Changes, 2)

			resp := api.PushResponse{
				Accepted: []string{req.Changes[0].ID},
				Rejected: []string{req.Changes[1].ID},
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	adapter := NewCloud(testLogger())
	ctx := context.Background()
	require.NoError(t, adapter.Connect(ctx, cloudTestConfig(server.URL)))

	changes := []*models.SyncChange{
		{ID: "chg-1", EntityType: models.EntityTask, EntityID: "task-1", ChangeType: models.ChangeCreate, DeviceID: "dev-001", SequenceNumber: 1},
		{ID: "chg-2", EntityType: models.EntityTask, EntityID: "task-2", ChangeType: models.ChangeUpdate, DeviceID: "dev-001", SequenceNumber: 2},
	}

	result, err := adapter.PushChanges(ctx, changes)
	require.NoError(t, err)
	assert.Equal(t, []string{"chg-1"}, result.Accepted)
	assert.Equal(t, []string{"chg-2"}, result.Rejected)
}

func TestCloudPushDisconnected(t *testing.T) {
	adapter := NewCloud(testLogger())

	changes := []*models.SyncChange{{ID: "chg-1"}, {ID: "chg-2"}}

	result, err := adapter.PushChanges(context.Background(), changes)
	require.NoError(t, err)
	assert.Empty(t, result.Accepted)
	assert.Equal(t, []string{"chg-1", "chg-2"}, result.Rejected)
}

func TestCloudPullChanges(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/sync/ping":
			w.WriteHeader(http.StatusOK)
		case "/api/v1/sync/pull":
			var req api.PullRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, int64(5), req.Since)

			resp := api.PullResponse{
				Changes: []api.Change{
					{ID: "chg-7", EntityType: models.EntityTask, EntityID: "task-1", ChangeType: "update", DeviceID: "dev-002", SequenceNumber: 7},
				},
				LatestSequence: 7,
			}
			require.NoError(t, json.NewEncoder(w).Encode(resp))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	adapter := NewCloud(testLogger())
	ctx := context.Background()
	require.NoError(t, adapter.Connect(ctx, cloudTestConfig(server.URL)))

	changes, err := adapter.PullChanges(ctx, 5)
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "chg-7", changes[0].ID)
	assert.Equal(t, "dev-002", changes[0].DeviceID)
	assert.Equal(t, models.ChangeUpdate, changes[0].ChangeType)
}

func TestCloudPullDisconnected(t *testing.T) {
	adapter := NewCloud(testLogger())

	_, err := adapter.PullChanges(context.Background(), 0)
	require.Error(t, err)
}
