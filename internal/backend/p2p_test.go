package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/pkg/api"
)

// newPeerServer starts a websocket peer answering push and pull
// frames; pushes are accepted wholesale.
func newPeerServer(t *testing.T) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.CloseNow()

		ctx := r.Context()
		for {
			var req frame
			if err := wsjson.Read(ctx, conn, &req); err != nil {
				return
			}

			var resp frame
			switch req.Type {
			case framePush:
				accepted := make([]string, 0, len(req.Push.Changes))
				for _, change := range req.Push.Changes {
					accepted = append(accepted, change.ID)
				}
				resp = frame{
					Type:       framePushResult,
					PushResult: &api.PushResponse{Accepted: accepted, Rejected: []string{}},
				}
			case framePull:
				resp = frame{
					Type: framePullResult,
					PullResult: &api.PullResponse{
						Changes: []api.Change{
							{ID: "chg-9", EntityType: models.EntityTask, EntityID: "task-1", ChangeType: "update", DeviceID: "dev-002", SequenceNumber: 9},
						},
						LatestSequence: 9,
					},
				}
			default:
				resp = frame{Type: req.Type, Error: "unknown frame type"}
			}

			if err := wsjson.Write(ctx, conn, resp); err != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func p2pTestConfig(endpoint string) *models.SyncConfig {
	return &models.SyncConfig{
		DeviceID: "dev-001",
		Backend:  models.BackendP2P,
		Endpoint: endpoint,
	}
}

func TestP2PPushPull(t *testing.T) {
	endpoint := newPeerServer(t)
	ctx := context.Background()

	adapter := NewP2P(testLogger())
	require.NoError(t, adapter.Connect(ctx, p2pTestConfig(endpoint)))
	assert.True(t, adapter.Connected())

	result, err := adapter.PushChanges(ctx, []*models.SyncChange{
		{ID: "chg-1", EntityType: models.EntityTask, EntityID: "task-1", ChangeType: models.ChangeCreate, DeviceID: "dev-001", SequenceNumber: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"chg-1"}, result.Accepted)
	assert.Empty(t, result.Rejected)

	pulled, err := adapter.PullChanges(ctx, 0)
	require.NoError(t, err)
	require.Len(t, pulled, 1)
	assert.Equal(t, "chg-9", pulled[0].ID)
	assert.Equal(t, "dev-002", pulled[0].DeviceID)

	require.NoError(t, adapter.Disconnect(ctx))
	assert.False(t, adapter.Connected())
}

func TestP2PPushDisconnected(t *testing.T) {
	adapter := NewP2P(testLogger())

	result, err := adapter.PushChanges(context.Background(), []*models.SyncChange{{ID: "chg-1"}})
	require.NoError(t, err)
	assert.Empty(t, result.Accepted)
	assert.Equal(t, []string{"chg-1"}, result.Rejected)
}

func TestP2PConnectIdempotent(t *testing.T) {
	endpoint := newPeerServer(t)
	ctx := context.Background()

	adapter := NewP2P(testLogger())
	require.NoError(t, adapter.Connect(ctx, p2pTestConfig(endpoint)))
	require.NoError(t, adapter.Connect(ctx, p2pTestConfig(endpoint)))
	require.NoError(t, adapter.Disconnect(ctx))
	require.NoError(t, adapter.Disconnect(ctx))
}
