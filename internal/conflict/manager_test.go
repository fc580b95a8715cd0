package conflict

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsync/meshsync/internal/models"
)

func TestDetectConflict_NilLocalEntity(t *testing.T) {
	m := NewManager("dev-local", nil)

	c, err := m.DetectConflict(context.Background(), models.EntityTask, "task-1",
		nil, map[string]any{"title": "remote"}, time.Now(), time.Now(), "dev-remote")

	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Equal(t, 0, m.UnresolvedCount())
}

func TestDetectConflict_EmptyDelta(t *testing.T) {
	m := NewManager("dev-local", nil)

	c, err := m.DetectConflict(context.Background(), models.EntityTask, "task-1",
		map[string]any{"title": "local"}, map[string]any{}, time.Now(), time.Now(), "dev-remote")

	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestDetectConflict_AgreeingDeltaIsNoConflict(t *testing.T) {
	m := NewManager("dev-local", nil)

	local := map[string]any{"title": "shared title", "status": "open"}
	delta := map[string]any{"title": "shared title"}

	c, err := m.DetectConflict(context.Background(), models.EntityTask, "task-1",
		local, delta, time.Now(), time.Now(), "dev-remote")

	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Equal(t, 0, m.UnresolvedCount())
}

func TestDetectConflict_DisagreeingDelta(t *testing.T) {
	m := NewManager("dev-local", nil)

	local := map[string]any{"title": "local title", "status": "open"}
	delta := map[string]any{"title": "remote title"}

	c, err := m.DetectConflict(context.Background(), models.EntityTask, "task-1",
		local, delta, time.Now(), time.Now(), "dev-remote")

	require.NoError(t, err)
	require.NotNil(t, c)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "task-1", c.EntityID)
	assert.False(t, c.Resolved)
	assert.Equal(t, 1, m.UnresolvedCount())
	require.Len(t, m.Unresolved(), 1)
}

func detect(t *testing.T, m *Manager, localTS, remoteTS time.Time) *models.Conflict {
	t.Helper()

	c, err := m.DetectConflict(context.Background(), models.EntityTask, "task-1",
		map[string]any{"title": "local title", "status": "open"},
		map[string]any{"title": "remote title"},
		localTS, remoteTS, "dev-remote")
	require.NoError(t, err)
	require.NotNil(t, c)
	return c
}

func TestResolve_KeepLocal(t *testing.T) {
	m := NewManager("dev-local", nil)
	c := detect(t, m, time.Now(), time.Now().Add(time.Minute))

	res, err := m.Resolve(context.Background(), c.ID, models.StrategyKeepLocal, "operator")
	require.NoError(t, err)

	assert.Equal(t, "local", res.Winner)
	assert.Equal(t, "local title", res.Fields["title"])
	assert.True(t, res.Conflict.Resolved)
	assert.Equal(t, "operator", res.Conflict.ResolvedBy)
	assert.Equal(t, 0, m.UnresolvedCount())
}

func TestResolve_KeepRemote(t *testing.T) {
	m := NewManager("dev-local", nil)
	c := detect(t, m, time.Now(), time.Now())

	res, err := m.Resolve(context.Background(), c.ID, models.StrategyKeepRemote, "operator")
	require.NoError(t, err)

	assert.Equal(t, "remote", res.Winner)
	assert.Equal(t, "remote title", res.Fields["title"])
	// Fields absent from the delta keep their local values
	assert.Equal(t, "open", res.Fields["status"])
}

func TestResolve_LastWriteWins(t *testing.T) {
	now := time.Now()

	t.Run("remote newer", func(t *testing.T) {
		m := NewManager("dev-local", nil)
		c := detect(t, m, now, now.Add(time.Minute))

		res, err := m.Resolve(context.Background(), c.ID, models.StrategyLastWriteWins, "auto")
		require.NoError(t, err)
		assert.Equal(t, "remote", res.Winner)
		assert.Equal(t, "remote title", res.Fields["title"])
	})

	t.Run("local newer", func(t *testing.T) {
		m := NewManager("dev-local", nil)
		c := detect(t, m, now.Add(time.Minute), now)

		res, err := m.Resolve(context.Background(), c.ID, models.StrategyLastWriteWins, "auto")
		require.NoError(t, err)
		assert.Equal(t, "local", res.Winner)
		assert.Equal(t, "local title", res.Fields["title"])
	})

	t.Run("equal timestamps tie-break on device id", func(t *testing.T) {
		// "dev-remote" > "dev-local" lexicographically, remote wins
		m := NewManager("dev-local", nil)
		c := detect(t, m, now, now)

		res, err := m.Resolve(context.Background(), c.ID, models.StrategyLastWriteWins, "auto")
		require.NoError(t, err)
		assert.Equal(t, "remote", res.Winner)
	})
}

func TestResolve_Merge(t *testing.T) {
	m := NewManager("dev-local", nil)

	c, err := m.DetectConflict(context.Background(), models.EntityTask, "task-1",
		map[string]any{"title": "local title", "status": "open"},
		map[string]any{"title": "remote title", "assigned_to": "agent-7"},
		time.Now().Add(time.Minute), time.Now(), "dev-remote")
	require.NoError(t, err)
	require.NotNil(t, c)

	res, err := m.Resolve(context.Background(), c.ID, models.StrategyMerge, "operator")
	require.NoError(t, err)

	assert.Equal(t, "merge", res.Winner)
	// Local is newer, so the disputed title stays local
	assert.Equal(t, "local title", res.Fields["title"])
	// Non-disputed remote field applies
	assert.Equal(t, "agent-7", res.Fields["assigned_to"])
	assert.Equal(t, "open", res.Fields["status"])
}

func TestResolve_Errors(t *testing.T) {
	m := NewManager("dev-local", nil)

	_, err := m.Resolve(context.Background(), "missing", models.StrategyKeepLocal, "operator")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflict not found")

	c := detect(t, m, time.Now(), time.Now())

	_, err = m.Resolve(context.Background(), c.ID, "coin_flip", "operator")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown conflict strategy")

	_, err = m.Resolve(context.Background(), c.ID, models.StrategyKeepLocal, "operator")
	require.NoError(t, err)

	_, err = m.Resolve(context.Background(), c.ID, models.StrategyKeepLocal, "operator")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already resolved")
}
