package locks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// tableAt returns a lock table with a controllable clock.
func tableAt(start time.Time) (*Table, *time.Time) {
	now := start
	table := NewTable(nil)
	table.now = func() time.Time { return now }
	return table, &now
}

func TestAcquire_GrantAndRefresh(t *testing.T) {
	table, _ := tableAt(time.Now())

	assert.True(t, table.Acquire("task/t1", "dev-A"))
	// Same holder refreshes
	assert.True(t, table.Acquire("task/t1", "dev-A"))
	assert.Equal(t, "dev-A", table.Holder("task/t1"))
}

func TestAcquire_Contention(t *testing.T) {
	table, _ := tableAt(time.Now())

	assert.True(t, table.Acquire("task/t1", "dev-A"))
	assert.False(t, table.Acquire("task/t1", "dev-B"))
	assert.Equal(t, "dev-A", table.Holder("task/t1"))
}

func TestAcquire_StaleLockReclaimed(t *testing.T) {
	table, now := tableAt(time.Now())

	assert.True(t, table.Acquire("task/t1", "dev-A"))

	*now = now.Add(StaleAfter + time.Second)

	assert.True(t, table.Acquire("task/t1", "dev-B"))
	assert.Equal(t, "dev-B", table.Holder("task/t1"))
}

func TestAcquire_RefreshResetsStaleness(t *testing.T) {
	table, now := tableAt(time.Now())

	assert.True(t, table.Acquire("task/t1", "dev-A"))

	*now = now.Add(4 * time.Minute)
	assert.True(t, table.Acquire("task/t1", "dev-A"))

	// 4 more minutes: past the original acquisition but within the
	// refreshed lease
	*now = now.Add(4 * time.Minute)
	assert.False(t, table.Acquire("task/t1", "dev-B"))
}

func TestRelease(t *testing.T) {
	table, _ := tableAt(time.Now())

	// Unlocked resource: no-op success
	assert.True(t, table.Release("task/t1", "dev-A"))

	assert.True(t, table.Acquire("task/t1", "dev-A"))

	// Wrong device: refused, lock untouched
	assert.False(t, table.Release("task/t1", "dev-B"))
	assert.Equal(t, "dev-A", table.Holder("task/t1"))

	assert.True(t, table.Release("task/t1", "dev-A"))
	assert.Empty(t, table.Holder("task/t1"))
}

func TestHolder_StaleLockSilentlyReclaimed(t *testing.T) {
	table, now := tableAt(time.Now())

	assert.True(t, table.Acquire("task/t1", "dev-A"))

	*now = now.Add(StaleAfter + time.Second)

	assert.Empty(t, table.Holder("task/t1"))
	// Reclaimed: a new acquire succeeds immediately
	assert.True(t, table.Acquire("task/t1", "dev-B"))
}

func TestClear(t *testing.T) {
	table, _ := tableAt(time.Now())

	assert.True(t, table.Acquire("task/t1", "dev-A"))
	assert.True(t, table.Acquire("design/d1", "dev-B"))

	table.Clear()

	assert.Empty(t, table.Holder("task/t1"))
	assert.Empty(t, table.Holder("design/d1"))
}
