// Package locks provides the advisory lock table: short-lived
// cooperative leases over named resources, local to one process.
package locks

import (
	"log/slog"
	"sync"
	"time"
)

// StaleAfter is how long a lease may go unrefreshed before any other
// device can reclaim it.
const StaleAfter = 5 * time.Minute

// lease records the current holder of one resource.
type lease struct {
	acquiredAt time.Time
	deviceID   string
}

// Table is an in-memory advisory lock table. All operations are total
// functions: they never block on sync activity and never fail with an
// error.
type Table struct {
	logger *slog.Logger
	leases map[string]*lease
	now    func() time.Time
	mu     sync.Mutex
}

// NewTable creates an empty lock table. If logger is nil, slog.Default
// is used.
func NewTable(logger *slog.Logger) *Table {
	if logger == nil {
		logger = slog.Default()
	}
	return &Table{
		logger: logger,
		leases: make(map[string]*lease),
		now:    time.Now,
	}
}

// Acquire grants or refreshes the lock on a resource. A lock held by
// another device is only granted if its lease has gone stale.
func (t *Table) Acquire(resource, deviceID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, held := t.leases[resource]
	if held && current.deviceID != deviceID {
		if t.now().Sub(current.acquiredAt) <= StaleAfter {
			t.logger.Info("Lock contention",
				"resource", resource,
				"holder", current.deviceID,
				"requester", deviceID)
			return false
		}
		t.logger.Warn("Stale lock detected",
			"resource", resource,
			"holder", current.deviceID,
			"requester", deviceID)
		delete(t.leases, resource)
	}

	t.leases[resource] = &lease{deviceID: deviceID, acquiredAt: t.now()}
	return true
}

// Release removes the caller's lock on a resource. Releasing an
// unlocked resource is a successful no-op; releasing another device's
// lock fails without mutating it.
func (t *Table) Release(resource, deviceID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, held := t.leases[resource]
	if !held {
		return true
	}
	if current.deviceID != deviceID {
		return false
	}

	delete(t.leases, resource)
	t.logger.Info("Lock released: " + resource)
	return true
}

// Holder returns the device currently holding the resource, or ""
// when unlocked. A stale lease is silently reclaimed.
func (t *Table) Holder(resource string) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, held := t.leases[resource]
	if !held {
		return ""
	}
	if t.now().Sub(current.acquiredAt) > StaleAfter {
		delete(t.leases, resource)
		return ""
	}
	return current.deviceID
}

// Clear drops every lease. Called on engine dispose.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.leases = make(map[string]*lease)
}
