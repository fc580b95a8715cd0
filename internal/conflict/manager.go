package conflict

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meshsync/meshsync/internal/models"
)

// Manager is the in-memory Resolver implementation. Conflicts are
// detected by field comparison and held until a strategy resolves
// them; resolved conflicts are retained for history.
type Manager struct {
	logger        *slog.Logger
	conflicts     map[string]*models.Conflict
	localDeviceID string
	mu            sync.RWMutex
}

// NewManager creates a conflict manager for the given local device.
// If logger is nil, slog.Default is used.
func NewManager(localDeviceID string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:        logger,
		conflicts:     make(map[string]*models.Conflict),
		localDeviceID: localDeviceID,
	}
}

// DetectConflict implements Resolver.DetectConflict.
func (m *Manager) DetectConflict(ctx context.Context, entityType, entityID string, localEntity, remoteDelta map[string]any, localTS, remoteTS time.Time, remoteDeviceID string) (*models.Conflict, error) {
	if localEntity == nil || len(remoteDelta) == 0 {
		return nil, nil
	}

	// A delta whose every field already matches the local entity is
	// not a conflict, whatever the timestamps say.
	disagrees := false
	for field, remoteValue := range remoteDelta {
		if !reflect.DeepEqual(localEntity[field], remoteValue) {
			disagrees = true
			break
		}
	}
	if !disagrees {
		return nil, nil
	}

	c := &models.Conflict{
		ID:              uuid.New().String(),
		EntityType:      entityType,
		EntityID:        entityID,
		LocalSnapshot:   localEntity,
		RemoteDelta:     remoteDelta,
		LocalTimestamp:  localTS,
		RemoteTimestamp: remoteTS,
		RemoteDeviceID:  remoteDeviceID,
		DetectedAt:      time.Now().UTC(),
	}

	m.mu.Lock()
	m.conflicts[c.ID] = c
	m.mu.Unlock()

	m.logger.Info("Conflict detected",
		"conflict_id", c.ID,
		"entity_type", entityType,
		"entity_id", entityID,
		"remote_device", remoteDeviceID)

	return c, nil
}

// Resolve implements Resolver.Resolve.
func (m *Manager) Resolve(ctx context.Context, conflictID string, strategy models.ConflictStrategy, resolvedBy string) (*Resolution, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.conflicts[conflictID]
	if !ok {
		return nil, fmt.Errorf("conflict not found: %s", conflictID)
	}
	if c.Resolved {
		return nil, fmt.Errorf("conflict already resolved: %s", conflictID)
	}

	resolution, err := m.apply(c, strategy)
	if err != nil {
		return nil, err
	}

	c.Resolved = true
	c.Strategy = strategy
	c.ResolvedBy = resolvedBy
	c.ResolvedAt = time.Now().UTC()
	resolution.Conflict = c

	m.logger.Info("Conflict resolved",
		"conflict_id", conflictID,
		"strategy", strategy,
		"winner", resolution.Winner)

	return resolution, nil
}

func (m *Manager) apply(c *models.Conflict, strategy models.ConflictStrategy) (*Resolution, error) {
	switch strategy {
	case models.StrategyKeepLocal:
		return &Resolution{Winner: "local", Fields: cloneFields(c.LocalSnapshot)}, nil

	case models.StrategyKeepRemote:
		return &Resolution{Winner: "remote", Fields: overlay(c.LocalSnapshot, c.RemoteDelta)}, nil

	case models.StrategyLastWriteWins:
		if c.RemoteWins(m.localDeviceID) {
			return &Resolution{Winner: "remote", Fields: overlay(c.LocalSnapshot, c.RemoteDelta)}, nil
		}
		return &Resolution{Winner: "local", Fields: cloneFields(c.LocalSnapshot)}, nil

	case models.StrategyMerge:
		// Non-disputed remote fields apply unconditionally, disputed
		// ones fall back to last-write-wins ordering.
		fields := cloneFields(c.LocalSnapshot)
		remoteWins := c.RemoteWins(m.localDeviceID)
		for field, remoteValue := range c.RemoteDelta {
			_, localHas := c.LocalSnapshot[field]
			if !localHas || remoteWins {
				fields[field] = remoteValue
			}
		}
		return &Resolution{Winner: "merge", Fields: fields}, nil

	default:
		return nil, fmt.Errorf("unknown conflict strategy: %q", strategy)
	}
}

// UnresolvedCount implements Resolver.UnresolvedCount.
func (m *Manager) UnresolvedCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, c := range m.conflicts {
		if !c.Resolved {
			count++
		}
	}
	return count
}

// Unresolved implements Resolver.Unresolved.
func (m *Manager) Unresolved() []*models.Conflict {
	m.mu.RLock()
	defer m.mu.RUnlock()

	pending := []*models.Conflict{}
	for _, c := range m.conflicts {
		if !c.Resolved {
			pending = append(pending, c)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].DetectedAt.Before(pending[j].DetectedAt)
	})
	return pending
}

func cloneFields(fields map[string]any) map[string]any {
	clone := make(map[string]any, len(fields))
	for k, v := range fields {
		clone[k] = v
	}
	return clone
}

// overlay applies the delta on top of a copy of the base fields.
func overlay(base, delta map[string]any) map[string]any {
	merged := cloneFields(base)
	for k, v := range delta {
		merged[k] = v
	}
	return merged
}
