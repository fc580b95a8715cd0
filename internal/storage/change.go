package storage

import (
	"context"

	"github.com/meshsync/meshsync/internal/models"
)

//go:generate moq -out changestore_mock.go . ChangeStore

// ChangeStore defines the interface for the append-only change log
type ChangeStore interface {
	// CreateChange appends a new change record
	CreateChange(ctx context.Context, change *models.SyncChange) error

	// GetUnsyncedChanges returns all changes for the device that have
	// not been pushed yet, ordered by sequence number
	GetUnsyncedChanges(ctx context.Context, deviceID string) ([]*models.SyncChange, error)

	// MarkChangesSynced flips the synced flag on the given change ids
	MarkChangesSynced(ctx context.Context, ids []string) error

	// GetLatestSequenceNumber returns the highest sequence number known
	// for the device, 0 if none
	GetLatestSequenceNumber(ctx context.Context, deviceID string) (int64, error)

	// GetSyncChangesByEntity returns all changes recorded for one
	// entity, ordered by creation time
	GetSyncChangesByEntity(ctx context.Context, entityType, entityID string) ([]*models.SyncChange, error)
}
