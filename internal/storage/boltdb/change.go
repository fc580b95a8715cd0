package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/internal/storage"
)

// CreateChange appends a new change record
func (s *Storage) CreateChange(ctx context.Context, change *models.SyncChange) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(change)
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChanges).Put([]byte(change.ID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save change: %w", err)
	}

	return nil
}

// GetUnsyncedChanges returns all changes for the device that have not
// been pushed yet, ordered by sequence number
func (s *Storage) GetUnsyncedChanges(ctx context.Context, deviceID string) ([]*models.SyncChange, error) {
	changes, err := s.scanChanges(func(c *models.SyncChange) bool {
		return c.DeviceID == deviceID && !c.Synced
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].SequenceNumber < changes[j].SequenceNumber
	})
	return changes, nil
}

// MarkChangesSynced flips the synced flag on the given change ids.
// Unknown ids are skipped; the change records themselves are never
// deleted.
func (s *Storage) MarkChangesSynced(ctx context.Context, ids []string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketChanges)

		for _, id := range ids {
			data := bucket.Get([]byte(id))
			if data == nil {
				continue
			}

			change := &models.SyncChange{}
			if err := json.Unmarshal(data, change); err != nil {
				return fmt.Errorf("failed to unmarshal change %s: %w", id, err)
			}
			if change.Synced {
				continue
			}

			change.Synced = true
			updated, err := json.Marshal(change)
			if err != nil {
				return fmt.Errorf("failed to marshal change %s: %w", id, err)
			}
			if err := bucket.Put([]byte(id), updated); err != nil {
				return fmt.Errorf("failed to update change %s: %w", id, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetLatestSequenceNumber returns the highest sequence number known
// for the device, 0 if none
func (s *Storage) GetLatestSequenceNumber(ctx context.Context, deviceID string) (int64, error) {
	changes, err := s.scanChanges(func(c *models.SyncChange) bool {
		return c.DeviceID == deviceID
	})
	if err != nil {
		return 0, err
	}

	var latest int64
	for _, change := range changes {
		if change.SequenceNumber > latest {
			latest = change.SequenceNumber
		}
	}
	return latest, nil
}

// GetSyncChangesByEntity returns all changes recorded for one entity,
// ordered by creation time
func (s *Storage) GetSyncChangesByEntity(ctx context.Context, entityType, entityID string) ([]*models.SyncChange, error) {
	changes, err := s.scanChanges(func(c *models.SyncChange) bool {
		return c.EntityType == entityType && c.EntityID == entityID
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].CreatedAt.Before(changes[j].CreatedAt)
	})
	return changes, nil
}

// scanChanges walks the change bucket collecting records that match
// the filter
func (s *Storage) scanChanges(match func(*models.SyncChange) bool) ([]*models.SyncChange, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	changes := []*models.SyncChange{}

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketChanges).ForEach(func(k, v []byte) error {
			change := &models.SyncChange{}
			if err := json.Unmarshal(v, change); err != nil {
				return fmt.Errorf("failed to unmarshal change %s: %w", k, err)
			}
			if match(change) {
				changes = append(changes, change)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return changes, nil
}
