package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/internal/storage"
)

// GetConfig retrieves the sync config for a device
func (s *Storage) GetConfig(ctx context.Context, deviceID string) (*models.SyncConfig, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var cfg *models.SyncConfig

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketConfigs).Get([]byte(deviceID))
		if data == nil {
			return storage.ErrConfigNotFound
		}

		cfg = &models.SyncConfig{}
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// CreateConfig persists a new sync config
func (s *Storage) CreateConfig(ctx context.Context, cfg *models.SyncConfig) error {
	return s.putConfig(cfg)
}

// UpdateConfig overwrites an existing sync config
func (s *Storage) UpdateConfig(ctx context.Context, cfg *models.SyncConfig) error {
	return s.putConfig(cfg)
}

func (s *Storage) putConfig(cfg *models.SyncConfig) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketConfigs).Put([]byte(cfg.DeviceID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	return nil
}
