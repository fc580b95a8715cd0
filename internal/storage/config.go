package storage

import (
	"context"

	"github.com/meshsync/meshsync/internal/models"
)

//go:generate moq -out configstore_mock.go . ConfigStore

// ConfigStore defines the interface for per-device sync configuration
type ConfigStore interface {
	// GetConfig retrieves the sync config for a device
	// Returns ErrConfigNotFound if the device has no config
	GetConfig(ctx context.Context, deviceID string) (*models.SyncConfig, error)

	// CreateConfig persists a new sync config
	CreateConfig(ctx context.Context, cfg *models.SyncConfig) error

	// UpdateConfig overwrites an existing sync config
	UpdateConfig(ctx context.Context, cfg *models.SyncConfig) error
}
