package storage

import (
	"context"

	"github.com/meshsync/meshsync/internal/models"
)

//go:generate moq -out devicestore_mock.go . DeviceStore

// DeviceStore defines the interface for the device registry
type DeviceStore interface {
	// GetDevice retrieves a device by id
	// Returns ErrDeviceNotFound if the device is not registered
	GetDevice(ctx context.Context, deviceID string) (*models.Device, error)

	// ListDevices returns all known devices
	ListDevices(ctx context.Context) ([]*models.Device, error)

	// CreateDevice registers a new device
	CreateDevice(ctx context.Context, device *models.Device) error

	// UpdateDevice overwrites an existing device record
	UpdateDevice(ctx context.Context, device *models.Device) error

	// DeleteDevice removes a device from the registry
	DeleteDevice(ctx context.Context, deviceID string) error

	// IncrementDeviceClock advances the device's logical clock by one
	// and returns the new value
	IncrementDeviceClock(ctx context.Context, deviceID string) (int64, error)
}
