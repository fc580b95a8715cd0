package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/internal/storage"
)

// GetDevice retrieves a device by id
func (s *Storage) GetDevice(ctx context.Context, deviceID string) (*models.Device, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var device *models.Device

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketDevices).Get([]byte(deviceID))
		if data == nil {
			return storage.ErrDeviceNotFound
		}

		device = &models.Device{}
		if err := json.Unmarshal(data, device); err != nil {
			return fmt.Errorf("failed to unmarshal device: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return device, nil
}

// ListDevices returns all known devices
func (s *Storage) ListDevices(ctx context.Context) ([]*models.Device, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var devices []*models.Device

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDevices).ForEach(func(k, v []byte) error {
			device := &models.Device{}
			if err := json.Unmarshal(v, device); err != nil {
				return fmt.Errorf("failed to unmarshal device %s: %w", k, err)
			}
			devices = append(devices, device)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return devices, nil
}

// CreateDevice registers a new device
func (s *Storage) CreateDevice(ctx context.Context, device *models.Device) error {
	return s.putDevice(device)
}

// UpdateDevice overwrites an existing device record
func (s *Storage) UpdateDevice(ctx context.Context, device *models.Device) error {
	return s.putDevice(device)
}

func (s *Storage) putDevice(device *models.Device) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(device)
	if err != nil {
		return fmt.Errorf("failed to marshal device: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketDevices).Put([]byte(device.DeviceID), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}

	return nil
}

// DeleteDevice removes a device from the registry
func (s *Storage) DeleteDevice(ctx context.Context, deviceID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevices)
		if bucket.Get([]byte(deviceID)) == nil {
			return storage.ErrDeviceNotFound
		}
		return bucket.Delete([]byte(deviceID))
	})
	if err != nil {
		return err
	}

	return nil
}

// IncrementDeviceClock advances the device's logical clock by one and
// returns the new value. Read and write happen in one transaction so
// concurrent increments cannot lose updates.
func (s *Storage) IncrementDeviceClock(ctx context.Context, deviceID string) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var clock int64

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDevices)

		data := bucket.Get([]byte(deviceID))
		if data == nil {
			return storage.ErrDeviceNotFound
		}

		device := &models.Device{}
		if err := json.Unmarshal(data, device); err != nil {
			return fmt.Errorf("failed to unmarshal device: %w", err)
		}

		device.ClockValue++
		clock = device.ClockValue

		updated, err := json.Marshal(device)
		if err != nil {
			return fmt.Errorf("failed to marshal device: %w", err)
		}
		return bucket.Put([]byte(deviceID), updated)
	})
	if err != nil {
		return 0, err
	}

	return clock, nil
}
