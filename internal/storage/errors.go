package storage

import "errors"

// Common storage errors
var (
	// ErrConfigNotFound indicates that no sync config exists for the device
	ErrConfigNotFound = errors.New("sync config not found")

	// ErrDeviceNotFound indicates that the device is not registered
	ErrDeviceNotFound = errors.New("device not found")

	// ErrChangeNotFound indicates that the sync change was not found
	ErrChangeNotFound = errors.New("sync change not found")

	// ErrEntityNotFound indicates that the requested entity does not exist
	ErrEntityNotFound = errors.New("entity not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
