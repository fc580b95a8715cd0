package validation

import (
	"fmt"
	"regexp"

	"github.com/meshsync/meshsync/internal/models"
)

// DeviceIDPattern defines the accepted device id format:
// letters, digits, underscore and hyphen, 3-64 characters.
var DeviceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

const (
	// MinDeviceIDLen is the minimum device id length
	MinDeviceIDLen = 3
	// MaxDeviceIDLen is the maximum device id length
	MaxDeviceIDLen = 64
)

// ValidateDeviceID checks that a device id matches the required format.
func ValidateDeviceID(deviceID string) error {
	if deviceID == "" {
		return fmt.Errorf("device id cannot be empty")
	}

	if len(deviceID) < MinDeviceIDLen {
		return fmt.Errorf("device id must be at least %d characters long", MinDeviceIDLen)
	}

	if len(deviceID) > MaxDeviceIDLen {
		return fmt.Errorf("device id must not exceed %d characters", MaxDeviceIDLen)
	}

	if !DeviceIDPattern.MatchString(deviceID) {
		return fmt.Errorf("device id can only contain letters, numbers, underscores and hyphens")
	}

	return nil
}

// ValidateConfig checks a sync configuration before it is persisted.
func ValidateConfig(cfg *models.SyncConfig) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateDeviceID(cfg.DeviceID); err != nil {
		return err
	}

	// The backend tag is deliberately not validated here: an unknown
	// tag still configures, and the adapter factory falls back to the
	// cloud transport with a warning.
	switch cfg.DefaultStrategy {
	case models.StrategyLastWriteWins, models.StrategyKeepLocal,
		models.StrategyKeepRemote, models.StrategyMerge:
	default:
		return fmt.Errorf("unknown conflict strategy: %q", cfg.DefaultStrategy)
	}

	if cfg.AutoSyncInterval < 0 {
		return fmt.Errorf("auto sync interval cannot be negative")
	}

	if cfg.MaxFileSizeBytes < 0 {
		return fmt.Errorf("max file size cannot be negative")
	}

	return nil
}
