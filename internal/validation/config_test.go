package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshsync/meshsync/internal/models"
)

func TestValidateDeviceID(t *testing.T) {
	tests := []struct {
		name     string
		deviceID string
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid id",
			deviceID: "dev-001",
			wantErr:  false,
		},
		{
			name:     "valid id with underscore",
			deviceID: "build_agent_7",
			wantErr:  false,
		},
		{
			name:     "empty id",
			deviceID: "",
			wantErr:  true,
			errMsg:   "cannot be empty",
		},
		{
			name:     "too short",
			deviceID: "ab",
			wantErr:  true,
			errMsg:   "at least 3 characters",
		},
		{
			name:     "too long",
			deviceID: strings.Repeat("a", 65),
			wantErr:  true,
			errMsg:   "must not exceed 64 characters",
		},
		{
			name:     "invalid characters",
			deviceID: "dev 001!",
			wantErr:  true,
			errMsg:   "can only contain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeviceID(tt.deviceID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func validConfig() *models.SyncConfig {
	return &models.SyncConfig{
		DeviceID:         "dev-001",
		DeviceName:       "workstation",
		Backend:          models.BackendCloud,
		Endpoint:         "https://sync.example.com",
		DefaultStrategy:  models.StrategyLastWriteWins,
		AutoSyncInterval: 60,
		MaxFileSizeBytes: 10 << 20,
		Enabled:          true,
	}
}

func TestValidateConfig(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(validConfig()))
	})

	t.Run("nil config", func(t *testing.T) {
		require.Error(t, ValidateConfig(nil))
	})

	t.Run("unknown backend passes", func(t *testing.T) {
		// The adapter factory owns unknown-backend handling; an
		// unrecognized tag must not block configuration.
		cfg := validConfig()
		cfg.Backend = "ftp"
		assert.NoError(t, ValidateConfig(cfg))
	})

	t.Run("unknown strategy", func(t *testing.T) {
		cfg := validConfig()
		cfg.DefaultStrategy = "coin_flip"
		err := ValidateConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown conflict strategy")
	})

	t.Run("negative interval", func(t *testing.T) {
		cfg := validConfig()
		cfg.AutoSyncInterval = -1
		require.Error(t, ValidateConfig(cfg))
	})

	t.Run("negative max file size", func(t *testing.T) {
		cfg := validConfig()
		cfg.MaxFileSizeBytes = -5
		require.Error(t, ValidateConfig(cfg))
	})
}
