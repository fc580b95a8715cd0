package backend

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meshsync/meshsync/internal/models"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew(t *testing.T) {
	logger := testLogger()

	tests := []struct {
		name    string
		backend models.BackendType
		want    any
	}{
		{name: "cloud", backend: models.BackendCloud, want: &Cloud{}},
		{name: "nas", backend: models.BackendNAS, want: &NAS{}},
		{name: "p2p", backend: models.BackendP2P, want: &P2P{}},
		{name: "unknown falls back to cloud", backend: models.BackendType("ftp"), want: &Cloud{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := New(tt.backend, logger)
			assert.IsType(t, tt.want, adapter)
		})
	}
}

func TestNewNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		New(models.BackendCloud, nil)
	})
}

func TestRejectAll(t *testing.T) {
	changes := []*models.SyncChange{
		{ID: "chg-1"},
		{ID: "chg-2"},
	}

	result := rejectAll(changes)
	assert.Empty(t, result.Accepted)
	assert.Equal(t, []string{"chg-1", "chg-2"}, result.Rejected)
}
