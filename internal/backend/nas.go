package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/pkg/api"
)

// NAS exchanges changes through a mounted file share. Each change is
// one JSON document under <endpoint>/changes; the directory is the
// shared log all devices append to.
type NAS struct {
	logger     *slog.Logger
	changesDir string
	deviceID   string
	connected  bool
}

// NewNAS creates a NAS adapter.
func NewNAS(logger *slog.Logger) *NAS {
	return &NAS{logger: logger}
}

// Connect implements Adapter.Connect. The endpoint must be a writable
// directory (typically a mounted share).
func (n *NAS) Connect(ctx context.Context, cfg *models.SyncConfig) error {
	if n.connected {
		return nil
	}

	n.changesDir = filepath.Join(cfg.Endpoint, "changes")
	n.deviceID = cfg.DeviceID

	if err := os.MkdirAll(n.changesDir, 0o755); err != nil {
		return fmt.Errorf("nas connect failed: %w", err)
	}

	n.connected = true
	return nil
}

// Disconnect implements Adapter.Disconnect.
func (n *NAS) Disconnect(ctx context.Context) error {
	n.connected = false
	return nil
}

// Connected implements Adapter.Connected.
func (n *NAS) Connected() bool {
	return n.connected
}

// PushChanges implements Adapter.PushChanges. Each change lands as
// its own file; a write failure rejects that change and keeps going.
func (n *NAS) PushChanges(ctx context.Context, changes []*models.SyncChange) (*PushResult, error) {
	if !n.connected {
		return rejectAll(changes), nil
	}

	result := &PushResult{Accepted: []string{}, Rejected: []string{}}

	for _, change := range changes {
		if err := n.writeChange(change); err != nil {
			n.logger.Warn("Failed to write change to share", "change_id", change.ID, "error", err)
			result.Rejected = append(result.Rejected, change.ID)
			continue
		}
		result.Accepted = append(result.Accepted, change.ID)
	}

	return result, nil
}

func (n *NAS) writeChange(change *models.SyncChange) error {
	data, err := json.Marshal(toWire(change))
	if err != nil {
		return fmt.Errorf("failed to marshal change: %w", err)
	}

	name := fmt.Sprintf("%s-%012d-%s.json", change.DeviceID, change.SequenceNumber, change.ID)
	path := filepath.Join(n.changesDir, name)

	// Write-then-rename so concurrent readers never see a torn file.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write change file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to publish change file: %w", err)
	}

	return nil
}

// PullChanges implements Adapter.PullChanges. It scans the shared
// directory for changes from other devices past the watermark.
// Unreadable files are skipped so one corrupt document cannot stall
// every device.
func (n *NAS) PullChanges(ctx context.Context, sinceSequence int64) ([]*models.SyncChange, error) {
	if !n.connected {
		return nil, fmt.Errorf("nas adapter is not connected")
	}

	entries, err := os.ReadDir(n.changesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read changes directory: %w", err)
	}

	var changes []*models.SyncChange
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(n.changesDir, entry.Name()))
		if err != nil {
			n.logger.Warn("Failed to read change file", "file", entry.Name(), "error", err)
			continue
		}

		var wire api.Change
		if err := json.Unmarshal(data, &wire); err != nil {
			n.logger.Warn("Skipping malformed change file", "file", entry.Name(), "error", err)
			continue
		}

		change := fromWire(wire)
		if change.DeviceID != n.deviceID && change.SequenceNumber > sinceSequence {
			changes = append(changes, change)
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		return changes[i].SequenceNumber < changes[j].SequenceNumber
	})
	return changes, nil
}
