// Package backend provides the transport adapters the sync engine
// pushes and pulls changes through.
package backend

import (
	"context"
	"log/slog"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/pkg/api"
)

//go:generate moq -out adapter_mock.go . Adapter

// Adapter is the uniform contract over the cloud, NAS and P2P
// transports. Connect is idempotent; PushChanges must reject all
// changes rather than fail when the adapter is not connected.
type Adapter interface {
	// Connect establishes the transport using the device config
	Connect(ctx context.Context, cfg *models.SyncConfig) error

	// Disconnect tears the transport down
	Disconnect(ctx context.Context) error

	// Connected reports whether the transport is usable
	Connected() bool

	// PushChanges uploads local changes and reports which ids the
	// backend accepted
	PushChanges(ctx context.Context, changes []*models.SyncChange) (*PushResult, error)

	// PullChanges downloads changes recorded after the sequence
	// watermark
	PullChanges(ctx context.Context, sinceSequence int64) ([]*models.SyncChange, error)
}

// PushResult reports the outcome of one push batch.
type PushResult struct {
	Accepted []string
	Rejected []string
}

// New builds the adapter for a backend tag. Unknown tags warn and
// fall back to the cloud adapter rather than failing construction.
func New(backend models.BackendType, logger *slog.Logger) Adapter {
	if logger == nil {
		logger = slog.Default()
	}

	switch backend {
	case models.BackendCloud:
		return NewCloud(logger)
	case models.BackendNAS:
		return NewNAS(logger)
	case models.BackendP2P:
		return NewP2P(logger)
	default:
		logger.Warn("Unknown backend, falling back to cloud adapter", "backend", string(backend))
		return NewCloud(logger)
	}
}

// rejectAll builds the disconnected push result: every change
// rejected, none accepted.
func rejectAll(changes []*models.SyncChange) *PushResult {
	rejected := make([]string, 0, len(changes))
	for _, change := range changes {
		rejected = append(rejected, change.ID)
	}
	return &PushResult{Accepted: []string{}, Rejected: rejected}
}

// toWire converts a change to its wire form.
func toWire(change *models.SyncChange) api.Change {
	return api.Change{
		ID:             change.ID,
		EntityType:     change.EntityType,
		EntityID:       change.EntityID,
		ChangeType:     string(change.ChangeType),
		DeviceID:       change.DeviceID,
		BeforeHash:     change.BeforeHash,
		AfterHash:      change.AfterHash,
		Patch:          change.Patch,
		SequenceNumber: change.SequenceNumber,
		CreatedAt:      change.CreatedAt,
	}
}

// fromWire converts a wire change back to the model form.
func fromWire(change api.Change) *models.SyncChange {
	return &models.SyncChange{
		ID:             change.ID,
		EntityType:     change.EntityType,
		EntityID:       change.EntityID,
		ChangeType:     models.ChangeType(change.ChangeType),
		DeviceID:       change.DeviceID,
		BeforeHash:     change.BeforeHash,
		AfterHash:      change.AfterHash,
		Patch:          change.Patch,
		SequenceNumber: change.SequenceNumber,
		CreatedAt:      change.CreatedAt,
	}
}
