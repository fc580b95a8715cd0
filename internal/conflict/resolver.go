// Package conflict detects and resolves concurrent edits to the same
// entity coming from different devices.
package conflict

import (
	"context"
	"time"

	"github.com/meshsync/meshsync/internal/models"
)

//go:generate moq -out resolver_mock.go . Resolver

// Resolver is the conflict handling interface the sync engine depends
// on.
type Resolver interface {
	// DetectConflict compares a remote delta against the local entity
	// snapshot. Returns nil when the delta carries no disagreeing
	// fields; otherwise records and returns a new unresolved conflict.
	DetectConflict(ctx context.Context, entityType, entityID string, localEntity, remoteDelta map[string]any, localTS, remoteTS time.Time, remoteDeviceID string) (*models.Conflict, error)

	// Resolve applies a strategy to an unresolved conflict
	Resolve(ctx context.Context, conflictID string, strategy models.ConflictStrategy, resolvedBy string) (*Resolution, error)

	// UnresolvedCount returns the number of conflicts still pending
	UnresolvedCount() int

	// Unresolved returns all pending conflicts
	Unresolved() []*models.Conflict
}

// Resolution is the outcome of applying a strategy to a conflict.
type Resolution struct {
	// Fields is the entity field set that won, ready to apply.
	Fields map[string]any
	// Conflict is the resolved conflict record.
	Conflict *models.Conflict
	// Winner names the side that prevailed: "local", "remote" or
	// "merge".
	Winner string
}
