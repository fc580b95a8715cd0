package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// BackendType identifies the transport used to exchange changes.
type BackendType string

const (
	BackendCloud BackendType = "cloud"
	BackendNAS   BackendType = "nas"
	BackendP2P   BackendType = "p2p"
)

// ConflictStrategy selects how a detected conflict is resolved.
type ConflictStrategy string

const (
	StrategyLastWriteWins ConflictStrategy = "last_write_wins"
	StrategyKeepLocal     ConflictStrategy = "keep_local"
	StrategyKeepRemote    ConflictStrategy = "keep_remote"
	StrategyMerge         ConflictStrategy = "merge"
)

// SyncStatus is the engine state reported in SyncState.
type SyncStatus string

const (
	StatusOffline  SyncStatus = "offline"
	StatusIdle     SyncStatus = "idle"
	StatusSyncing  SyncStatus = "syncing"
	StatusConflict SyncStatus = "conflict"
	StatusError    SyncStatus = "error"
)

// ChangeType describes what kind of mutation a SyncChange records.
type ChangeType string

const (
	ChangeCreate ChangeType = "create"
	ChangeUpdate ChangeType = "update"
	ChangeDelete ChangeType = "delete"
)

// UnknownDeviceID is recorded as the origin of a pulled change that
// carries no device id.
const UnknownDeviceID = "unknown"

// SyncConfig holds the per-device synchronization configuration.
// At most one config exists per device.
type SyncConfig struct {
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeviceID         string           `json:"device_id"`
	DeviceName       string           `json:"device_name"`
	Backend          BackendType      `json:"backend"`
	Endpoint         string           `json:"endpoint"`
	CredentialsRef   string           `json:"credentials_ref"`
	DefaultStrategy  ConflictStrategy `json:"default_conflict_strategy"`
	ExcludePatterns  []string         `json:"exclude_patterns"`
	AutoSyncInterval int              `json:"auto_sync_interval_seconds"`
	MaxFileSizeBytes int64            `json:"max_file_size_bytes"`
	Enabled          bool             `json:"enabled"`
}

// SyncChange is an immutable, append-only record of one entity
// mutation. Only the Synced flag is ever updated after creation.
type SyncChange struct {
	CreatedAt      time.Time       `json:"created_at"`
	ID             string          `json:"id"`
	EntityType     string          `json:"entity_type"`
	EntityID       string          `json:"entity_id"`
	ChangeType     ChangeType      `json:"change_type"`
	DeviceID       string          `json:"device_id"`
	BeforeHash     string          `json:"before_hash"`
	AfterHash      string          `json:"after_hash"`
	Patch          json.RawMessage `json:"patch"`
	SequenceNumber int64           `json:"sequence_number"`
	Synced         bool            `json:"synced"`
}

// Clone returns a deep copy of the change.
func (c *SyncChange) Clone() *SyncChange {
	patch := make(json.RawMessage, len(c.Patch))
	copy(patch, c.Patch)

	clone := *c
	clone.Patch = patch
	return &clone
}

// NormalizedPatch decodes the loosely-typed patch payload into a field
// map. The patch may arrive either as a JSON object or as a JSON
// string containing a serialized object; both forms normalize to the
// same map. Empty and null patches normalize to an empty map.
func (c *SyncChange) NormalizedPatch() (map[string]any, error) {
	raw := c.Patch
	if len(raw) == 0 {
		return map[string]any{}, nil
	}

	// Double-encoded form: a JSON string holding the object.
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		if inner == "" {
			return map[string]any{}, nil
		}
		raw = json.RawMessage(inner)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to normalize patch: %w", err)
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// SyncState is the ephemeral status snapshot returned by the engine.
// It is recomputed on every call and never persisted.
type SyncState struct {
	Timestamp           time.Time        `json:"timestamp"`
	VectorClock         map[string]int64 `json:"vector_clock"`
	Status              SyncStatus       `json:"status"`
	DeviceID            string           `json:"device_id"`
	DeviceName          string           `json:"device_name"`
	ErrorMessage        string           `json:"error_message,omitempty"`
	PendingChanges      int              `json:"pending_changes"`
	UnresolvedConflicts int              `json:"unresolved_conflicts"`
}
