package models

import "time"

// Conflict records a pair of concurrent edits to the same entity: a
// local not-yet-synced change and an incoming remote delta. It stays
// unresolved until a strategy is applied.
type Conflict struct {
	DetectedAt      time.Time        `json:"detected_at"`
	LocalTimestamp  time.Time        `json:"local_timestamp"`
	RemoteTimestamp time.Time        `json:"remote_timestamp"`
	ResolvedAt      time.Time        `json:"resolved_at,omitzero"`
	LocalSnapshot   map[string]any   `json:"local_snapshot"`
	RemoteDelta     map[string]any   `json:"remote_delta"`
	ID              string           `json:"id"`
	EntityType      string           `json:"entity_type"`
	EntityID        string           `json:"entity_id"`
	RemoteDeviceID  string           `json:"remote_device_id"`
	Strategy        ConflictStrategy `json:"strategy,omitempty"`
	ResolvedBy      string           `json:"resolved_by,omitempty"`
	Resolved        bool             `json:"resolved"`
}

// RemoteWins reports whether the remote side of the conflict wins
// under last-write-wins ordering. Equal timestamps tie-break on the
// remote device id against the local device id, lexicographically,
// so both sides decide the same way.
func (c *Conflict) RemoteWins(localDeviceID string) bool {
	if c.RemoteTimestamp.After(c.LocalTimestamp) {
		return true
	}
	if c.RemoteTimestamp.Before(c.LocalTimestamp) {
		return false
	}
	return c.RemoteDeviceID > localDeviceID
}
