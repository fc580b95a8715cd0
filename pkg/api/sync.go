// Package api defines the wire types exchanged between a device and a
// sync backend (cloud relay or peer).
package api

import (
	"encoding/json"
	"time"
)

// Change is the wire form of one sync change record.
type Change struct {
	CreatedAt      time.Time       `json:"created_at"`
	ID             string          `json:"id"`
	EntityType     string          `json:"entity_type"`
	EntityID       string          `json:"entity_id"`
	ChangeType     string          `json:"change_type"`
	DeviceID       string          `json:"device_id"`
	BeforeHash     string          `json:"before_hash,omitempty"`
	AfterHash      string          `json:"after_hash,omitempty"`
	Patch          json.RawMessage `json:"patch,omitempty"`
	SequenceNumber int64           `json:"sequence_number"`
}

// PushRequest carries a device's local unsynced changes to the
// backend.
type PushRequest struct {
	DeviceID string   `json:"device_id"`
	Changes  []Change `json:"changes"`
}

// PushResponse reports which pushed change ids the backend accepted.
type PushResponse struct {
	Accepted []string `json:"accepted"`
	Rejected []string `json:"rejected"`
}

// PullRequest asks the backend for changes after a sequence watermark.
type PullRequest struct {
	DeviceID string `json:"device_id"`
	Since    int64  `json:"since"`
}

// PullResponse returns the changes the backend saw after the
// requested watermark.
type PullResponse struct {
	Changes        []Change `json:"changes"`
	LatestSequence int64    `json:"latest_sequence"`
}
