package models

import "time"

// Device describes one running instance of the orchestration tool,
// identified by a stable device id. The clock values of all known
// devices together form the reported vector clock.
type Device struct {
	LastSeenAt  time.Time `json:"last_seen_at"`
	DeviceID    string    `json:"device_id"`
	Name        string    `json:"name"`
	OS          string    `json:"os"`
	LastAddress string    `json:"last_address"`
	ClockValue  int64     `json:"clock_value"`
	IsCurrent   bool      `json:"is_current"`
	SyncEnabled bool      `json:"sync_enabled"`
}
