// Package audit provides the transparency log: a durable record of
// every sync-visible operation, queryable for review.
package audit

import (
	"context"
	"time"
)

// Categories used on transparency entries.
const (
	CategorySyncOperation = "sync_operation"
	CategoryLockOperation = "lock_operation"
)

// Entry is one transparency-log record.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Category  string    `json:"category"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail"`
	DeviceID  string    `json:"device_id,omitempty"`
}

// Filter narrows a transparency-log query. Zero fields match
// everything; Limit 0 means no limit.
type Filter struct {
	Category string
	Action   string
	Limit    int
}

//go:generate moq -out logger_mock.go . Logger

// Logger defines the transparency log interface. Implementations must
// be safe for concurrent use; callers treat failures as advisory and
// never let them affect sync correctness.
type Logger interface {
	// Log appends an entry to the transparency log
	Log(ctx context.Context, entry Entry) error

	// Query returns entries matching the filter, newest first
	Query(ctx context.Context, filter Filter) ([]Entry, error)
}
