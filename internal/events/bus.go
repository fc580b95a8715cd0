// Package events provides the in-process event bus the sync engine
// publishes lifecycle notifications on.
package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Event names published by the sync engine.
const (
	SyncStarted         = "sync:started"
	SyncCompleted       = "sync:completed"
	SyncConflictFound   = "sync:conflict_detected"
	SyncDeviceConnected = "sync:device_connected"
	SyncDeviceDropped   = "sync:device_disconnected"
)

// Event is one published notification.
type Event struct {
	Timestamp time.Time
	Payload   any
	Name      string
	Source    string
}

// Handler consumes a published event. Handler errors are logged and
// never reach the publisher.
type Handler func(ctx context.Context, event Event)

//go:generate moq -out publisher_mock.go . Publisher

// Publisher is the engine-facing side of the bus.
type Publisher interface {
	// Emit publishes an event to all matching subscribers
	Emit(ctx context.Context, name, source string, payload any)
}

// Bus is a process-local pub/sub bus. Handlers run synchronously in
// subscription order; a panicking handler is recovered and logged so
// one bad subscriber cannot break emission for the rest.
type Bus struct {
	logger   *slog.Logger
	handlers map[string][]Handler
	mu       sync.RWMutex
}

// NewBus creates an event bus. If logger is nil, slog.Default is used.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		logger:   logger,
		handlers: make(map[string][]Handler),
	}
}

// Subscribe registers a handler for the named event. The wildcard
// name "*" receives every event.
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[name] = append(b.handlers[name], handler)
}

// Emit publishes an event to all matching subscribers.
func (b *Bus) Emit(ctx context.Context, name, source string, payload any) {
	event := Event{
		Name:      name,
		Source:    source,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[name])+len(b.handlers["*"]))
	handlers = append(handlers, b.handlers[name]...)
	handlers = append(handlers, b.handlers["*"]...)
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.dispatch(ctx, handler, event)
	}
}

func (b *Bus) dispatch(ctx context.Context, handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Warn("event handler panicked", "event", event.Name, "panic", r)
		}
	}()
	handler(ctx, event)
}
