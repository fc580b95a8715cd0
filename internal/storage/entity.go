package storage

import (
	"context"

	"github.com/meshsync/meshsync/internal/models"
)

//go:generate moq -out entitystore_mock.go . EntityStore

// EntityStore defines the interface for the domain entities the sync
// engine reconciles
type EntityStore interface {
	// GetTask retrieves a task by id
	// Returns ErrEntityNotFound if it does not exist
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// SaveTask stores or updates a task
	SaveTask(ctx context.Context, task *models.Task) error

	// GetDesignComponent retrieves a design component by id
	// Returns ErrEntityNotFound if it does not exist
	GetDesignComponent(ctx context.Context, id string) (*models.DesignComponent, error)

	// SaveDesignComponent stores or updates a design component
	SaveDesignComponent(ctx context.Context, component *models.DesignComponent) error
}
