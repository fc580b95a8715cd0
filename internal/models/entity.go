package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entity type tags used on SyncChange records.
const (
	EntityTask            = "task"
	EntityDesignComponent = "design_component"
)

// Task is an orchestration work item shared across devices.
type Task struct {
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AssignedTo  string    `json:"assigned_to"`
	Priority    int       `json:"priority"`
}

// DesignComponent is a shared design artifact (architecture element,
// interface sketch) edited alongside tasks.
type DesignComponent struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind"`
	Content   string    `json:"content"`
	Version   int       `json:"version"`
}

// EntitySnapshot flattens an entity into a field map so it can be
// compared against a remote patch during conflict detection.
func EntitySnapshot(entity any) (map[string]any, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	var snapshot map[string]any
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to snapshot entity: %w", err)
	}
	return snapshot, nil
}
