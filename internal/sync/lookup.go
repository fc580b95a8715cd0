package sync

import (
	"context"

	"github.com/meshsync/meshsync/internal/models"
)

// lookupEntity resolves an entity to its field snapshot for conflict
// detection. Unknown types and storage failures both resolve to nil:
// the change is then treated as having no local entity, which
// suppresses conflict detection instead of aborting the cycle.
func (e *Engine) lookupEntity(ctx context.Context, entityType, entityID string) map[string]any {
	var (
		entity any
		err    error
	)

	switch entityType {
	case models.EntityTask:
		entity, err = e.entities.GetTask(ctx, entityID)
	case models.EntityDesignComponent:
		entity, err = e.entities.GetDesignComponent(ctx, entityID)
	default:
		e.logger.Debug("Unknown entity type in lookup", "entity_type", entityType)
		return nil
	}
	if err != nil {
		e.logger.Debug("Entity lookup failed",
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err)
		return nil
	}

	snapshot, err := models.EntitySnapshot(entity)
	if err != nil {
		e.logger.Debug("Entity snapshot failed",
			"entity_type", entityType,
			"entity_id", entityID,
			"error", err)
		return nil
	}
	return snapshot
}
