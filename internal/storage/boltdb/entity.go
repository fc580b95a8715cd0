package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/internal/storage"
)

// GetTask retrieves a task by id
func (s *Storage) GetTask(ctx context.Context, id string) (*models.Task, error) {
	task := &models.Task{}
	if err := s.getEntity(bucketTasks, id, task); err != nil {
		return nil, err
	}
	return task, nil
}

// SaveTask stores or updates a task
func (s *Storage) SaveTask(ctx context.Context, task *models.Task) error {
	return s.putEntity(bucketTasks, task.ID, task)
}

// GetDesignComponent retrieves a design component by id
func (s *Storage) GetDesignComponent(ctx context.Context, id string) (*models.DesignComponent, error) {
	component := &models.DesignComponent{}
	if err := s.getEntity(bucketComponents, id, component); err != nil {
		return nil, err
	}
	return component, nil
}

// SaveDesignComponent stores or updates a design component
func (s *Storage) SaveDesignComponent(ctx context.Context, component *models.DesignComponent) error {
	return s.putEntity(bucketComponents, component.ID, component)
}

func (s *Storage) getEntity(bucket []byte, id string, out any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(id))
		if data == nil {
			return storage.ErrEntityNotFound
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to unmarshal entity: %w", err)
		}
		return nil
	})
}

func (s *Storage) putEntity(bucket []byte, id string, entity any) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucket).Put([]byte(id), data)
	})
	if err != nil {
		return fmt.Errorf("failed to save entity: %w", err)
	}

	return nil
}
