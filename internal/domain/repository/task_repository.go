package repository

import (
	"context"
	"mtodo/internal/domain/entity"
)

// TaskRepository defines the interface for task list persistence
type TaskRepository interface {
	// Load reads the persisted task list, returning an empty list when nothing was saved yet
	Load(ctx context.Context) (*entity.TaskList, error)

	// Save replaces the persisted task list
	Save(ctx context.Context, list *entity.TaskList) error
}
