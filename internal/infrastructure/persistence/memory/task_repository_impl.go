package memory

import (
	"context"
	"sync"

	"mtodo/internal/domain/entity"
	"mtodo/internal/domain/repository"
	"mtodo/internal/infrastructure/persistence/mapper"
)

// TaskRepositoryImpl keeps a snapshot of the list in memory. It backs
// sessions started with storage disabled.
type TaskRepositoryImpl struct {
	mu       sync.Mutex
	snapshot mapper.TaskFileStorage
	saves    int
}

// NewTaskRepository creates an empty in-memory task repository
func NewTaskRepository() repository.TaskRepository {
	return &TaskRepositoryImpl{}
}

// Load returns a fresh copy of the last saved list
func (r *TaskRepositoryImpl) Load(ctx context.Context) (*entity.TaskList, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mapper.TaskListFromStorage(r.snapshot)
}

// Save stores a copy of list
func (r *TaskRepositoryImpl) Save(ctx context.Context, list *entity.TaskList) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = mapper.TaskListToStorage(list)
	r.saves++
	return nil
}

// Saves returns how many times Save was called
func (r *TaskRepositoryImpl) Saves() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}
