package task

import (
	"context"

	"mtodo/internal/application/dto"
	"mtodo/internal/domain/repository"
	"mtodo/internal/domain/valueobject"
)

// ListTasksUseCase reads the persisted list for one-shot listings
type ListTasksUseCase struct {
	taskRepo repository.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase
func NewListTasksUseCase(taskRepo repository.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo}
}

// Execute lists every persisted task in order
func (uc *ListTasksUseCase) Execute(ctx context.Context) ([]dto.TaskDTO, error) {
	list, err := uc.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TaskDTO, 0, list.Size())
	for pos, task := range list.All() {
		result = append(result, dto.TaskToDTO(pos, task))
	}
	return result, nil
}

// ExecuteByDate lists persisted deadlines and events falling on date
func (uc *ListTasksUseCase) ExecuteByDate(ctx context.Context, date valueobject.Date) ([]dto.TaskDTO, error) {
	list, err := uc.taskRepo.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TaskDTO, 0)
	for pos, task := range list.ByDate(date) {
		result = append(result, dto.TaskToDTO(pos, task))
	}
	return result, nil
}
