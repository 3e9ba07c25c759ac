package mapper

import (
	"fmt"
	"mtodo/internal/domain/entity"
	"mtodo/internal/domain/valueobject"
)

// CurrentVersion is the task file format version written by this build
const CurrentVersion = 1

// TaskFileStorage represents the frontmatter of the tasks file
type TaskFileStorage struct {
	Version int           `yaml:"version"`
	Tasks   []TaskStorage `yaml:"tasks"`
}

// TaskStorage represents task storage format
type TaskStorage struct {
	ID          string `yaml:"id"`
	Kind        string `yaml:"kind"`
	Description string `yaml:"description"`
	Done        bool   `yaml:"done"`
	Date        string `yaml:"date,omitempty"`
}

// TaskToStorage converts a Task entity to storage format
func TaskToStorage(task *entity.Task) TaskStorage {
	storage := TaskStorage{
		ID:          task.ID(),
		Kind:        task.Kind().String(),
		Description: task.Description(),
		Done:        task.IsDone(),
	}

	if date, ok := task.Date(); ok {
		storage.Date = date.String()
	}

	return storage
}

// TaskFromStorage converts storage format to a Task entity
func TaskFromStorage(storage TaskStorage) (*entity.Task, error) {
	kind, err := valueobject.ParseKind(storage.Kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrInvalidKind, err)
	}

	var date valueobject.Date
	if kind != valueobject.KindToDo {
		date, err = valueobject.ParseDate(storage.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", entity.ErrInvalidDate, err)
		}
	}

	return entity.RestoreTask(storage.ID, kind, storage.Description, storage.Done, date)
}

// TaskListToStorage converts the whole list, preserving order
func TaskListToStorage(list *entity.TaskList) TaskFileStorage {
	storage := TaskFileStorage{
		Version: CurrentVersion,
		Tasks:   make([]TaskStorage, 0, list.Size()),
	}
	for _, task := range list.All() {
		storage.Tasks = append(storage.Tasks, TaskToStorage(task))
	}
	return storage
}

// TaskListFromStorage rebuilds a list; errors name the 1-based record position
func TaskListFromStorage(storage TaskFileStorage) (*entity.TaskList, error) {
	if storage.Version > CurrentVersion {
		return nil, fmt.Errorf("unsupported task file version %d", storage.Version)
	}

	list := entity.NewTaskList()
	for i, record := range storage.Tasks {
		task, err := TaskFromStorage(record)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		list.Add(task)
	}
	return list, nil
}
