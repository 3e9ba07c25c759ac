package filesystem

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"mtodo/internal/domain/entity"
	"mtodo/internal/domain/repository"
	"mtodo/internal/infrastructure/persistence/mapper"
	"mtodo/internal/infrastructure/serialization"
	"mtodo/pkg/filesystem"
)

const tasksHeading = "# Tasks"

// TaskRepositoryImpl implements TaskRepository with a single markdown
// file: YAML frontmatter holds the records, the body a readable listing
type TaskRepositoryImpl struct {
	path string
}

// NewTaskRepository creates a new filesystem-based task repository
func NewTaskRepository(path string) repository.TaskRepository {
	return &TaskRepositoryImpl{path: path}
}

// Path returns the tasks file location
func (r *TaskRepositoryImpl) Path() string {
	return r.path
}

// Load reads the tasks file; a missing file is an empty list
func (r *TaskRepositoryImpl) Load(ctx context.Context) (*entity.TaskList, error) {
	exists, err := filesystem.Exists(r.path)
	if err != nil {
		return nil, err
	}
	if !exists {
		return entity.NewTaskList(), nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks file: %w", err)
	}

	doc, err := serialization.ParseFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tasks file: %w", err)
	}

	var storage mapper.TaskFileStorage
	if err := doc.Decode(&storage); err != nil {
		return nil, fmt.Errorf("failed to parse tasks file: %w", err)
	}

	list, err := mapper.TaskListFromStorage(storage)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks from %s: %w", r.path, err)
	}

	return list, nil
}

// Save atomically rewrites the tasks file
func (r *TaskRepositoryImpl) Save(ctx context.Context, list *entity.TaskList) error {
	storage := mapper.TaskListToStorage(list)

	data, err := serialization.SerializeFrontmatter(storage, renderBody(list))
	if err != nil {
		return fmt.Errorf("failed to serialize tasks: %w", err)
	}

	if err := filesystem.SafeWrite(r.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write tasks file: %w", err)
	}

	return nil
}

// renderBody lists the tasks for people opening the file directly
func renderBody(list *entity.TaskList) string {
	var b strings.Builder
	b.WriteString(tasksHeading)
	b.WriteString("\n\n")

	if list.Size() == 0 {
		b.WriteString("_No tasks._")
		return b.String()
	}

	for pos, task := range list.All() {
		b.WriteString(strconv.Itoa(pos))
		b.WriteString(". ")
		b.WriteString(task.String())
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
