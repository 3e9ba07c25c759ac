package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"mtodo/internal/domain/entity"
	"mtodo/internal/domain/valueobject"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	repo := NewTaskRepository(filepath.Join(t.TempDir(), "tasks.md"))

	list, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.Size() != 0 {
		t.Errorf("expected empty list, got %d tasks", list.Size())
	}
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "tasks.md")
	repo := NewTaskRepository(path)

	todo, _ := entity.NewToDo("read book")
	deadline, _ := entity.NewDeadline("submit", valueobject.NewDate(2024, time.January, 15))
	todo.MarkDone()

	if err := repo.Save(ctx, entity.NewTaskList(todo, deadline)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected tasks file, got %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "---\n") {
		t.Errorf("expected frontmatter, got %q", content)
	}
	if !strings.Contains(content, "2. [D][ ] submit (by: 2024-01-15)") {
		t.Errorf("expected readable listing in body, got %q", content)
	}

	loaded, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loaded.Size() != 2 {
		t.Fatalf("expected 2 tasks, got %d", loaded.Size())
	}
	first, _ := loaded.Get(0)
	if first.String() != "[T][X] read book" || first.ID() != todo.ID() {
		t.Errorf("unexpected first task: %s (%s)", first, first.ID())
	}
}

func TestSaveEmptyList(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(filepath.Join(t.TempDir(), "tasks.md"))

	if err := repo.Save(ctx, entity.NewTaskList()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	list, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if list.Size() != 0 {
		t.Errorf("expected empty list, got %d", list.Size())
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.md")
	data := "---\nversion: 1\ntasks:\n  - id: 3f8e2a6c-0a52-4a43-9b57-1b1f0b3f1a11\n    kind: deadline\n    description: x\n    date: soon\n---\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewTaskRepository(path).Load(context.Background())
	if err == nil {
		t.Fatal("expected error for corrupt record")
	}
	if !strings.Contains(err.Error(), "task 1") {
		t.Errorf("expected error to name the record, got %v", err)
	}
}

func TestSaveAndLoadLongDescription(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(filepath.Join(t.TempDir(), "tasks.md"))

	description := strings.TrimSpace(strings.Repeat("word ", 20000))
	todo, err := entity.NewToDo(description)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := repo.Save(ctx, entity.NewTaskList(todo)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	list, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("expected saved list to load, got %v", err)
	}
	got, err := list.Get(0)
	if err != nil {
		t.Fatalf("expected a task, got %v", err)
	}
	if got.Description() != description {
		t.Errorf("expected description of length %d, got %d", len(description), len(got.Description()))
	}
}
