package entity

import (
	"errors"
	"testing"
	"time"

	"mtodo/internal/domain/valueobject"
)

func mustToDo(t *testing.T, description string) *Task {
	t.Helper()
	task, err := NewToDo(description)
	if err != nil {
		t.Fatalf("NewToDo(%q): %v", description, err)
	}
	return task
}

func descriptions(list *TaskList) []string {
	var out []string
	for _, task := range list.All() {
		out = append(out, task.Description())
	}
	return out
}

func TestTaskListAddAndAll(t *testing.T) {
	list := NewTaskList()
	if list.Size() != 0 {
		t.Fatalf("expected empty list, got %d", list.Size())
	}

	list.Add(mustToDo(t, "a"))
	list.Add(mustToDo(t, "b"))

	var positions []int
	for pos := range list.All() {
		positions = append(positions, pos)
	}
	if len(positions) != 2 || positions[0] != 1 || positions[1] != 2 {
		t.Errorf("expected positions [1 2], got %v", positions)
	}

	// the sequence can be walked again
	if got := descriptions(list); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
}

func TestTaskListRemoveCompacts(t *testing.T) {
	list := NewTaskList(mustToDo(t, "a"), mustToDo(t, "b"), mustToDo(t, "c"), mustToDo(t, "d"))

	removed, err := list.Remove(1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if removed.Description() != "b" {
		t.Errorf("expected to remove b, got %s", removed.Description())
	}

	got := descriptions(list)
	want := []string{"a", "c", "d"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i+1, want[i], got[i])
		}
	}

	// the vacated slot must not keep the removed task reachable
	backing := list.tasks[:cap(list.tasks)]
	for _, task := range backing[list.Size():] {
		if task != nil {
			t.Errorf("expected cleared slot, found %s", task.Description())
		}
	}
}

func TestTaskListIndexBounds(t *testing.T) {
	list := NewTaskList(mustToDo(t, "a"))

	for _, idx := range []int{-1, 1, 5} {
		if _, err := list.Get(idx); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("Get(%d): expected ErrTaskNotFound, got %v", idx, err)
		}
		if _, err := list.Remove(idx); !errors.Is(err, ErrTaskNotFound) {
			t.Errorf("Remove(%d): expected ErrTaskNotFound, got %v", idx, err)
		}
	}
	if list.Size() != 1 {
		t.Errorf("expected size 1, got %d", list.Size())
	}
}

func TestTaskListMarkIsUnconditional(t *testing.T) {
	list := NewTaskList(mustToDo(t, "a"))

	for i := 0; i < 2; i++ {
		task, err := list.MarkDone(0)
		if err != nil {
			t.Fatalf("MarkDone #%d: %v", i+1, err)
		}
		if !task.IsDone() {
			t.Fatalf("MarkDone #%d: expected task to be done", i+1)
		}
	}
	task, err := list.MarkUndone(0)
	if err != nil {
		t.Fatalf("MarkUndone: %v", err)
	}
	if task.IsDone() {
		t.Fatal("MarkUndone: expected task to be undone")
	}
}

func TestTaskListByDate(t *testing.T) {
	day := valueobject.NewDate(2024, time.January, 15)
	nextDay := valueobject.NewDate(2024, time.January, 16)

	todo := mustToDo(t, "todo")
	d1, _ := NewDeadline("d1", day)
	e1, _ := NewEvent("e1", nextDay)
	e2, _ := NewEvent("e2", day)
	d2, _ := NewDeadline("d2", nextDay)
	list := NewTaskList(todo, d1, e1, e2, d2)

	var got []string
	var positions []int
	for pos, task := range list.ByDate(day) {
		positions = append(positions, pos)
		got = append(got, task.Description())
	}

	if len(got) != 2 || got[0] != "d1" || got[1] != "e2" {
		t.Errorf("expected [d1 e2], got %v", got)
	}
	if len(positions) != 2 || positions[0] != 1 || positions[1] != 2 {
		t.Errorf("expected result positions [1 2], got %v", positions)
	}

	empty := 0
	for range list.ByDate(valueobject.NewDate(2030, time.January, 1)) {
		empty++
	}
	if empty != 0 {
		t.Errorf("expected no matches, got %d", empty)
	}
}

func TestTaskListAllStopsEarly(t *testing.T) {
	list := NewTaskList(mustToDo(t, "a"), mustToDo(t, "b"), mustToDo(t, "c"))

	seen := 0
	for range list.All() {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("expected to stop after 2, got %d", seen)
	}
}
