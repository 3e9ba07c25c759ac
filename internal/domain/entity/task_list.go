package entity

import (
	"iter"
	"slices"

	"mtodo/internal/domain/valueobject"
)

// TaskList is the ordered collection of tasks owned by one session.
// Positions are 0-based here; callers translate from the 1-based
// numbers users type.
type TaskList struct {
	tasks []*Task
}

// NewTaskList creates a task list holding the given tasks in order
func NewTaskList(tasks ...*Task) *TaskList {
	list := &TaskList{tasks: make([]*Task, 0, len(tasks))}
	for _, task := range tasks {
		list.Add(task)
	}
	return list
}

// Size returns the number of tasks
func (l *TaskList) Size() int {
	return len(l.tasks)
}

// Add appends a task
func (l *TaskList) Add(task *Task) {
	l.tasks = append(l.tasks, task)
}

// Get returns the task at index0
func (l *TaskList) Get(index0 int) (*Task, error) {
	if index0 < 0 || index0 >= len(l.tasks) {
		return nil, ErrTaskNotFound
	}
	return l.tasks[index0], nil
}

// Remove deletes the task at index0 and shifts later tasks down
func (l *TaskList) Remove(index0 int) (*Task, error) {
	task, err := l.Get(index0)
	if err != nil {
		return nil, err
	}
	l.tasks = slices.Delete(l.tasks, index0, index0+1)
	return task, nil
}

// MarkDone marks the task at index0 as done
func (l *TaskList) MarkDone(index0 int) (*Task, error) {
	task, err := l.Get(index0)
	if err != nil {
		return nil, err
	}
	task.MarkDone()
	return task, nil
}

// MarkUndone clears the done flag of the task at index0
func (l *TaskList) MarkUndone(index0 int) (*Task, error) {
	task, err := l.Get(index0)
	if err != nil {
		return nil, err
	}
	task.MarkUndone()
	return task, nil
}

// All yields every task with its 1-based position, in insertion order
func (l *TaskList) All() iter.Seq2[int, *Task] {
	return func(yield func(int, *Task) bool) {
		for i, task := range l.tasks {
			if !yield(i+1, task) {
				return
			}
		}
	}
}

// ByDate yields deadlines due on date and events starting on date, in
// insertion order, numbered from 1 within the result
func (l *TaskList) ByDate(date valueobject.Date) iter.Seq2[int, *Task] {
	return func(yield func(int, *Task) bool) {
		n := 0
		for _, task := range l.tasks {
			if !matchesDate(task, date) {
				continue
			}
			n++
			if !yield(n, task) {
				return
			}
		}
	}
}

func matchesDate(task *Task, date valueobject.Date) bool {
	switch task.Kind() {
	case valueobject.KindDeadline:
		due, _ := task.DueDate()
		return due.Equal(date)
	case valueobject.KindEvent:
		start, _ := task.StartDate()
		return start.Equal(date)
	default:
		return false
	}
}
