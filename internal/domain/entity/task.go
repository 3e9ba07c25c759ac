package entity

import (
	"strings"

	"github.com/google/uuid"
	"mtodo/internal/domain/valueobject"
)

// Task is a single tracked item. The kind tag decides which of the
// variant fields is meaningful: Deadline uses date as the due date,
// Event uses it as the start date, ToDo carries no date.
type Task struct {
	id          string
	kind        valueobject.Kind
	description string
	done        bool
	date        valueobject.Date
}

// NewToDo creates a task without a date
func NewToDo(description string) (*Task, error) {
	return newTask(uuid.NewString(), valueobject.KindToDo, description, valueobject.Date{})
}

// NewDeadline creates a task that is due on the given date
func NewDeadline(description string, due valueobject.Date) (*Task, error) {
	return newTask(uuid.NewString(), valueobject.KindDeadline, description, due)
}

// NewEvent creates a task that starts on the given date
func NewEvent(description string, start valueobject.Date) (*Task, error) {
	return newTask(uuid.NewString(), valueobject.KindEvent, description, start)
}

// RestoreTask rebuilds a task from persisted state
func RestoreTask(id string, kind valueobject.Kind, description string, done bool, date valueobject.Date) (*Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidTaskID
	}
	task, err := newTask(id, kind, description, date)
	if err != nil {
		return nil, err
	}
	task.done = done
	return task, nil
}

func newTask(id string, kind valueobject.Kind, description string, date valueobject.Date) (*Task, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyTaskDescription
	}

	switch kind {
	case valueobject.KindToDo:
		date = valueobject.Date{}
	default:
		if date.IsZero() {
			return nil, ErrInvalidDate
		}
	}

	return &Task{
		id:          id,
		kind:        kind,
		description: description,
		date:        date,
	}, nil
}

// ID returns the stable storage identifier
func (t *Task) ID() string {
	return t.id
}

// Kind returns the task shape
func (t *Task) Kind() valueobject.Kind {
	return t.kind
}

// Description returns the task label
func (t *Task) Description() string {
	return t.description
}

// IsDone reports whether the task is marked done
func (t *Task) IsDone() bool {
	return t.done
}

// DueDate returns the due date of a Deadline
func (t *Task) DueDate() (valueobject.Date, bool) {
	if t.kind != valueobject.KindDeadline {
		return valueobject.Date{}, false
	}
	return t.date, true
}

// StartDate returns the start date of an Event
func (t *Task) StartDate() (valueobject.Date, bool) {
	if t.kind != valueobject.KindEvent {
		return valueobject.Date{}, false
	}
	return t.date, true
}

// Date returns whichever date the variant carries
func (t *Task) Date() (valueobject.Date, bool) {
	switch t.kind {
	case valueobject.KindDeadline:
		return t.DueDate()
	case valueobject.KindEvent:
		return t.StartDate()
	}
	return valueobject.Date{}, false
}

// MarkDone sets the done flag
func (t *Task) MarkDone() {
	t.done = true
}

// MarkUndone clears the done flag
func (t *Task) MarkUndone() {
	t.done = false
}

// StatusMarker returns "X" for done tasks and a space otherwise
func (t *Task) StatusMarker() string {
	if t.done {
		return "X"
	}
	return " "
}

// String renders the task as shown in listings, e.g. "[D][ ] submit (by: 2024-01-15)"
func (t *Task) String() string {
	var b strings.Builder
	b.WriteString("[" + t.kind.Marker() + "]")
	b.WriteString("[" + t.StatusMarker() + "] ")
	b.WriteString(t.description)

	switch t.kind {
	case valueobject.KindDeadline:
		b.WriteString(" (by: " + t.date.String() + ")")
	case valueobject.KindEvent:
		b.WriteString(" (at: " + t.date.String() + ")")
	}

	return b.String()
}
