// Package command turns one line of user input into a typed Command.
package command

import "mtodo/internal/domain/valueobject"

// DateFormatHint is the reason carried by Invalid when a deadline or
// event date cannot be parsed
const DateFormatHint = "Please use the YYYY-MM-DD format for the time!"

// Command is a parsed, validated user intent
type Command interface {
	isCommand()
}

// AddTodo adds a task without a date
type AddTodo struct {
	Description string
}

// AddDeadline adds a task due on a date
type AddDeadline struct {
	Description string
	Due         valueobject.Date
}

// AddEvent adds a task starting on a date
type AddEvent struct {
	Description string
	Start       valueobject.Date
}

// MarkDone marks the task at Index (0-based) as done
type MarkDone struct {
	Index int
}

// MarkUndone clears the done flag of the task at Index (0-based)
type MarkUndone struct {
	Index int
}

// Delete removes the task at Index (0-based)
type Delete struct {
	Index int
}

// ListAll lists every task
type ListAll struct{}

// ListByDate lists deadlines and events falling on Date
type ListByDate struct {
	Date valueobject.Date
}

// Exit ends the session
type Exit struct{}

// Invalid is a soft failure: the input is answered with Reason and
// nothing changes
type Invalid struct {
	Reason string
}

func (AddTodo) isCommand()     {}
func (AddDeadline) isCommand() {}
func (AddEvent) isCommand()    {}
func (MarkDone) isCommand()    {}
func (MarkUndone) isCommand()  {}
func (Delete) isCommand()      {}
func (ListAll) isCommand()     {}
func (ListByDate) isCommand()  {}
func (Exit) isCommand()        {}
func (Invalid) isCommand()     {}
