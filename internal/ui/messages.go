// Package ui holds the text every front end shows: greeting, farewell,
// per-command replies and error lines.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"mtodo/internal/application/dto"
	"mtodo/internal/domain/entity"
)

const logo = "" +
	" _ __ ___ | |_ ___   __| | ___\n" +
	"| '_ ` _ \\| __/ _ \\ / _` |/ _ \\\n" +
	"| | | | | | || (_) | (_| | (_) |\n" +
	"|_| |_| |_|\\__\\___/ \\__,_|\\___/\n"

// ErrorPrefix starts every error line
const ErrorPrefix = "☹ OOPS!!! "

const (
	farewellText   = "Why do you choose to leave me!"
	emptyListText  = "Nothing here yet..."
	listHeaderText = "Here are the tasks in your list:"
	queryHeader    = "Here is the result:"
	emptyQueryText = "Nothing special will happen on this day"
)

// Greeting returns the banner printed when a session starts
func Greeting() string {
	return "Hello from\n" + logo + "How can I help you?"
}

// Farewell returns the line printed when a session ends
func Farewell() string {
	return farewellText
}

// Reply renders the message for an executed command
func Reply(result *dto.CommandResult) string {
	switch result.Outcome {
	case dto.OutcomeAdded:
		return fmt.Sprintf("Got it. I've added this task:\n    %s\nTask(s) remaining in the list: %d",
			result.Task, result.Size)
	case dto.OutcomeRemoved:
		return fmt.Sprintf("Noted. I've removed this task:\n    %s\nTask(s) remaining in the list: %d",
			result.Task, result.Size)
	case dto.OutcomeDone:
		return "Nice! I've marked this task as done:\n    " + result.Task.String()
	case dto.OutcomeUndone:
		return "Alright. I've undone this task:\n    " + result.Task.String()
	case dto.OutcomeListed:
		if len(result.Tasks) == 0 {
			return emptyListText
		}
		return listing(listHeaderText, result.Tasks)
	case dto.OutcomeQueried:
		if len(result.Tasks) == 0 {
			return emptyQueryText
		}
		return listing(queryHeader, result.Tasks)
	case dto.OutcomeHint:
		return result.Hint
	case dto.OutcomeExit:
		return farewellText
	default:
		return ""
	}
}

// Listing renders tasks as numbered lines without a header
func Listing(tasks []dto.TaskDTO) string {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		lines = append(lines, fmt.Sprintf("%d. %s", task.Position, task.Display))
	}
	return strings.Join(lines, "\n")
}

func listing(header string, tasks []dto.TaskDTO) string {
	return header + "\n" + Listing(tasks)
}

// ErrorText renders err as a single user-facing line
func ErrorText(err error) string {
	var missing *entity.MissingArgumentError

	switch {
	case errors.As(err, &missing):
		return ErrorPrefix + fmt.Sprintf("The %s part of the command is missing!", missing.Marker)
	case errors.Is(err, entity.ErrInvalidCommand):
		return ErrorPrefix + "I'm sorry, but I don't know what that means :-("
	case errors.Is(err, entity.ErrInvalidIndexFormat):
		return ErrorPrefix + "The task number must be a positive integer!"
	case errors.Is(err, entity.ErrIndexZero):
		return ErrorPrefix + "Task numbers start from 1!"
	case errors.Is(err, entity.ErrIndexOutOfRange):
		return ErrorPrefix + "There is no such task in the list!"
	case errors.Is(err, entity.ErrAlreadyDone):
		return ErrorPrefix + "The task is already done!"
	default:
		return ErrorPrefix + err.Error()
	}
}
