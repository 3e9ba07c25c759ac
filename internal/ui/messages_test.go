package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"mtodo/internal/application/dto"
	"mtodo/internal/domain/entity"
)

func TestReply(t *testing.T) {
	task := &dto.TaskDTO{Position: 1, Display: "[T][ ] read book"}
	done := &dto.TaskDTO{Position: 1, Display: "[T][X] read book"}

	tests := []struct {
		name   string
		result *dto.CommandResult
		want   string
	}{
		{
			name:   "added",
			result: &dto.CommandResult{Outcome: dto.OutcomeAdded, Task: task, Size: 1},
			want:   "Got it. I've added this task:\n    [T][ ] read book\nTask(s) remaining in the list: 1",
		},
		{
			name:   "removed",
			result: &dto.CommandResult{Outcome: dto.OutcomeRemoved, Task: task, Size: 0},
			want:   "Noted. I've removed this task:\n    [T][ ] read book\nTask(s) remaining in the list: 0",
		},
		{
			name:   "done",
			result: &dto.CommandResult{Outcome: dto.OutcomeDone, Task: done},
			want:   "Nice! I've marked this task as done:\n    [T][X] read book",
		},
		{
			name:   "undone",
			result: &dto.CommandResult{Outcome: dto.OutcomeUndone, Task: task},
			want:   "Alright. I've undone this task:\n    [T][ ] read book",
		},
		{
			name:   "empty list",
			result: &dto.CommandResult{Outcome: dto.OutcomeListed},
			want:   "Nothing here yet...",
		},
		{
			name: "list",
			result: &dto.CommandResult{Outcome: dto.OutcomeListed, Tasks: []dto.TaskDTO{
				*task,
				{Position: 2, Display: "[D][ ] submit (by: 2024-01-15)"},
			}},
			want: "Here are the tasks in your list:\n1. [T][ ] read book\n2. [D][ ] submit (by: 2024-01-15)",
		},
		{
			name:   "empty query",
			result: &dto.CommandResult{Outcome: dto.OutcomeQueried, Date: "2024-01-15"},
			want:   "Nothing special will happen on this day",
		},
		{
			name: "query",
			result: &dto.CommandResult{Outcome: dto.OutcomeQueried, Tasks: []dto.TaskDTO{
				{Position: 1, Display: "[E][ ] party (at: 2024-01-15)"},
			}},
			want: "Here is the result:\n1. [E][ ] party (at: 2024-01-15)",
		},
		{
			name:   "hint",
			result: &dto.CommandResult{Outcome: dto.OutcomeHint, Hint: "Please use the YYYY-MM-DD format for the time!"},
			want:   "Please use the YYYY-MM-DD format for the time!",
		},
		{
			name:   "exit",
			result: &dto.CommandResult{Outcome: dto.OutcomeExit},
			want:   "Why do you choose to leave me!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reply(tt.result); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"invalid command", entity.ErrInvalidCommand, "I'm sorry, but I don't know what that means :-("},
		{"missing by", &entity.MissingArgumentError{Marker: "/by"}, "The /by part of the command is missing!"},
		{"index format", entity.ErrInvalidIndexFormat, "The task number must be a positive integer!"},
		{"index zero", entity.ErrIndexZero, "Task numbers start from 1!"},
		{"out of range", fmt.Errorf("wrapped: %w", entity.ErrIndexOutOfRange), "There is no such task in the list!"},
		{"already done", entity.ErrAlreadyDone, "The task is already done!"},
		{"other", errors.New("disk full"), "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ErrorText(tt.err)
			if got != ErrorPrefix+tt.want {
				t.Errorf("expected %q, got %q", ErrorPrefix+tt.want, got)
			}
			if strings.Contains(got, "\n") {
				t.Errorf("expected a single line, got %q", got)
			}
		})
	}
}

func TestGreetingAndFarewell(t *testing.T) {
	if !strings.HasSuffix(Greeting(), "How can I help you?") {
		t.Errorf("unexpected greeting %q", Greeting())
	}
	if Farewell() != "Why do you choose to leave me!" {
		t.Errorf("unexpected farewell %q", Farewell())
	}
}

func TestPlainThemeLeavesText(t *testing.T) {
	theme := PlainTheme()
	if got := theme.Render(theme.Error, "x\ny"); got != "x\ny" {
		t.Errorf("expected text untouched, got %q", got)
	}
}
