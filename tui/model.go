package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"mtodo/internal/application/command"
	"mtodo/internal/application/dto"
	"mtodo/internal/ui"
)

// Executor runs interpreter commands for the TUI
type Executor interface {
	Execute(ctx context.Context, line string) (*dto.CommandResult, error)
	Apply(ctx context.Context, cmd command.Command) (*dto.CommandResult, error)
}

type entryKind int

const (
	entryBanner entryKind = iota
	entryInput
	entryReply
	entryHint
	entryError
)

// entry is one block of the transcript
type entry struct {
	kind entryKind
	text string
}

// Model represents the TUI state
type Model struct {
	ctx        context.Context
	executor   Executor
	prompt     string
	input      textinput.Model
	viewport   viewport.Model
	transcript []entry
	tasks      []dto.TaskDTO
	width      int
	height     int
	ready      bool
	quitting   bool
}

// NewModel creates a new TUI model
func NewModel(ctx context.Context, executor Executor, prompt string) Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "todo read book"
	input.CharLimit = 1024
	input.Focus()

	m := Model{
		ctx:        ctx,
		executor:   executor,
		prompt:     prompt,
		input:      input,
		transcript: []entry{{kind: entryBanner, text: ui.Greeting()}},
	}
	m.refreshTasks()
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// refreshTasks reloads the side panel from the interpreter's list
func (m *Model) refreshTasks() {
	result, err := m.executor.Apply(m.ctx, command.ListAll{})
	if err != nil {
		return
	}
	m.tasks = result.Tasks
}

// Helper to get the panel width; zero hides the panel
func (m Model) panelWidth() int {
	if m.width < 60 {
		return 0
	}
	return m.width / 3
}
