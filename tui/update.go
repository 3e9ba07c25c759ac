package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"mtodo/internal/application/command"
	"mtodo/internal/application/dto"
	"mtodo/internal/ui"
)

// lines taken by the separator, input and help
const chromeHeight = 3

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Submit):
			line := m.input.Value()
			m.input.Reset()
			if m.submit(line) {
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, keys.ScrollUp):
			m.viewport.HalfViewUp()
			return m, nil

		case key.Matches(msg, keys.ScrollDown):
			m.viewport.HalfViewDown()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// resize fits the transcript to the window
func (m *Model) resize() {
	height := m.height - chromeHeight
	if height < 1 {
		height = 1
	}
	width := m.width - m.panelWidth()
	if width < 1 {
		width = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width, height)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = height
	}
	m.input.Width = m.width - len(m.prompt) - 1
	m.syncViewport()
}

// submit runs one line and reports whether the session is over
func (m *Model) submit(line string) bool {
	m.transcript = append(m.transcript, entry{kind: entryInput, text: m.prompt + line})

	if line == command.KeywordBye {
		m.transcript = append(m.transcript, entry{kind: entryReply, text: ui.Farewell()})
		m.quitting = true
		m.syncViewport()
		return true
	}

	result, err := m.executor.Execute(m.ctx, line)
	switch {
	case err != nil:
		m.transcript = append(m.transcript, entry{kind: entryError, text: ui.ErrorText(err)})
	case result.Outcome == dto.OutcomeHint:
		m.transcript = append(m.transcript, entry{kind: entryHint, text: ui.Reply(result)})
	default:
		m.transcript = append(m.transcript, entry{kind: entryReply, text: ui.Reply(result)})
	}

	m.refreshTasks()
	m.syncViewport()
	return result.IsExit()
}

// syncViewport re-renders the transcript and scrolls to the end
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}
