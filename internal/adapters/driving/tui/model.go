// Package tui implements the interactive ask session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/oakline-labs/deskmate/internal/core/domain"
	"github.com/oakline-labs/deskmate/internal/core/ports/driving"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	answerStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the Bubble Tea model for the interactive ask session.
type Model struct {
	answers  driving.AnswerService
	input    textinput.Model
	viewport viewport.Model
	answer   domain.Answer
	asked    bool
	status   string
	ready    bool
}

// New creates the ask session model.
func New(answers driving.AnswerService) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about a product and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	return Model{
		answers:  answers,
		input:    ti,
		viewport: viewport.New(0, 0),
		status:   "Ready. Type to search, esc to quit.",
	}
}

// Init starts the text input cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ah := answerStyle.GetFrameSize()
		_, ih := inputStyle.GetFrameSize()
		reserved := 2 + ih + 1 // header, input frame, status
		vh := msg.Height - reserved - ah
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = maxInt(20, msg.Width-2)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderAnswer())
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			answer, err := m.answers.Ask(context.Background(), q)
			if err != nil {
				m.status = "Error: " + err.Error()
			} else {
				m.answer = answer
				m.asked = true
				m.status = fmt.Sprintf("Answer for %q", q)
			}
			m.viewport.SetContent(m.renderAnswer())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the session layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("Deskmate")
	answer := answerStyle.Render(m.viewport.View())
	input := inputStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + answer + "\n" + input + "\n" + status
}

func (m Model) renderAnswer() string {
	if !m.asked {
		return "No answer yet."
	}
	if !m.answer.Found {
		return m.answer.Text
	}
	meta := scoreStyle.Render(fmt.Sprintf("%s  score=%.3f", m.answer.DocumentID, m.answer.Score))
	return m.answer.Text + "\n\n" + meta
}

// Run opens the interactive session and blocks until it exits.
func Run(answers driving.AnswerService) error {
	p := tea.NewProgram(New(answers), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
