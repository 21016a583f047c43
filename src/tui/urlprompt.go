package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// URLPrompt asks for a URL with a single-line bubbletea text input.
type URLPrompt struct {
	in  io.Reader
	out io.Writer
}

// NewURLPrompt creates a prompt reading keys from in and drawing to out.
func NewURLPrompt(in io.Reader, out io.Writer) *URLPrompt {
	return &URLPrompt{in: in, out: out}
}

// Ask runs the prompt until Enter (answer), or Ctrl+C/Esc (ErrAborted).
func (p *URLPrompt) Ask(question string) (string, error) {
	prog := tea.NewProgram(newURLPromptModel(question), tea.WithInput(p.in), tea.WithOutput(p.out))

	final, err := prog.Run()
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	m, ok := final.(urlPromptModel)
	if !ok || m.aborted {
		return "", ErrAborted
	}

	return m.value, nil
}

type urlPromptModel struct {
	question string
	input    textinput.Model
	value    string
	done     bool
	aborted  bool
}

func newURLPromptModel(question string) urlPromptModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "https://example.com/sightings.json"
	ti.CharLimit = 2048
	ti.Focus()

	return urlPromptModel{
		question: question,
		input:    ti,
	}
}

// Init initializes the model. Required by tea.Model interface.
func (m urlPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m urlPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyEnter:
			m.value = m.input.Value()
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m urlPromptModel) View() string {
	questionStyle := lipgloss.NewStyle().Bold(true)
	if m.done || m.aborted {
		// Leave the answered question in the scrollback.
		return questionStyle.Render(m.question) + m.value + "\n"
	}
	return questionStyle.Render(m.question) + m.input.View() + "\n"
}
