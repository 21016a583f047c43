package tui

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Spinner frames for the loading animation
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ProgressMsg updates the stage shown next to the spinner.
type ProgressMsg struct {
	Stage string
	Done  bool
}

// SpinnerTickMsg triggers spinner animation frame advance
type SpinnerTickMsg time.Time

// ProgressModel draws a spinner and the current stage on one line.
type ProgressModel struct {
	stage        string
	done         bool
	spinnerFrame int
}

func NewProgressModel(stage string) ProgressModel {
	return ProgressModel{stage: stage}
}

// SpinnerTick returns a command that sends SpinnerTickMsg after a delay
func SpinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return SpinnerTickMsg(t)
	})
}

func (m ProgressModel) Init() tea.Cmd {
	return SpinnerTick()
}

func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ProgressMsg:
		if msg.Stage != "" {
			m.stage = msg.Stage
		}
		if msg.Done {
			m.done = true
			return m, tea.Quit
		}
	case SpinnerTickMsg:
		m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
		if !m.done {
			return m, SpinnerTick()
		}
	}
	return m, nil
}

// View renders nothing once done so the spinner line is cleared.
func (m ProgressModel) View() string {
	if m.done {
		return ""
	}

	spinnerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")) // Gold
	spinner := spinnerStyle.Render(spinnerFrames[m.spinnerFrame])
	if m.stage == "" {
		return fmt.Sprintf("%s Loading...", spinner)
	}
	return fmt.Sprintf("%s %s...", spinner, m.stage)
}

// RunWithSpinner runs fn while a spinner labelled stage is drawn on out.
// When out is not a terminal fn runs without any drawing. The spinner never
// reads input or handles signals; cancel fn through its context instead.
func RunWithSpinner(out io.Writer, stage string, fn func() error) error {
	f, ok := out.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return fn()
	}

	prog := tea.NewProgram(NewProgressModel(stage),
		tea.WithOutput(out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
	)

	errc := make(chan error, 1)
	go func() {
		errc <- fn()
		prog.Send(ProgressMsg{Done: true})
	}()

	// A spinner that fails to draw does not fail the work.
	_, _ = prog.Run()

	return <-errc
}
