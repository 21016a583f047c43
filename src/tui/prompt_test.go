package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestLinePrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewLinePrompter(strings.NewReader("first answer\r\nhttps://x.example.com/f.json\n"), &out)

	got, err := p.Ask("Question one? ")
	if err != nil {
		t.Fatalf("Ask() unexpected error: %v", err)
	}
	if got != "first answer" {
		t.Errorf("Ask() = %q, want %q", got, "first answer")
	}

	got, err = p.Ask("Question two? ")
	if err != nil {
		t.Fatalf("Ask() unexpected error: %v", err)
	}
	if got != "https://x.example.com/f.json" {
		t.Errorf("Ask() = %q, want the URL", got)
	}

	if out.String() != "Question one? Question two? " {
		t.Errorf("questions written = %q", out.String())
	}
}

func TestLinePrompter_LastLineWithoutNewline(t *testing.T) {
	p := NewLinePrompter(strings.NewReader("n"), &bytes.Buffer{})

	got, err := p.Ask("? ")
	if err != nil {
		t.Fatalf("Ask() unexpected error: %v", err)
	}
	if got != "n" {
		t.Errorf("Ask() = %q, want %q", got, "n")
	}
}

func TestLinePrompter_EOF(t *testing.T) {
	p := NewLinePrompter(strings.NewReader(""), &bytes.Buffer{})

	if _, err := p.Ask("? "); !errors.Is(err, ErrAborted) {
		t.Errorf("Ask() error = %v, want ErrAborted", err)
	}
}

func TestNewPrompter_NonTerminal(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})

	if _, ok := p.(*LinePrompter); !ok {
		t.Errorf("NewPrompter() = %T, want *LinePrompter for non-terminal input", p)
	}
}

func typeInto(m urlPromptModel, s string) urlPromptModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return updated.(urlPromptModel)
}

func TestURLPromptModel_Enter(t *testing.T) {
	m := newURLPromptModel("Gimme ")
	m = typeInto(m, "https://x.example.com/f.json")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(urlPromptModel)

	if !m.done {
		t.Error("expected model to be done after Enter")
	}
	if m.value != "https://x.example.com/f.json" {
		t.Errorf("value = %q, want the typed URL", m.value)
	}
	if cmd == nil {
		t.Error("expected a quit command after Enter")
	}
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "Gimme") || !strings.Contains(view, "https://x.example.com/f.json") {
		t.Errorf("final view should keep question and answer, got %q", view)
	}
}

func TestURLPromptModel_Abort(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := typeInto(newURLPromptModel("? "), "half typed")

		updated, _ := m.Update(tea.KeyMsg{Type: key})
		m = updated.(urlPromptModel)

		if !m.aborted {
			t.Errorf("key %v: expected model to be aborted", key)
		}
		if m.value != "" {
			t.Errorf("key %v: value = %q, want empty", key, m.value)
		}
	}
}

func TestURLPromptModel_ViewShowsQuestion(t *testing.T) {
	m := newURLPromptModel("Where is the feed? ")

	if view := ansi.Strip(m.View()); !strings.Contains(view, "Where is the feed?") {
		t.Errorf("view should contain the question, got %q", view)
	}
}
