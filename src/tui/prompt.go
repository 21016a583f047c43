package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ErrAborted is returned when the user cancels a prompt or input ends
// before an answer was given.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks a question and returns the answer.
type Prompter interface {
	Ask(question string) (string, error)
}

// NewPrompter returns an interactive URLPrompt when in is a terminal and a
// LinePrompter otherwise.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return NewURLPrompt(in, out)
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads one line per question. Used for piped stdin and tests.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter creates a LinePrompter reading from r and writing
// questions to w.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

// Ask writes question and reads the next line without its line ending.
func (p *LinePrompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.w, question); err != nil {
		return "", err
	}

	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			fmt.Fprintln(p.w)
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.w)
			return "", ErrAborted
		}
		return "", fmt.Errorf("failed to read answer: %w", err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}
