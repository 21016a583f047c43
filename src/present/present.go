// Package present renders lookup results and failures for the terminal.
package present

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"snet-locator/src/feed"
	"snet-locator/src/ranking"
	"snet-locator/src/sanitize"
	"snet-locator/src/tui"
)

// Format selects how rows are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Headers are the table column titles.
var Headers = []string{"Who", "When", "What", "Where"}

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// Entry is a row as written in json/yaml output.
type Entry struct {
	Who      string `json:"who" yaml:"who"`
	LastSeen string `json:"lastSeen" yaml:"lastSeen"`
	When     string `json:"when" yaml:"when"`
	What     string `json:"what" yaml:"what"`
	Where    string `json:"where" yaml:"where"`
}

// Humanize renders t relative to now, e.g. "3 hours ago". The zero time,
// used for unparseable timestamps, renders as "unknown".
func Humanize(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// Entries converts ranked rows into display entries. Rows must already be
// ranked; only the display copy of the timestamp is humanized.
func Entries(rows []ranking.Row, now time.Time) []Entry {
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{
			Who:      sanitize.Clean(r.Who),
			LastSeen: sanitize.Clean(r.LastSeen),
			When:     Humanize(r.Seen, now),
			What:     sanitize.Clean(r.What),
			Where:    sanitize.Clean(r.Where),
		})
	}
	return entries
}

// Presenter writes results to Out and failures to Err.
type Presenter struct {
	Out    io.Writer
	Err    io.Writer
	Format Format
	Styles *tui.StyleConfig
	// Width is the terminal width used to fit the table; 0 disables fitting.
	Width int
	Now   func() time.Time
}

// New creates a presenter with the default styles.
func New(out, errOut io.Writer, format Format) *Presenter {
	return &Presenter{
		Out:    out,
		Err:    errOut,
		Format: format,
		Styles: tui.DefaultStyles(),
		Now:    time.Now,
	}
}

// NotFoundMessage is shown when a phrase matched nothing.
func NotFoundMessage(phrase string) string {
	return fmt.Sprintf("Couldn't find anyone matching %q", phrase)
}

// Sightings writes the ranked rows for phrase. An empty result prints the
// not-found notice instead of a table.
func (p *Presenter) Sightings(phrase string, rows []ranking.Row) error {
	entries := Entries(rows, p.Now())

	switch p.Format {
	case FormatJSON:
		if len(entries) == 0 {
			p.Notice(NotFoundMessage(phrase))
		}
		enc := json.NewEncoder(p.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case FormatYAML:
		if len(entries) == 0 {
			p.Notice(NotFoundMessage(phrase))
		}
		enc := yaml.NewEncoder(p.Out)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(p.Out, p.Styles.WarnStyle().Render(NotFoundMessage(phrase)))
		return err
	}

	cells := make([][]string, 0, len(entries))
	for _, e := range entries {
		cells = append(cells, []string{e.Who, e.When, e.What, e.Where})
	}

	_, err := fmt.Fprintln(p.Out, tui.RenderTable(Headers, cells, p.Width, p.Styles))
	return err
}

// Failure writes a load failure. UserErrors show their message and hint,
// with the feed URL in inverse and the settings path underlined; anything
// else is printed as is.
func (p *Presenter) Failure(err error) {
	style := p.Styles.ErrorStyle()

	var userErr *feed.UserError
	if errors.As(err, &userErr) {
		fmt.Fprintln(p.Err, highlight(userErr.Message, userErr.URL, style, p.Styles.URLStyle().Inherit(style)))
		if userErr.Hint != "" {
			fmt.Fprintln(p.Err, highlight(userErr.Hint, userErr.ConfigPath, style, p.Styles.PathStyle().Inherit(style)))
		}
		return
	}

	fmt.Fprintln(p.Err, style.Render(err.Error()))
}

// highlight renders text line by line in base, with the first occurrence of
// needle on each line in accent. Lines are styled separately so lipgloss
// does not pad them to a common width.
func highlight(text, needle string, base, accent lipgloss.Style) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		before, after, found := strings.Cut(line, needle)
		if needle == "" || !found {
			lines[i] = renderNonEmpty(base, line)
			continue
		}
		lines[i] = renderNonEmpty(base, before) + accent.Render(needle) + renderNonEmpty(base, after)
	}
	return strings.Join(lines, "\n")
}

func renderNonEmpty(style lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return style.Render(s)
}

// Notice writes a secondary informational line to Err.
func (p *Presenter) Notice(msg string) {
	fmt.Fprintln(p.Err, p.Styles.MutedStyle().Render(msg))
}

// Message writes a plain line to Out.
func (p *Presenter) Message(msg string) {
	fmt.Fprintln(p.Out, msg)
}

// Settings writes the settings file location and the feed URL it holds.
func (p *Presenter) Settings(path, url string) {
	fmt.Fprintf(p.Out, "Settings file: %s\n", p.Styles.PathStyle().Render(path))
	if url == "" {
		fmt.Fprintln(p.Out, "Feed URL:      "+p.Styles.WarnStyle().Render("not set"))
		return
	}
	fmt.Fprintf(p.Out, "Feed URL:      %s\n", p.Styles.URLStyle().Render(url))
}
