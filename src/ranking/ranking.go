// Package ranking selects the sightings matching a search phrase and orders
// them by recency. Both the CLI and the MCP server consume this package so a
// phrase finds the same rows in either place.
package ranking

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"snet-locator/src/feed"
)

// separatorClass replaces the first space of a phrase so "john smith" also
// finds "john.smith" and "john-smith".
const separatorClass = `[\s.\-]`

// Row is one display line: who, when, what and where.
type Row struct {
	Who string
	// Seen is the parsed LastSeen; zero when it could not be parsed.
	Seen     time.Time
	LastSeen string
	What     string
	Where    string
}

// Pattern builds the case-insensitive matcher for phrase.
//
// Only the first space becomes a flexible separator; any further spaces stay
// literal. A '.' in the phrase matches any character; every other rune is
// matched literally. An empty phrase matches everything.
func Pattern(phrase string) *regexp.Regexp {
	head, tail, found := strings.Cut(strings.ToLower(phrase), " ")

	var b strings.Builder
	b.WriteString("(?i)")
	b.WriteString(quote(head))
	if found {
		b.WriteString(separatorClass)
		b.WriteString(quote(tail))
	}

	return regexp.MustCompile(b.String())
}

// quote escapes s for use in a pattern, leaving '.' as a wildcard.
func quote(s string) string {
	parts := strings.Split(s, ".")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return strings.Join(parts, ".")
}

// Match returns the records whose fullName matches phrase. When none do, it
// returns the records whose hostName matches instead. The two passes are
// never merged. Input order is preserved.
func Match(records []feed.Sighting, phrase string) []feed.Sighting {
	re := Pattern(phrase)

	matched := filter(records, func(s feed.Sighting) string { return s.FullName }, re)
	if len(matched) > 0 {
		return matched
	}

	return filter(records, func(s feed.Sighting) string { return s.HostName }, re)
}

func filter(records []feed.Sighting, field func(feed.Sighting) string, re *regexp.Regexp) []feed.Sighting {
	var matched []feed.Sighting
	for _, s := range records {
		if re.MatchString(field(s)) {
			matched = append(matched, s)
		}
	}
	return matched
}

// Shape converts a sighting into a display row.
func Shape(s feed.Sighting) Row {
	seen, _ := s.SeenAt()
	return Row{
		Who:      s.FullName,
		Seen:     seen,
		LastSeen: s.LastSeen,
		What:     s.HostName + " (" + s.DeviceType + " - " + s.OS + ")",
		Where:    s.Location + " - " + s.LocationFine,
	}
}

// Rank sorts rows most recent first. Equal timestamps keep their input
// order. Rows without a parseable timestamp tie with each other and go last.
func Rank(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].Seen, rows[j].Seen
		if a.IsZero() || b.IsZero() {
			return !a.IsZero() && b.IsZero()
		}
		return a.After(b)
	})
}

// Find runs the whole pipeline: match, shape, rank.
// It never returns nil for an empty result.
func Find(records []feed.Sighting, phrase string) []Row {
	matched := Match(records, phrase)

	rows := make([]Row, 0, len(matched))
	for _, s := range matched {
		rows = append(rows, Shape(s))
	}
	Rank(rows)

	return rows
}
