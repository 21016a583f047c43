// Package feed downloads and decodes the sightings feed.
//
// A feed is a JSON array of sighting objects served over HTTP(S), or a
// sightings table reachable through a postgres:// URL. Decoding validates
// every entry; entries that do not look like a sighting are skipped and
// counted rather than surfacing as empty rows.
package feed

import (
	"time"

	"github.com/araddon/dateparse"
)

// Sighting is one recorded observation of a person's device.
type Sighting struct {
	FullName     string `json:"fullName" yaml:"fullName"`
	HostName     string `json:"hostName" yaml:"hostName"`
	DeviceType   string `json:"deviceType" yaml:"deviceType"`
	OS           string `json:"os" yaml:"os"`
	LastSeen     string `json:"lastSeen" yaml:"lastSeen"`
	Location     string `json:"location" yaml:"location"`
	LocationFine string `json:"locationFine" yaml:"locationFine"`
}

// SeenAt parses LastSeen. Values without a zone are read as UTC.
// ok is false when LastSeen is empty or not a recognisable date.
func (s Sighting) SeenAt() (t time.Time, ok bool) {
	if s.LastSeen == "" {
		return time.Time{}, false
	}
	t, err := dateparse.ParseIn(s.LastSeen, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Result is a decoded feed.
type Result struct {
	Sightings []Sighting
	// Skipped counts entries rejected as malformed.
	Skipped int
}
