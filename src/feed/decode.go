package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// stringFields lists the keys a sighting may carry. Each must be a JSON
// string (or null) when present.
var stringFields = []string{
	"fullName",
	"hostName",
	"deviceType",
	"os",
	"lastSeen",
	"location",
	"locationFine",
}

// Decode parses a feed payload. The payload itself must be a JSON array,
// otherwise ErrUnusable is returned. Entries that are not objects, carry a
// non-string value in a known field, or have neither fullName nor hostName
// are skipped and counted in Result.Skipped.
func Decode(data []byte) (*Result, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: payload is not a JSON array", ErrUnusable)
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: failed to decode payload: %v", ErrUnusable, err)
	}

	result := &Result{Sightings: make([]Sighting, 0, len(entries))}
	for _, raw := range entries {
		s, ok := decodeEntry(raw)
		if !ok {
			result.Skipped++
			continue
		}
		result.Sightings = append(result.Sightings, s)
	}

	return result, nil
}

func decodeEntry(raw json.RawMessage) (Sighting, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Sighting{}, false
	}

	for _, key := range stringFields {
		value, present := fields[key]
		if !present || bytes.Equal(value, []byte("null")) {
			continue
		}
		var str string
		if err := json.Unmarshal(value, &str); err != nil {
			return Sighting{}, false
		}
	}

	var s Sighting
	if err := json.Unmarshal(raw, &s); err != nil {
		return Sighting{}, false
	}
	if s.FullName == "" && s.HostName == "" {
		return Sighting{}, false
	}

	return s, true
}
