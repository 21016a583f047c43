package feed

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecode(t *testing.T) {
	payload := `[
		{
			"fullName": "John Smith",
			"hostName": "jsmith-mbp",
			"deviceType": "laptop",
			"os": "macOS",
			"lastSeen": "2023-06-01T10:00:00Z",
			"location": "Stockholm",
			"locationFine": "Floor 3"
		},
		{"hostName": "printer-2", "lastSeen": null}
	]`

	result, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}

	want := []Sighting{
		{
			FullName:     "John Smith",
			HostName:     "jsmith-mbp",
			DeviceType:   "laptop",
			OS:           "macOS",
			LastSeen:     "2023-06-01T10:00:00Z",
			Location:     "Stockholm",
			LocationFine: "Floor 3",
		},
		{HostName: "printer-2"},
	}
	if diff := cmp.Diff(want, result.Sightings); diff != "" {
		t.Errorf("Decode() sightings mismatch (-want +got):\n%s", diff)
	}
	if result.Skipped != 0 {
		t.Errorf("Decode() skipped = %d, want 0", result.Skipped)
	}
}

func TestDecode_EmptyArray(t *testing.T) {
	result, err := Decode([]byte(" [] \n"))
	if err != nil {
		t.Fatalf("Decode() unexpected error: %v", err)
	}
	if len(result.Sightings) != 0 {
		t.Errorf("Decode() returned %d sightings, want 0", len(result.Sightings))
	}
}

func TestDecode_MalformedEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry string
	}{
		{name: "number", entry: `42`},
		{name: "null", entry: `null`},
		{name: "string", entry: `"John Smith"`},
		{name: "nested array", entry: `["John Smith"]`},
		{name: "numeric fullName", entry: `{"fullName": 7, "hostName": "h"}`},
		{name: "object lastSeen", entry: `{"fullName": "A", "lastSeen": {"at": 1}}`},
		{name: "no identity", entry: `{"deviceType": "phone", "os": "iOS"}`},
		{name: "empty identity", entry: `{"fullName": "", "hostName": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := `[{"fullName": "Kept"}, ` + tt.entry + `]`

			result, err := Decode([]byte(payload))
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if result.Skipped != 1 {
				t.Errorf("Decode() skipped = %d, want 1", result.Skipped)
			}
			if len(result.Sightings) != 1 || result.Sightings[0].FullName != "Kept" {
				t.Errorf("Decode() sightings = %+v, want only the well-formed entry", result.Sightings)
			}
		})
	}
}

func TestDecode_Unusable(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty body", payload: ""},
		{name: "object", payload: `{"fullName": "John"}`},
		{name: "html", payload: `<html><body>Not found</body></html>`},
		{name: "truncated array", payload: `[{"fullName": "John"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.payload))
			if !errors.Is(err, ErrUnusable) {
				t.Errorf("Decode() error = %v, want ErrUnusable", err)
			}
		})
	}
}

func TestSighting_SeenAt(t *testing.T) {
	tests := []struct {
		name     string
		lastSeen string
		wantOK   bool
		wantYear int
	}{
		{name: "date only", lastSeen: "2023-01-01", wantOK: true, wantYear: 2023},
		{name: "rfc3339", lastSeen: "2022-11-05T08:30:00+01:00", wantOK: true, wantYear: 2022},
		{name: "sql timestamp", lastSeen: "2021-03-04 05:06:07", wantOK: true, wantYear: 2021},
		{name: "empty", lastSeen: "", wantOK: false},
		{name: "garbage", lastSeen: "???", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Sighting{LastSeen: tt.lastSeen}.SeenAt()
			if ok != tt.wantOK {
				t.Fatalf("SeenAt() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Year() != tt.wantYear {
				t.Errorf("SeenAt() year = %d, want %d", got.Year(), tt.wantYear)
			}
		})
	}
}
