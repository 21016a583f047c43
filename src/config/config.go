// Package config provides configuration management for the locator.
//
// The only persisted setting is the feed URL, kept as a small JSON file in
// the user's home directory.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the settings file name inside the home directory.
const FileName = "snet-locator-settings.json"

// ErrNotFound is returned by Load when there are no usable settings.
var ErrNotFound = errors.New("settings not found")

// Settings holds the persisted configuration.
type Settings struct {
	// LocatorDataPath is the URL of the sightings feed.
	LocatorDataPath string `json:"locatorDataPath"`
}

// DefaultPath returns the settings file path in the user's home directory.
func DefaultPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, FileName)
}

// Store reads and writes the settings file.
type Store struct {
	Path string
}

// NewStore creates a store for path. An empty path selects DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{Path: path}
}

// Load reads the settings file. A missing, unreadable or unparseable file,
// or one without a URL, yields an error wrapping ErrNotFound.
func (s *Store) Load() (*Settings, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrNotFound, s.Path, err)
	}

	if strings.TrimSpace(settings.LocatorDataPath) == "" {
		return nil, fmt.Errorf("%w: %s has no locatorDataPath", ErrNotFound, s.Path)
	}

	return &settings, nil
}

// Save writes settings with 4-space indentation, creating the parent
// directory if needed.
func (s *Store) Save(settings *Settings) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(s.Path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
