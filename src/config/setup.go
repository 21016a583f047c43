package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// FirstQuestion is asked when there are no settings yet.
	FirstQuestion = "Unable to get path to locator data. Plizz gimme "
	// RetryQuestion is asked after an answer that is not a URL.
	RetryQuestion = "Yeah... If you'd just give me an url that'd be great... "
	// DeclinedMessage is printed when the user refuses to give a URL.
	DeclinedMessage = "Really? Sure, your move then. "
)

// ErrDeclined is returned by Setup when the user answers "no" or "n".
var ErrDeclined = errors.New("user declined to provide a feed URL")

// Asker collects one line of input in answer to a question.
type Asker interface {
	Ask(question string) (string, error)
}

// Setup asks for a feed URL until a URL-shaped answer is given, then saves
// it. It returns ErrDeclined on "no"/"n", the Asker's error if asking fails,
// and a wrapped error if the settings cannot be written.
func Setup(store *Store, asker Asker) (*Settings, error) {
	question := FirstQuestion
	for {
		answer, err := asker.Ask(question)
		if err != nil {
			return nil, err
		}
		answer = strings.TrimSpace(answer)

		if IsURL(answer) {
			settings := &Settings{LocatorDataPath: answer}
			if err := store.Save(settings); err != nil {
				return nil, fmt.Errorf("failed to persist settings to %s: %w", store.Path, err)
			}
			return settings, nil
		}

		if answer == "no" || answer == "n" {
			return nil, ErrDeclined
		}

		question = RetryQuestion
	}
}

// LoadOrSetup loads the settings, falling back to Setup when there are none.
func LoadOrSetup(store *Store, asker Asker) (*Settings, error) {
	settings, err := store.Load()
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	return Setup(store, asker)
}
