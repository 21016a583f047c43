package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const (
	// EnvConfigPath overrides the settings file location.
	EnvConfigPath = "SNET_LOCATOR_CONFIG"
	// EnvURL overrides the feed URL for one run without persisting it.
	EnvURL = "SNET_LOCATOR_URL"
)

// Env holds overrides taken from the environment.
type Env struct {
	ConfigPath string
	URL        string
}

// LoadEnv reads overrides from the environment after loading the given
// dotenv files (".env" when none are named). Missing dotenv files are
// ignored; variables already set in the environment win.
func LoadEnv(files ...string) (Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Env{}, err
		}
	}

	return Env{
		ConfigPath: os.Getenv(EnvConfigPath),
		URL:        os.Getenv(EnvURL),
	}, nil
}
