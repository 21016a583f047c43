package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"snet-locator/src/config"
	"snet-locator/src/feed"
	"snet-locator/src/logger"
	"snet-locator/src/present"
	"snet-locator/src/ranking"
	"snet-locator/src/tui"
)

// app holds everything one invocation needs. It is built once per command
// and passed explicitly; nothing here is shared between runs.
type app struct {
	store     *config.Store
	asker     config.Asker
	fetcher   feed.Fetcher
	presenter *present.Presenter
	log       logger.Logger
	// errOut receives the fetch spinner.
	errOut io.Writer
	// urlOverride replaces the stored feed URL for this run.
	urlOverride string
}

// newApp wires the app from flags, environment and the command's streams.
func newApp(cmd *cobra.Command) (*app, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	path := configPath
	if path == "" {
		path = env.ConfigPath
	}

	format, err := present.ParseFormat(outputFormat)
	if err != nil {
		return nil, err
	}

	var log logger.Logger = logger.NewSilentLogger()
	if verbose {
		log = logger.NewConsoleLogger(cmd.ErrOrStderr(), true)
	}

	p := present.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), format)
	p.Width = terminalWidth(cmd.OutOrStdout())

	return &app{
		store:       config.NewStore(path),
		asker:       tui.NewPrompter(cmd.InOrStdin(), cmd.ErrOrStderr()),
		fetcher:     feed.NewSource(fetchTimeout),
		presenter:   p,
		log:         log,
		errOut:      cmd.ErrOrStderr(),
		urlOverride: env.URL,
	}, nil
}

// Lookup resolves the feed URL (prompting on first run), fetches the feed
// and prints the sightings matching phrase.
//
// Fetch failures and empty results are reported to the user and are not
// errors. The only error returned is a settings file that cannot be written.
func (a *app) Lookup(ctx context.Context, phrase string) error {
	url, err := a.feedURL()
	if errors.Is(err, config.ErrDeclined) || errors.Is(err, tui.ErrAborted) {
		a.presenter.Message(config.DeclinedMessage)
		return nil
	}
	if err != nil {
		return err
	}

	a.log.Debug("fetching feed", "url", url)

	var result *feed.Result
	err = tui.RunWithSpinner(a.errOut, "Fetching "+url, func() error {
		var ferr error
		result, ferr = a.fetcher.Fetch(ctx, url)
		return ferr
	})
	if err != nil {
		a.log.Error("fetch failed", "url", url, "err", err)
		a.presenter.Failure(feed.WrapError(err, url, a.store.Path))
		return nil
	}

	if result.Skipped > 0 {
		a.log.Info("skipped malformed sightings", "count", result.Skipped)
		a.presenter.Notice(fmt.Sprintf("Skipped %d malformed sighting(s) in the feed.", result.Skipped))
	}

	rows := ranking.Find(result.Sightings, phrase)
	a.log.Debug("matched sightings", "phrase", phrase, "records", len(result.Sightings), "rows", len(rows))

	return a.presenter.Sightings(phrase, rows)
}

func (a *app) feedURL() (string, error) {
	if a.urlOverride != "" {
		a.log.Debug("using feed URL from environment", "var", config.EnvURL)
		return a.urlOverride, nil
	}

	settings, err := config.LoadOrSetup(a.store, a.asker)
	if err != nil {
		return "", err
	}
	return settings.LocatorDataPath, nil
}

// ShowSettings prints the settings file path and stored URL.
func (a *app) ShowSettings() {
	url := ""
	if settings, err := a.store.Load(); err == nil {
		url = settings.LocatorDataPath
	} else {
		a.log.Debug("no stored settings", "err", err)
	}
	a.presenter.Settings(a.store.Path, url)
}

// SetURL validates and stores a new feed URL.
func (a *app) SetURL(url string) error {
	if !config.IsURL(url) {
		return fmt.Errorf("%q does not look like a URL", url)
	}
	if err := a.store.Save(&config.Settings{LocatorDataPath: url}); err != nil {
		return err
	}
	a.presenter.Settings(a.store.Path, url)
	return nil
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil {
		return 0
	}
	return width
}
