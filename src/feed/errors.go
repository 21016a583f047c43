package feed

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
)

var (
	// ErrUnreachable means the feed host could not be resolved or connected to.
	ErrUnreachable = errors.New("feed unreachable")
	// ErrUnusable means the feed answered but the response cannot be used.
	ErrUnusable = errors.New("feed unusable")
	// ErrUnsupportedScheme is returned for URLs no source can serve.
	ErrUnsupportedScheme = errors.New("unsupported feed URL scheme")
)

// UserError wraps errors with user-friendly messages. URL and ConfigPath,
// when set, appear verbatim in Message and Hint so a presenter can highlight
// them.
type UserError struct {
	Message    string
	Hint       string
	URL        string
	ConfigPath string
	Err        error
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n\nDetails: %v", e.Err)
	}
	return msg
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// Classify maps transport failures onto ErrUnreachable and everything else
// onto ErrUnusable. Errors already carrying either sentinel pass through, as
// does cancellation, which says nothing about the feed.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrUnreachable) || errors.Is(err, ErrUnusable) || errors.Is(err, context.Canceled) {
		return err
	}
	if isUnreachable(err) {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}
	return fmt.Errorf("%w: %w", ErrUnusable, err)
}

func isUnreachable(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return true
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// WrapError converts a fetch failure into the message shown to the user.
// url is the configured feed and configPath the settings file to edit.
func WrapError(err error, url, configPath string) error {
	if err == nil {
		return nil
	}

	err = Classify(err)

	switch {
	case errors.Is(err, context.Canceled):
		return &UserError{
			Message: fmt.Sprintf("Interrupted while loading %s", url),
			URL:     url,
			Err:     err,
		}
	case errors.Is(err, ErrUnreachable):
		return &UserError{
			Message: fmt.Sprintf("Failed to load %s", url),
			Hint:    "Are you sure it's accessible?",
			URL:     url,
			Err:     err,
		}
	}

	return &UserError{
		Message:    fmt.Sprintf("Failed to load %s", url),
		Hint:       fmt.Sprintf("Are you sure it's correct?\nPlease edit %s and fix it.", configPath),
		URL:        url,
		ConfigPath: configPath,
		Err:        err,
	}
}
