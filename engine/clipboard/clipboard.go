// Package clipboard wraps the platform clipboard for the editor window.
//
// The adapter is acquired once when a window opens. If no provider can be
// initialised the constructor returns nil, and every method on a nil
// *Adapter fails with ErrUnavailable instead of panicking, so callers can
// keep running frames without a clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnavailable is returned by a nil Adapter.
var ErrUnavailable = errors.New("clipboard: unavailable")

// Provider is one platform clipboard backend.
type Provider interface {
	Name() string
	ReadText() (string, error)
	WriteText(s string) error
}

// Opener initialises a Provider.
type Opener func() (Provider, error)

type Options struct {
	Logger *slog.Logger
	// Openers are tried in order; the first that succeeds wins.
	// Nil means DefaultOpeners.
	Openers []Opener
}

// DefaultOpeners tries the native clipboard first and the command-line
// helpers (xclip, xsel, pbcopy, ...) second.
func DefaultOpeners() []Opener {
	return []Opener{OpenSystem, OpenCommand}
}

type Adapter struct {
	p   Provider
	log *slog.Logger
}

// New acquires a clipboard. It returns nil, after logging why, when no
// provider could be opened.
func New(opts Options) *Adapter {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	openers := opts.Openers
	if openers == nil {
		openers = DefaultOpeners()
	}

	var errs []error
	for _, open := range openers {
		p, err := open()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		log.Debug("clipboard ready", "provider", p.Name())
		return &Adapter{p: p, log: log}
	}
	log.Error("failed to initialize clipboard", "err", errors.Join(errs...))
	return nil
}

// Provider returns the name of the active backend, or "" for a nil adapter.
func (a *Adapter) Provider() string {
	if a == nil {
		return ""
	}
	return a.p.Name()
}

// SetText replaces the clipboard contents.
func (a *Adapter) SetText(s string) error {
	if a == nil {
		return ErrUnavailable
	}
	if err := a.p.WriteText(s); err != nil {
		return fmt.Errorf("clipboard %s: write: %w", a.p.Name(), err)
	}
	return nil
}

// GetText returns the clipboard contents as text.
func (a *Adapter) GetText() (string, error) {
	if a == nil {
		return "", ErrUnavailable
	}
	s, err := a.p.ReadText()
	if err != nil {
		return "", fmt.Errorf("clipboard %s: read: %w", a.p.Name(), err)
	}
	return s, nil
}
