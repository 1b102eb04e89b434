package clipboard

import (
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
	design "golang.design/x/clipboard"
)

type systemProvider struct{}

// OpenSystem uses golang.design/x/clipboard, which talks to the native
// clipboard API directly (X11 on Linux, which needs cgo).
func OpenSystem() (Provider, error) {
	if err := design.Init(); err != nil {
		return nil, fmt.Errorf("native clipboard: %w", err)
	}
	return systemProvider{}, nil
}

func (systemProvider) Name() string { return "native" }

func (systemProvider) ReadText() (string, error) {
	// Read returns nil for an empty clipboard or non-text contents.
	return string(design.Read(design.FmtText)), nil
}

func (systemProvider) WriteText(s string) error {
	// The returned channel fires when another program takes ownership; the
	// frame does not wait for it.
	_ = design.Write(design.FmtText, []byte(s))
	return nil
}

type commandProvider struct{}

// OpenCommand shells out to the platform helper tools via atotto/clipboard.
func OpenCommand() (Provider, error) {
	if atotto.Unsupported {
		return nil, errors.New("command clipboard: no helper tool found")
	}
	return commandProvider{}, nil
}

func (commandProvider) Name() string              { return "command" }
func (commandProvider) ReadText() (string, error) { return atotto.ReadAll() }
func (commandProvider) WriteText(s string) error  { return atotto.WriteAll(s) }
