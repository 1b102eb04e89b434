package clipboard

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memProvider struct {
	text    string
	readErr error
}

func (m *memProvider) Name() string { return "mem" }

func (m *memProvider) ReadText() (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	return m.text, nil
}

func (m *memProvider) WriteText(s string) error {
	m.text = s
	return nil
}

func quietLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func failing(msg string) Opener {
	return func() (Provider, error) { return nil, errors.New(msg) }
}

func TestNewPicksFirstWorkingProvider(t *testing.T) {
	mem := &memProvider{}
	a := New(Options{
		Logger:  quietLogger(),
		Openers: []Opener{failing("no x11"), func() (Provider, error) { return mem, nil }},
	})
	require.NotNil(t, a)
	assert.Equal(t, "mem", a.Provider())

	require.NoError(t, a.SetText("hello"))
	got, err := a.GetText()
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}

func TestNewReturnsNilWhenEverythingFails(t *testing.T) {
	a := New(Options{
		Logger:  quietLogger(),
		Openers: []Opener{failing("no x11"), failing("no xclip")},
	})
	assert.Nil(t, a)
}

func TestNilAdapterIsInert(t *testing.T) {
	var a *Adapter
	assert.Equal(t, "", a.Provider())
	assert.ErrorIs(t, a.SetText("x"), ErrUnavailable)
	_, err := a.GetText()
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestReadErrorIsWrapped(t *testing.T) {
	boom := errors.New("timeout")
	a := New(Options{
		Logger:  quietLogger(),
		Openers: []Opener{func() (Provider, error) { return &memProvider{readErr: boom}, nil }},
	})
	require.NotNil(t, a)
	_, err := a.GetText()
	assert.ErrorIs(t, err, boom)
}
