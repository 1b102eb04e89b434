package editor

import (
	"github.com/zmann/noiseg8/engine/core"
)

// Open creates the editor as a child of a host-owned window. The host keeps
// ownership of the returned handle and drives it from its UI thread.
func Open[S any](backend core.Backend, parent core.ParentWindow, opts Options, state S, build, update UpdateFunc[S]) (core.WindowHandle, error) {
	return backend.Open(parent, opts.Window, builder(opts, state, build, update))
}

// OpenBlocking opens a top-level editor window and returns once it has closed.
func OpenBlocking[S any](backend core.Backend, opts Options, state S, build, update UpdateFunc[S]) error {
	return backend.OpenBlocking(opts.Window, builder(opts, state, build, update))
}

func builder[S any](opts Options, state S, build, update UpdateFunc[S]) core.BuildFunc {
	return func(win core.Window) (core.Handler, error) {
		w, err := New(win, opts, state, build, update)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}
