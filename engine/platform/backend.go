package platform

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/zmann/noiseg8/engine/core"
	"github.com/zmann/noiseg8/engine/profiler"
)

// Backend opens GLFW windows. The zero value logs to slog.Default.
type Backend struct {
	Logger *slog.Logger
}

var _ core.Backend = Backend{}

func (b Backend) logger() *slog.Logger {
	if b.Logger != nil {
		return b.Logger
	}
	return slog.Default()
}

// Open creates the window and returns a handle the host ticks from its own
// loop. GLFW cannot reparent into a foreign native window, so a non-zero
// parent still yields a top-level window.
func (b Backend) Open(parent core.ParentWindow, opts core.WindowOptions, build core.BuildFunc) (core.WindowHandle, error) {
	log := b.logger()
	if parent != 0 {
		log.Warn("glfw cannot embed into a parent window; opening top-level", "parent", fmt.Sprintf("%#x", uintptr(parent)))
	}
	return open(opts, build, log)
}

// OpenBlocking runs the window on the calling thread until it closes.
func (b Backend) OpenBlocking(opts core.WindowOptions, build core.BuildFunc) error {
	h, err := open(opts, build, b.logger())
	if err != nil {
		return err
	}
	for h.tick(true) {
	}
	return nil
}

func open(opts core.WindowOptions, build core.BuildFunc, log *slog.Logger) (*Handle, error) {
	if build == nil {
		return nil, errors.New("platform: nil build func")
	}
	win, err := newGLFWWindow(opts, log)
	if err != nil {
		return nil, err
	}
	handler, err := build(win)
	if err != nil {
		win.destroy()
		return nil, err
	}
	win.handler = handler
	log.Info("window opened", "title", opts.Title, "width", opts.Width, "height", opts.Height)

	// The handler starts from the requested size; tell it the real one.
	win.emit(core.EventResized{Info: win.info()})
	return &Handle{win: win, log: log}, nil
}

// Handle drives one open window.
type Handle struct {
	win *GLFWWindow
	log *slog.Logger
}

var _ core.WindowHandle = (*Handle)(nil)

// Tick polls events and runs one frame. It returns false once the window is gone.
func (h *Handle) Tick() bool { return h.tick(false) }

func (h *Handle) tick(wait bool) bool {
	if h.win == nil {
		return false
	}
	end := profiler.Start("platform.tick")
	defer end()

	if wait {
		glfw.WaitEventsTimeout(FrameInterval.Seconds())
	} else {
		glfw.PollEvents()
	}
	h.win.flushKey()

	if !h.win.w.ShouldClose() {
		h.win.handler.OnFrame(h.win)
	}
	if h.win.w.ShouldClose() {
		h.destroy()
		return false
	}
	return true
}

// Close asks the window to close on the next tick.
func (h *Handle) Close() {
	if h.win != nil {
		h.win.Close()
	}
}

func (h *Handle) IsOpen() bool { return h.win != nil }

// destroy runs the handler's teardown while the native window, and so its
// GL context, still exists.
func (h *Handle) destroy() {
	h.win.handler.OnDestroy(h.win)
	h.win.destroy()
	h.win = nil
	h.log.Info("window closed")
}
