package core

import (
	"errors"
	"unsafe"
)

// ErrNoGLContext is returned when a window was opened without an OpenGL context.
var ErrNoGLContext = errors.New("core: window has no gl context")

// Size is a logical (point) size.
type Size struct {
	Width, Height float64
}

// PhySize is a physical (pixel) size.
type PhySize struct {
	Width, Height uint32
}

// WindowInfo describes the window after a resize or scale change.
type WindowInfo struct {
	Physical PhySize
	Scale    float64 // system scale factor, physical pixels per logical point
}

// Logical returns the physical size divided by the system scale.
func (wi WindowInfo) Logical() Size {
	s := wi.Scale
	if s <= 0 {
		s = 1
	}
	return Size{
		Width:  float64(wi.Physical.Width) / s,
		Height: float64(wi.Physical.Height) / s,
	}
}

// ScalePolicy decides how many physical pixels make up one logical point.
// The zero value follows the system scale factor.
type ScalePolicy struct {
	fixed float64
}

// SystemScaleFactor follows the platform DPI setting.
func SystemScaleFactor() ScalePolicy { return ScalePolicy{} }

// FixedScale ignores the platform DPI setting.
func FixedScale(factor float64) ScalePolicy { return ScalePolicy{fixed: factor} }

// IsFixed reports whether the policy pins the factor.
func (p ScalePolicy) IsFixed() bool { return p.fixed > 0 }

// Resolve returns the effective factor given the current system scale.
// A non-positive system scale is treated as 1.
func (p ScalePolicy) Resolve(system float64) float64 {
	if p.fixed > 0 {
		return p.fixed
	}
	if system <= 0 {
		return 1
	}
	return system
}

// WindowOptions configure a native window.
type WindowOptions struct {
	Title  string
	Width  float64 // logical
	Height float64 // logical
	Scale  ScalePolicy
	VSync  bool
}

// Window is the native window as seen by a Handler.
type Window interface {
	Resize(size Size)
	SetTitle(title string)
	Close()
	SetMouseCursor(cursor MouseCursor)
	// GLContext returns the window's GL context, or ErrNoGLContext.
	GLContext() (GLContext, error)
}

// GLContext is an OpenGL context owned by the native window.
type GLContext interface {
	MakeCurrent()
	MakeNotCurrent()
	SwapBuffers()
	GetProcAddress(name string) unsafe.Pointer
}

// EventStatus tells the native window whether the handler consumed an event.
type EventStatus int

const (
	EventIgnored EventStatus = iota
	EventCaptured
)

// ParentWindow is a raw native handle (HWND, X11 window id, NSView*) owned
// by the host. Zero means no parent.
type ParentWindow uintptr

// BuildFunc creates the handler once the native window and its GL context exist.
type BuildFunc func(w Window) (Handler, error)

// WindowHandle controls a window opened without blocking. The host drives it
// by calling Tick from its UI thread.
type WindowHandle interface {
	// Tick processes pending native events and runs one frame. It returns
	// false once the window has been destroyed.
	Tick() bool
	Close()
	IsOpen() bool
}

// Backend is a native windowing library.
type Backend interface {
	Open(parent ParentWindow, opts WindowOptions, build BuildFunc) (WindowHandle, error)
	OpenBlocking(opts WindowOptions, build BuildFunc) error
}

// Handler receives callbacks from the native window. All calls happen on the
// window's thread, one at a time.
type Handler interface {
	OnFrame(w Window)
	OnEvent(w Window, ev Event) EventStatus
	// OnDestroy runs once when the native window is torn down.
	OnDestroy(w Window)
}
