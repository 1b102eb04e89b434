// Package platform is the GLFW backend for core windows.
package platform

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"time"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/zmann/noiseg8/engine/core"
)

// FrameInterval paces OpenBlocking when nothing wakes it earlier.
const FrameInterval = time.Second / 60

var liveWindows int

// GLFWWindow implements core.Window and core.GLContext on top of a GLFW window.
type GLFWWindow struct {
	w       *glfw.Window
	scale   core.ScalePolicy
	handler core.Handler
	log     *slog.Logger

	cursors map[glfw.StandardCursor]*glfw.Cursor
	hidden  bool

	// A printable key-down waits here for the char callback that carries its
	// text, so the handler sees one event with both.
	pending *core.EventKeyboard
}

// Must be called on the main thread.
func newGLFWWindow(opts core.WindowOptions, log *slog.Logger) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if liveWindows == 0 {
		if err := glfw.Init(); err != nil {
			return nil, fmt.Errorf("glfw init: %w", err)
		}
	}

	// GL 3.3 core profile (Mac requires forward-compatible flag).
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	win, err := glfw.CreateWindow(int(opts.Width), int(opts.Height), opts.Title, nil, nil)
	if err != nil {
		if liveWindows == 0 {
			glfw.Terminate()
		}
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	liveWindows++

	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	glfw.DetachCurrentContext()

	g := &GLFWWindow{
		w:       win,
		scale:   opts.Scale,
		log:     log,
		cursors: map[glfw.StandardCursor]*glfw.Cursor{},
	}
	if opts.Scale.IsFixed() {
		g.Resize(core.Size{Width: opts.Width, Height: opts.Height})
	}
	g.installCallbacks()
	return g, nil
}

func (g *GLFWWindow) emit(ev core.Event) {
	if g.handler != nil {
		g.handler.OnEvent(g, ev)
	}
}

// pixelsPerScreenCoord is 1 on Windows and X11 and the backing scale on macOS.
func (g *GLFWWindow) pixelsPerScreenCoord() float64 {
	fw, _ := g.w.GetFramebufferSize()
	ww, _ := g.w.GetSize()
	if fw <= 0 || ww <= 0 {
		return 1
	}
	return float64(fw) / float64(ww)
}

func (g *GLFWWindow) systemScale() float64 {
	x, _ := g.w.GetContentScale()
	return float64(x)
}

// pointsPerScreenCoord converts GLFW cursor coordinates to points.
func (g *GLFWWindow) pointsPerScreenCoord() float64 {
	return g.pixelsPerScreenCoord() / g.scale.Resolve(g.systemScale())
}

func (g *GLFWWindow) info() core.WindowInfo {
	fw, fh := g.w.GetFramebufferSize()
	return core.WindowInfo{
		Physical: core.PhySize{Width: uint32(max(fw, 0)), Height: uint32(max(fh, 0))},
		Scale:    g.systemScale(),
	}
}

func (g *GLFWWindow) installCallbacks() {
	g.w.SetCloseCallback(func(*glfw.Window) { g.emit(core.EventWillClose{}) })

	g.w.SetFramebufferSizeCallback(func(*glfw.Window, int, int) {
		g.emit(core.EventResized{Info: g.info()})
	})
	g.w.SetContentScaleCallback(func(*glfw.Window, float32, float32) {
		g.emit(core.EventResized{Info: g.info()})
	})
	g.w.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			g.emit(core.EventFocused{})
		} else {
			g.emit(core.EventUnfocused{})
		}
	})

	g.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		s := g.pointsPerScreenCoord()
		g.emit(core.EventCursorMoved{
			Position:  core.Point{X: x * s, Y: y * s},
			Modifiers: g.currentMods(),
		})
	})
	g.w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			g.emit(core.EventCursorEntered{})
		} else {
			g.emit(core.EventCursorLeft{})
		}
	})
	g.w.SetMouseButtonCallback(func(_ *glfw.Window, b glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button := translateButton(b)
		if action == glfw.Press {
			g.emit(core.EventButtonPressed{Button: button, Modifiers: translateMods(mods)})
		} else {
			g.emit(core.EventButtonReleased{Button: button, Modifiers: translateMods(mods)})
		}
	})
	// GLFW does not say whether a delta came from a wheel or a trackpad, so
	// everything is reported in lines.
	g.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		g.emit(core.EventWheelScrolled{
			Delta:     core.ScrollDelta{Unit: core.ScrollLines, X: float32(xoff), Y: float32(yoff)},
			Modifiers: g.currentMods(),
		})
	})

	g.w.SetKeyCallback(g.onKey)
	g.w.SetCharCallback(g.onChar)
}

// currentMods rebuilds a modifier snapshot for callbacks that lack one.
func (g *GLFWWindow) currentMods() core.Modifiers {
	var m core.Modifiers
	held := func(a, b glfw.Key) bool {
		return g.w.GetKey(a) == glfw.Press || g.w.GetKey(b) == glfw.Press
	}
	if held(glfw.KeyLeftShift, glfw.KeyRightShift) {
		m |= core.ModShift
	}
	if held(glfw.KeyLeftControl, glfw.KeyRightControl) {
		m |= core.ModControl
	}
	if held(glfw.KeyLeftAlt, glfw.KeyRightAlt) {
		m |= core.ModAlt
	}
	if held(glfw.KeyLeftSuper, glfw.KeyRightSuper) {
		m |= core.ModMeta
	}
	return m
}

func (g *GLFWWindow) onKey(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	g.flushKey()

	code := translateCode(key)
	ev := core.EventKeyboard{
		State:     core.KeyDown,
		Code:      code,
		Modifiers: translateMods(mods),
		Repeat:    action == glfw.Repeat,
	}
	if action == glfw.Release {
		ev.State = core.KeyUp
	}

	if n, ok := namedKey(code); ok {
		ev.Key = core.Named(n)
		g.emit(ev)
		return
	}
	text := glfw.GetKeyName(key, scancode)
	if text == "" {
		text = fallbackChar(code)
	}
	if text == "" {
		ev.Key = core.Named(core.KeyUnidentified)
		g.emit(ev)
		return
	}
	ev.Key = core.Character(text)
	if ev.State == core.KeyUp {
		g.emit(ev)
		return
	}
	g.pending = &ev
}

func (g *GLFWWindow) onChar(_ *glfw.Window, r rune) {
	text := string(r)
	if g.pending != nil {
		// The key keeps its layout name so the release matches it.
		ev := *g.pending
		g.pending = nil
		ev.Text = text
		g.emit(ev)
		return
	}
	// Text without a key press, e.g. from an input method.
	g.emit(core.EventKeyboard{State: core.KeyDown, Key: core.Character(text), Modifiers: g.currentMods(), Text: text})
}

// flushKey sends a key-down that produced no text, such as Ctrl+V.
func (g *GLFWWindow) flushKey() {
	if g.pending == nil {
		return
	}
	ev := *g.pending
	g.pending = nil
	g.emit(ev)
}

// ----- core.Window -----

func (g *GLFWWindow) Resize(size core.Size) {
	s := g.scale.Resolve(g.systemScale()) / g.pixelsPerScreenCoord()
	g.w.SetSize(int(math.Round(size.Width*s)), int(math.Round(size.Height*s)))
}

func (g *GLFWWindow) SetTitle(t string) { g.w.SetTitle(t) }

// Close asks the window to close; it is destroyed at the end of the tick.
func (g *GLFWWindow) Close() { g.w.SetShouldClose(true) }

func (g *GLFWWindow) SetMouseCursor(c core.MouseCursor) {
	if c == core.CursorHidden {
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
		g.hidden = true
		return
	}
	if g.hidden {
		g.w.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
		g.hidden = false
	}
	shape := standardCursor(c)
	cur, ok := g.cursors[shape]
	if !ok {
		cur = glfw.CreateStandardCursor(shape)
		g.cursors[shape] = cur
	}
	g.w.SetCursor(cur)
}

func (g *GLFWWindow) GLContext() (core.GLContext, error) { return g, nil }

// ----- core.GLContext -----

func (g *GLFWWindow) MakeCurrent()    { g.w.MakeContextCurrent() }
func (g *GLFWWindow) MakeNotCurrent() { glfw.DetachCurrentContext() }
func (g *GLFWWindow) SwapBuffers()    { g.w.SwapBuffers() }

func (g *GLFWWindow) GetProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (g *GLFWWindow) destroy() {
	for _, c := range g.cursors {
		c.Destroy()
	}
	g.cursors = nil
	g.w.Destroy()
	liveWindows--
	if liveWindows == 0 {
		glfw.Terminate()
	}
}
