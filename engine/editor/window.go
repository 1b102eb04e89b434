// Package editor runs an immediate-mode UI inside a host-owned native window.
//
// A Window adapts the native event stream into UI input, drives one
// BeginFrame/EndFrame cycle per native frame callback and decides from the
// UI output whether to render now, schedule a later repaint, resize or close.
// All methods run on the window's thread.
package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
	"unicode"

	"golang.org/x/image/font"

	"github.com/zmann/noiseg8/engine/clipboard"
	"github.com/zmann/noiseg8/engine/colors"
	"github.com/zmann/noiseg8/engine/core"
	glbackend "github.com/zmann/noiseg8/engine/gfx/gl"
	"github.com/zmann/noiseg8/engine/profiler"
	"github.com/zmann/noiseg8/engine/translate"
	"github.com/zmann/noiseg8/engine/ui"
)

// DefaultPointsPerScrollLine converts line-based wheel deltas to points.
const DefaultPointsPerScrollLine = 50

// ErrNoUpdate is returned by New when no update func is given.
var ErrNoUpdate = errors.New("editor: update func is required")

// UpdateFunc is called once per frame to build the UI. The build callback has
// the same signature and runs once, before the first frame.
type UpdateFunc[S any] func(ctx *ui.Context, q *Queue, state *S)

type Options struct {
	Window core.WindowOptions
	Logger *slog.Logger
	// Policy overrides the platform's modifier policy.
	Policy ModifierPolicy
	// PointsPerScrollLine overrides DefaultPointsPerScrollLine.
	PointsPerScrollLine float32
	NewPainter          glbackend.PainterFactory
	Clipboard           clipboard.Options
	// Font replaces the built-in bitmap font.
	Font font.Face
	// Now overrides time.Now.
	Now func() time.Time
}

type phase int

const (
	phaseOpen phase = iota
	phaseClosing
	phaseClosed
)

// frameEngine is the part of the UI engine the scheduler drives.
type frameEngine interface {
	BeginFrame(in ui.RawInput)
	EndFrame() ui.FullOutput
	Tessellate(shapes []ui.ClippedShape, pixelsPerPoint float32) []ui.ClippedPrimitive
}

// Window is the per-window adapter. It implements core.Handler.
type Window[S any] struct {
	state  *S
	update UpdateFunc[S]

	ctx        *ui.Context
	engine     frameEngine
	viewportID ui.ViewportID
	start      time.Time
	input      ui.RawInput
	pointer    ui.Pos2
	hasPointer bool
	cursor     core.MouseCursor

	renderer  *glbackend.Renderer
	clipboard *clipboard.Adapter

	physical            core.PhySize
	scale               core.ScalePolicy
	pixelsPerPoint      float32
	pointsPerPixel      float32
	pointsPerScrollLine float32
	bgColor             colors.Color

	repaintAfter    time.Time
	hasRepaintAfter bool

	phase  phase
	policy ModifierPolicy
	now    func() time.Time
	log    *slog.Logger
}

// New builds the adapter for an already opened native window. A renderer
// failure is fatal and returned wrapped in glbackend.ErrPainterInit.
func New[S any](win core.Window, opts Options, state S, build, update UpdateFunc[S]) (*Window[S], error) {
	if update == nil {
		return nil, ErrNoUpdate
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	policy := opts.Policy
	if policy == nil {
		policy = PolicyFor(core.CurrentPlatform())
	}
	perLine := opts.PointsPerScrollLine
	if perLine <= 0 {
		perLine = DefaultPointsPerScrollLine
	}

	// The system factor is unknown until the first resize event.
	ppp := float32(opts.Window.Scale.Resolve(1))
	logicalW, logicalH := float32(opts.Window.Width), float32(opts.Window.Height)
	screen := ui.RectFromMinSize(ui.Pos2{}, ui.Vec2{X: logicalW, Y: logicalH})

	glctx, err := win.GLContext()
	if err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}
	renderer, err := glbackend.NewRenderer(glctx, glbackend.Options{Logger: log, NewPainter: opts.NewPainter})
	if err != nil {
		return nil, fmt.Errorf("editor: %w", err)
	}

	ctx, err := ui.NewContextWithFace(opts.Font)
	if err != nil {
		renderer.Destroy()
		return nil, fmt.Errorf("editor: ui context: %w", err)
	}

	input := ui.NewRawInput()
	input.ScreenRect = &screen
	input.MaxTextureSide = renderer.MaxTextureSide()
	input.Viewports[ui.RootViewportID] = ui.ViewportInfo{
		Title:                opts.Window.Title,
		NativePixelsPerPoint: ppp,
		Focused:              true,
		InnerRect:            screen,
	}

	// Whatever build queues is discarded: bg colour and close requests only
	// take effect from update.
	if build != nil {
		var q Queue
		build(ctx, &q, &state)
	}

	clip := clipboard.New(opts.Clipboard)

	w := &Window[S]{
		state:               &state,
		update:              update,
		ctx:                 ctx,
		engine:              ctx,
		viewportID:          ui.RootViewportID,
		input:               input,
		cursor:              core.CursorDefault,
		renderer:            renderer,
		clipboard:           clip,
		physical:            physicalSize(logicalW, logicalH, ppp),
		scale:               opts.Window.Scale,
		pixelsPerPoint:      ppp,
		pointsPerPixel:      1 / ppp,
		pointsPerScrollLine: perLine,
		bgColor:             colors.Black,
		policy:              policy,
		now:                 now,
		log:                 log,
	}
	w.start = now()
	w.repaintAfter, w.hasRepaintAfter = w.start, true
	return w, nil
}

func physicalSize(logicalW, logicalH, ppp float32) core.PhySize {
	return core.PhySize{
		Width:  uint32(math.Round(float64(logicalW * ppp))),
		Height: uint32(math.Round(float64(logicalH * ppp))),
	}
}

// Context exposes the UI engine, mainly for tests and embedding hosts.
func (w *Window[S]) Context() *ui.Context { return w.ctx }

// PixelsPerPoint is the current scale factor.
func (w *Window[S]) PixelsPerPoint() float32 { return w.pixelsPerPoint }

// PhysicalSize is the drawable size in pixels.
func (w *Window[S]) PhysicalSize() core.PhySize { return w.physical }

// LogicalSize is the drawable size in points.
func (w *Window[S]) LogicalSize() ui.Vec2 {
	return ui.Vec2{
		X: float32(w.physical.Width) / w.pixelsPerPoint,
		Y: float32(w.physical.Height) / w.pixelsPerPoint,
	}
}

// OnFrame runs one tick.
func (w *Window[S]) OnFrame(win core.Window) {
	if w.phase != phaseOpen || w.state == nil {
		return
	}
	defer profiler.Start("editor.frame")()

	w.input.Time = w.now().Sub(w.start).Seconds()
	w.engine.BeginFrame(w.input.Take())

	q := Queue{bg: w.bgColor}
	endUpdate := profiler.Start("editor.update")
	w.update(w.ctx, &q, w.state)
	endUpdate()
	w.bgColor = q.bg

	out := w.engine.EndFrame()

	if q.close {
		w.requestClose(win, "update")
		return
	}
	vo, ok := out.Viewports[w.viewportID]
	if !ok {
		w.requestClose(win, "no viewport output")
		return
	}
	for _, cmd := range vo.Commands {
		if _, ok := cmd.(ui.ViewportClose); ok {
			w.requestClose(win, "viewport command")
			return
		}
	}
	for _, cmd := range vo.Commands {
		switch c := cmd.(type) {
		case ui.ViewportInnerSize:
			win.Resize(core.Size{
				Width:  float64(max(c.Size.X, 1)),
				Height: float64(max(c.Size.Y, 1)),
			})
		case ui.ViewportTitle:
			win.SetTitle(c.Title)
			vi := w.input.Viewports[w.viewportID]
			vi.Title = c.Title
			w.input.Viewports[w.viewportID] = vi
		}
	}

	now := w.now()
	repaintNow := (w.hasRepaintAfter && !now.Before(w.repaintAfter)) || vo.RepaintDelay == 0
	if repaintNow {
		endRender := profiler.Start("editor.render")
		w.renderer.Render(w.engine, glbackend.Frame{
			BgColor:        w.bgColor,
			Size:           w.physical,
			PixelsPerPoint: w.pixelsPerPoint,
			Shapes:         out.Shapes,
			Textures:       out.Textures,
		})
		endRender()
		w.hasRepaintAfter = false
	} else if vo.RepaintDelay != ui.RepaintNever {
		w.repaintAfter, w.hasRepaintAfter = now.Add(vo.RepaintDelay), true
	}

	if text := out.Platform.CopiedText; text != "" {
		if w.clipboard == nil {
			w.log.Warn("copy ignored: clipboard unavailable")
		} else if err := w.clipboard.SetText(text); err != nil {
			w.log.Error("copy/cut failed", "err", err)
		}
	}

	cursor := translate.Cursor(out.Platform.CursorIcon)
	if cursor != w.cursor {
		w.cursor = cursor
		win.SetMouseCursor(cursor)
	}
}

func (w *Window[S]) requestClose(win core.Window, reason string) {
	if w.phase != phaseOpen {
		return
	}
	w.phase = phaseClosing
	w.log.Debug("closing editor window", "reason", reason)
	win.Close()
}

// OnDestroy tears down the renderer and then drops the user state.
func (w *Window[S]) OnDestroy(core.Window) {
	if w.phase == phaseClosed {
		return
	}
	w.phase = phaseClosed
	if w.renderer != nil {
		w.renderer.Destroy()
		w.renderer = nil
	}
	w.state = nil
}

// OnEvent translates one native event into UI input.
func (w *Window[S]) OnEvent(_ core.Window, ev core.Event) core.EventStatus {
	switch e := ev.(type) {
	case core.EventCursorMoved:
		w.policy.FromSnapshot(e.Modifiers, &w.input.Modifiers)
		w.pointer = ui.Pos2{X: float32(e.Position.X), Y: float32(e.Position.Y)}
		w.hasPointer = true
		w.input.Push(ui.EventPointerMoved{Pos: w.pointer})

	case core.EventButtonPressed:
		w.pushButton(e.Button, e.Modifiers, true)

	case core.EventButtonReleased:
		w.pushButton(e.Button, e.Modifiers, false)

	case core.EventWheelScrolled:
		w.policy.FromSnapshot(e.Modifiers, &w.input.Modifiers)
		w.pushScroll(e.Delta)

	case core.EventCursorLeft:
		w.hasPointer = false
		w.input.Push(ui.EventPointerGone{})

	case core.EventKeyboard:
		w.handleKey(e)

	case core.EventResized:
		w.resize(e.Info)

	case core.EventFocused:
		w.setFocused(true)

	case core.EventUnfocused:
		w.setFocused(false)

	case core.EventCursorEntered, core.EventWillClose:
	}
	return core.EventCaptured
}

// pushButton applies the event's own modifier snapshot before building the
// button event, so the event never carries stale modifiers.
func (w *Window[S]) pushButton(b core.MouseButton, snap core.Modifiers, pressed bool) {
	w.policy.FromSnapshot(snap, &w.input.Modifiers)
	if !w.hasPointer {
		return
	}
	button, ok := translate.Button(b)
	if !ok {
		return
	}
	w.input.Push(ui.EventPointerButton{
		Pos:       w.pointer,
		Button:    button,
		Pressed:   pressed,
		Modifiers: w.input.Modifiers,
	})
}

func (w *Window[S]) pushScroll(d core.ScrollDelta) {
	var delta ui.Vec2
	switch d.Unit {
	case core.ScrollLines:
		delta = ui.Vec2{X: d.X * w.pointsPerScrollLine, Y: d.Y * w.pointsPerScrollLine}
	case core.ScrollPixels:
		delta = ui.Vec2{X: d.X * w.pointsPerPixel, Y: d.Y * w.pointsPerPixel}
	}
	if w.policy.InvertScrollX() {
		delta.X = -delta.X
	}

	mods := w.input.Modifiers
	switch {
	case mods.Ctrl || mods.Command:
		w.input.Push(ui.EventZoom{Factor: float32(math.Exp(float64(delta.Y / 200)))})
	case mods.Shift:
		w.input.Push(ui.EventScroll{Delta: ui.Vec2{X: delta.X + delta.Y}})
	default:
		w.input.Push(ui.EventScroll{Delta: delta})
	}
}

func (w *Window[S]) handleKey(e core.EventKeyboard) {
	pressed := e.State == core.KeyDown
	w.policy.ApplyKey(e.Code, pressed, &w.input.Modifiers)
	mods := w.input.Modifiers

	if key, ok := translate.Key(e.Key); ok {
		w.input.Push(ui.EventKey{Key: key, Pressed: pressed, Repeat: e.Repeat, Modifiers: mods})
	}
	if !pressed {
		return
	}

	switch {
	case w.policy.IsCut(mods, e.Code):
		w.input.Push(ui.EventCut{})
	case w.policy.IsCopy(mods, e.Code):
		w.input.Push(ui.EventCopy{})
	case w.policy.IsPaste(mods, e.Code):
		w.paste()
	case mods.ShiftOnly():
		if text := keyText(e); isPrintable(text) {
			w.input.Push(ui.EventText{Text: text})
		}
	}
}

// keyText is the text a key-down typed. Backends that do not report it
// separately leave Text empty and the character key stands in.
func keyText(e core.EventKeyboard) string {
	if e.Text != "" {
		return e.Text
	}
	if e.Key.Name == core.KeyCharacter {
		return e.Key.Char
	}
	return ""
}

func (w *Window[S]) paste() {
	if w.clipboard == nil {
		w.log.Warn("paste ignored: clipboard unavailable")
		return
	}
	text, err := w.clipboard.GetText()
	if err != nil {
		w.log.Error("paste failed", "err", err)
		return
	}
	if text != "" {
		w.input.Push(ui.EventText{Text: text})
	}
}

func isPrintable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func (w *Window[S]) resize(info core.WindowInfo) {
	w.pixelsPerPoint = float32(w.scale.Resolve(info.Scale))
	w.pointsPerPixel = 1 / w.pixelsPerPoint
	w.physical = info.Physical

	logical := w.LogicalSize()
	screen := ui.RectFromMinSize(ui.Pos2{}, logical)
	w.input.ScreenRect = &screen

	vi := w.input.Viewports[w.viewportID]
	vi.NativePixelsPerPoint = w.pixelsPerPoint
	vi.InnerRect = screen
	w.input.Viewports[w.viewportID] = vi

	// Repaint on the next tick regardless of any deferred repaint.
	w.repaintAfter, w.hasRepaintAfter = w.now(), true
}

func (w *Window[S]) setFocused(focused bool) {
	w.input.Push(ui.EventWindowFocused{Focused: focused})
	vi := w.input.Viewports[w.viewportID]
	vi.Focused = focused
	w.input.Viewports[w.viewportID] = vi
}
