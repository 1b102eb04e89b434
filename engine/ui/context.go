package ui

import (
	"time"

	"golang.org/x/image/font"

	"github.com/zmann/noiseg8/engine/colors"
)

type widgetState struct {
	hot    bool
	active bool
}

// Context is a small immediate-mode UI engine. Call BeginFrame, build the UI
// with the widget methods, then EndFrame. Not safe for concurrent use.
type Context struct {
	atlas     *fontAtlas
	atlasSent bool

	screen         Rect
	maxTextureSide int
	viewport       ViewportID
	viewports      map[ViewportID]ViewportInfo
	time           float64
	modifiers      Modifiers

	// pointer
	pointer    Pos2
	hasPointer bool
	down       bool
	pressed    bool
	released   bool
	scroll     Vec2
	zoom       float32

	focusedWindow bool
	focusedWidget int
	events        []Event

	// per-frame output
	shapes       []ClippedShape
	cursor       CursorIcon
	copied       string
	commands     []ViewportCommand
	repaintDelay time.Duration
	frameDirty   bool

	// Stable widget state (hot/active), keyed by caller-provided id.
	state map[int]widgetState

	layout layoutState
	style  Style
}

// Style holds the colours and metrics used by the built-in widgets.
type Style struct {
	Spacing      float32
	Padding      float32
	TextScale    float32
	TextColor    colors.Color
	WidgetBg     colors.Color
	WidgetActive colors.Color
	Accent       colors.Color
	PanelBg      colors.Color
}

func DefaultStyle() Style {
	return Style{
		Spacing:      6,
		Padding:      8,
		TextScale:    1,
		TextColor:    colors.Color{0.9, 0.9, 0.9, 1},
		WidgetBg:     colors.Color{0.22, 0.22, 0.24, 1},
		WidgetActive: colors.Color{0.32, 0.32, 0.36, 1},
		Accent:       colors.Accent,
		PanelBg:      colors.Color{0.13, 0.13, 0.15, 1},
	}
}

// NewContext builds a context with the default bitmap font.
func NewContext() (*Context, error) { return NewContextWithFace(nil) }

// NewContextWithFace rasterises face into the font atlas. A nil face means
// the built-in 7x13 bitmap font.
func NewContextWithFace(face font.Face) (*Context, error) {
	atlas, err := newFontAtlas(face)
	if err != nil {
		return nil, err
	}
	return &Context{
		atlas:         atlas,
		viewports:     map[ViewportID]ViewportInfo{},
		state:         make(map[int]widgetState, 64),
		style:         DefaultStyle(),
		zoom:          1,
		focusedWindow: true,
		focusedWidget: -1,
		repaintDelay:  RepaintNever,
	}, nil
}

func (c *Context) Style() *Style { return &c.style }

// ScreenRect is the usable area in points for the current frame.
func (c *Context) ScreenRect() Rect { return c.screen }

// Time is the input time of the current frame, in seconds.
func (c *Context) Time() float64 { return c.time }

// Zoom is the accumulated zoom factor applied to text.
func (c *Context) Zoom() float32 { return c.zoom }

// Viewport returns the host-reported info for the current viewport.
func (c *Context) Viewport() ViewportInfo { return c.viewports[c.viewport] }

// BeginFrame consumes one frame of input.
func (c *Context) BeginFrame(in RawInput) {
	if in.ScreenRect != nil {
		if *in.ScreenRect != c.screen {
			c.frameDirty = true
		}
		c.screen = *in.ScreenRect
	}
	if in.MaxTextureSide > 0 {
		c.maxTextureSide = in.MaxTextureSide
	}
	c.viewport = in.ViewportID
	if in.Viewports != nil {
		c.viewports = in.Viewports
	}
	c.time = in.Time
	c.modifiers = in.Modifiers

	c.pressed, c.released = false, false
	c.scroll = Vec2{}
	c.events = c.events[:0]
	c.shapes = nil
	c.cursor = CursorIconDefault
	c.copied = ""
	c.commands = nil
	c.repaintDelay = RepaintNever

	for _, ev := range in.Events {
		c.frameDirty = true
		switch e := ev.(type) {
		case EventPointerMoved:
			c.pointer, c.hasPointer = e.Pos, true
		case EventPointerButton:
			c.pointer, c.hasPointer = e.Pos, true
			if e.Button != PointerPrimary {
				continue
			}
			if e.Pressed {
				c.pressed, c.down = true, true
			} else {
				c.released, c.down = true, false
			}
		case EventPointerGone:
			c.hasPointer = false
		case EventScroll:
			c.scroll.X += e.Delta.X
			c.scroll.Y += e.Delta.Y
		case EventZoom:
			c.zoom = clampf(c.zoom*e.Factor, 0.5, 3)
		case EventWindowFocused:
			c.focusedWindow = e.Focused
			if !e.Focused {
				c.focusedWidget = -1
			}
		default:
			c.events = append(c.events, ev)
		}
	}

	c.layout.reset(c.screen, c.style.Padding)
}

// EndFrame finishes the frame and returns everything it produced.
func (c *Context) EndFrame() FullOutput {
	var td TexturesDelta
	if !c.atlasSent {
		td.Set = append(td.Set, TextureSet{
			ID:    FontTextureID,
			Delta: ImageDelta{Image: c.atlas.image, Filter: FilterNearest},
		})
		c.atlasSent = true
	}

	if c.frameDirty || !td.IsEmpty() {
		c.repaintDelay = 0
	}
	c.frameDirty = false

	ppp := c.viewports[c.viewport].NativePixelsPerPoint
	if ppp <= 0 {
		ppp = 1
	}
	out := FullOutput{
		Platform: PlatformOutput{
			CopiedText: c.copied,
			CursorIcon: c.cursor,
		},
		Textures:       td,
		Shapes:         c.shapes,
		PixelsPerPoint: ppp,
		Viewports: map[ViewportID]ViewportOutput{
			c.viewport: {Commands: c.commands, RepaintDelay: c.repaintDelay},
		},
	}
	c.shapes = nil
	c.commands = nil
	return out
}

// Tessellate converts shapes into meshes ready for a painter.
func (c *Context) Tessellate(shapes []ClippedShape, pixelsPerPoint float32) []ClippedPrimitive {
	t := tessellator{atlas: c.atlas, ppp: pixelsPerPoint}
	return t.run(shapes)
}

// RequestRepaint asks for another frame to be rendered right away.
func (c *Context) RequestRepaint() { c.repaintDelay = 0 }

// RequestRepaintAfter asks for a render no later than d from now.
func (c *Context) RequestRepaintAfter(d time.Duration) {
	if d < c.repaintDelay {
		c.repaintDelay = d
	}
}

// SendViewportCmd queues a command for the host window.
func (c *Context) SendViewportCmd(cmd ViewportCommand) {
	c.commands = append(c.commands, cmd)
}

// CopyText puts text on the clipboard at the end of the frame.
func (c *Context) CopyText(s string) { c.copied = s }

// SetCursorIcon overrides the cursor for this frame.
func (c *Context) SetCursorIcon(icon CursorIcon) { c.cursor = icon }

// Events returns the frame's keyboard and clipboard events.
func (c *Context) Events() []Event { return c.events }

func (c *Context) paint(clip Rect, s Shape) {
	c.shapes = append(c.shapes, ClippedShape{Clip: clip, Shape: s})
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxTextureSide is the largest texture the painter accepts, as reported by the host.
func (c *Context) MaxTextureSide() int { return c.maxTextureSide }

// Modifiers held at the start of the frame.
func (c *Context) Modifiers() Modifiers { return c.modifiers }

// PointerDown reports whether the primary button is held.
func (c *Context) PointerDown() bool { return c.down }
