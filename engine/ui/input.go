package ui

// Pos2 is a position in logical points.
type Pos2 struct{ X, Y float32 }

// Vec2 is a displacement in logical points.
type Vec2 struct{ X, Y float32 }

func (p Pos2) Add(v Vec2) Pos2 { return Pos2{p.X + v.X, p.Y + v.Y} }

type Rect struct{ Min, Max Pos2 }

func RectFromMinSize(min Pos2, size Vec2) Rect {
	return Rect{Min: min, Max: Pos2{min.X + size.X, min.Y + size.Y}}
}

func (r Rect) Width() float32  { return r.Max.X - r.Min.X }
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }
func (r Rect) Size() Vec2      { return Vec2{r.Width(), r.Height()} }

func (r Rect) Contains(p Pos2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersect returns the overlap of r and o; it may be empty.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{
		Min: Pos2{max(r.Min.X, o.Min.X), max(r.Min.Y, o.Min.Y)},
		Max: Pos2{min(r.Max.X, o.Max.X), min(r.Max.Y, o.Max.Y)},
	}
}

func (r Rect) IsPositive() bool { return r.Max.X > r.Min.X && r.Max.Y > r.Min.Y }

// Modifiers held while an event happened. Command is the platform's primary
// shortcut modifier: Ctrl on Windows and Linux, Cmd on macOS.
type Modifiers struct {
	Alt     bool
	Ctrl    bool
	Shift   bool
	MacCmd  bool
	Command bool
}

// IsNone reports whether no modifier is held.
func (m Modifiers) IsNone() bool { return m == Modifiers{} }

// ShiftOnly reports whether shift is the only modifier, if any, that is held.
func (m Modifiers) ShiftOnly() bool {
	m.Shift = false
	return m.IsNone()
}

type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
)

// Key is the engine's layout-neutral key vocabulary.
type Key int

const (
	KeyArrowDown Key = iota
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEscape
	KeyTab
	KeyBackspace
	KeyEnter
	KeySpace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyNum0
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

// Event is an input event queued for the next frame.
type Event interface{ isEvent() }

type EventPointerMoved struct{ Pos Pos2 }

type EventPointerButton struct {
	Pos       Pos2
	Button    PointerButton
	Pressed   bool
	Modifiers Modifiers
}

// EventPointerGone means the pointer left the window.
type EventPointerGone struct{}

type EventScroll struct{ Delta Vec2 }

// EventZoom carries a multiplicative zoom factor; 1 means no change.
type EventZoom struct{ Factor float32 }

type EventKey struct {
	Key       Key
	Pressed   bool
	Repeat    bool
	Modifiers Modifiers
}

type EventText struct{ Text string }

type EventCopy struct{}

type EventCut struct{}

type EventWindowFocused struct{ Focused bool }

func (EventPointerMoved) isEvent()  {}
func (EventPointerButton) isEvent() {}
func (EventPointerGone) isEvent()   {}
func (EventScroll) isEvent()        {}
func (EventZoom) isEvent()          {}
func (EventKey) isEvent()           {}
func (EventText) isEvent()          {}
func (EventCopy) isEvent()          {}
func (EventCut) isEvent()           {}
func (EventWindowFocused) isEvent() {}

// ViewportID addresses a top-level render target.
type ViewportID uint64

const RootViewportID ViewportID = 0

type ViewportInfo struct {
	Title                string
	NativePixelsPerPoint float32
	Focused              bool
	InnerRect            Rect
}

// RawInput is everything the engine needs to run one frame.
type RawInput struct {
	ViewportID     ViewportID
	Viewports      map[ViewportID]ViewportInfo
	ScreenRect     *Rect // nil keeps the previous frame's rect
	MaxTextureSide int   // 0 keeps the previous value
	Time           float64
	Modifiers      Modifiers
	Events         []Event
}

// NewRawInput returns an input buffer for the root viewport.
func NewRawInput() RawInput {
	return RawInput{
		ViewportID: RootViewportID,
		Viewports:  map[ViewportID]ViewportInfo{},
	}
}

// Push appends an event.
func (ri *RawInput) Push(ev Event) { ri.Events = append(ri.Events, ev) }

// Take moves the per-frame parts out of ri and returns them. Events, screen
// rect and max texture side are cleared; modifiers, time and viewports stay.
func (ri *RawInput) Take() RawInput {
	out := *ri
	out.Viewports = make(map[ViewportID]ViewportInfo, len(ri.Viewports))
	for id, vi := range ri.Viewports {
		out.Viewports[id] = vi
	}
	ri.Events = nil
	ri.ScreenRect = nil
	ri.MaxTextureSide = 0
	return out
}
