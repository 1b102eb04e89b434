package core

// Event is any native input or window event.
type Event interface{ isEvent() }

// Point is a position in logical points relative to the window's top-left.
type Point struct{ X, Y float64 }

// ScrollUnit tells how a wheel delta is measured.
type ScrollUnit int

const (
	ScrollLines ScrollUnit = iota
	ScrollPixels
)

type ScrollDelta struct {
	Unit ScrollUnit
	X, Y float32
}

// ----- mouse -----

type EventCursorMoved struct {
	Position  Point
	Modifiers Modifiers
}

type EventButtonPressed struct {
	Button    MouseButton
	Modifiers Modifiers
}

type EventButtonReleased struct {
	Button    MouseButton
	Modifiers Modifiers
}

type EventWheelScrolled struct {
	Delta     ScrollDelta
	Modifiers Modifiers
}

type EventCursorEntered struct{}

type EventCursorLeft struct{}

// ----- keyboard -----

type KeyState int

const (
	KeyDown KeyState = iota
	KeyUp
)

type EventKeyboard struct {
	State     KeyState
	Key       Key  // logical key, layout dependent
	Code      Code // physical key
	Modifiers Modifiers
	Repeat    bool
	// Text is what a key-down typed, e.g. "A" for Shift+A while Key stays
	// "a" on both edges. Empty when the backend has no separate text.
	Text string
}

// ----- window -----

type EventResized struct{ Info WindowInfo }

type EventFocused struct{}

type EventUnfocused struct{}

type EventWillClose struct{}

func (EventCursorMoved) isEvent()    {}
func (EventButtonPressed) isEvent()  {}
func (EventButtonReleased) isEvent() {}
func (EventWheelScrolled) isEvent()  {}
func (EventCursorEntered) isEvent()  {}
func (EventCursorLeft) isEvent()     {}
func (EventKeyboard) isEvent()       {}
func (EventResized) isEvent()        {}
func (EventFocused) isEvent()        {}
func (EventUnfocused) isEvent()      {}
func (EventWillClose) isEvent()      {}
