package ui

import (
	"math"
	"time"

	"github.com/zmann/noiseg8/engine/colors"
)

// RepaintNever is the repaint delay of a frame that needs no further render
// until new input arrives.
const RepaintNever = time.Duration(math.MaxInt64)

// CursorIcon is the cursor the UI wants shown.
type CursorIcon int

const (
	CursorIconDefault CursorIcon = iota
	CursorIconNone
	CursorIconContextMenu
	CursorIconHelp
	CursorIconPointingHand
	CursorIconProgress
	CursorIconWait
	CursorIconCell
	CursorIconCrosshair
	CursorIconText
	CursorIconVerticalText
	CursorIconAlias
	CursorIconCopy
	CursorIconMove
	CursorIconNoDrop
	CursorIconNotAllowed
	CursorIconGrab
	CursorIconGrabbing
	CursorIconAllScroll
	CursorIconResizeHorizontal
	CursorIconResizeNeSw
	CursorIconResizeNwSe
	CursorIconResizeVertical
	CursorIconResizeEast
	CursorIconResizeSouthEast
	CursorIconResizeSouth
	CursorIconResizeSouthWest
	CursorIconResizeWest
	CursorIconResizeNorthWest
	CursorIconResizeNorth
	CursorIconResizeNorthEast
	CursorIconResizeColumn
	CursorIconResizeRow
	CursorIconZoomIn
	CursorIconZoomOut

	cursorIconCount
)

// AllCursorIcons lists every CursorIcon value in declaration order.
func AllCursorIcons() []CursorIcon {
	out := make([]CursorIcon, 0, cursorIconCount)
	for c := CursorIcon(0); c < cursorIconCount; c++ {
		out = append(out, c)
	}
	return out
}

// ----- textures -----

type TextureID uint64

// FontTextureID is the engine-managed font atlas.
const FontTextureID TextureID = 0

type TextureFilter int

const (
	FilterLinear TextureFilter = iota
	FilterNearest
)

// Image is tightly packed premultiplied RGBA8, row-major, top-left origin.
type Image struct {
	Width, Height int
	Pixels        []uint8
}

// ImageDelta replaces a whole texture (Pos == nil) or a sub-rectangle of it.
type ImageDelta struct {
	Image  Image
	Pos    *[2]int
	Filter TextureFilter
}

func (d ImageDelta) IsWhole() bool { return d.Pos == nil }

type TextureSet struct {
	ID    TextureID
	Delta ImageDelta
}

// TexturesDelta is the set of texture changes produced by one frame. Set
// must be applied before painting, Free only after.
type TexturesDelta struct {
	Set  []TextureSet
	Free []TextureID
}

func (td TexturesDelta) IsEmpty() bool { return len(td.Set) == 0 && len(td.Free) == 0 }

// ----- shapes -----

// Shape is something the engine wants painted, in logical points.
type Shape interface{ isShape() }

type RectShape struct {
	Rect Rect
	Fill colors.Color
}

type TextShape struct {
	Pos   Pos2 // top-left of the first line
	Text  string
	Color colors.Color
	Scale float32 // 1 draws glyphs at their native size in points
}

type ClippedShape struct {
	Clip  Rect
	Shape Shape
}

func (RectShape) isShape() {}
func (TextShape) isShape() {}

// Vertex positions are in points; Color is premultiplied RGBA8.
type Vertex struct {
	Pos   Pos2
	UV    Pos2
	Color [4]uint8
}

type Mesh struct {
	Indices  []uint32
	Vertices []Vertex
	Texture  TextureID
}

func (m *Mesh) IsEmpty() bool { return len(m.Indices) == 0 }

type ClippedPrimitive struct {
	Clip Rect
	Mesh Mesh
}

// ----- viewport -----

// ViewportCommand asks the host window to do something.
type ViewportCommand interface{ isViewportCommand() }

type ViewportClose struct{}

type ViewportInnerSize struct{ Size Vec2 }

type ViewportTitle struct{ Title string }

func (ViewportClose) isViewportCommand()     {}
func (ViewportInnerSize) isViewportCommand() {}
func (ViewportTitle) isViewportCommand()     {}

type ViewportOutput struct {
	Commands     []ViewportCommand
	RepaintDelay time.Duration
}

type PlatformOutput struct {
	CopiedText string
	CursorIcon CursorIcon
}

// FullOutput is everything one frame produced.
type FullOutput struct {
	Platform       PlatformOutput
	Textures       TexturesDelta
	Shapes         []ClippedShape
	PixelsPerPoint float32
	Viewports      map[ViewportID]ViewportOutput
}
