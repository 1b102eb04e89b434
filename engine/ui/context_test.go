package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/zmann/noiseg8/engine/colors"
)

func newInput(events ...Event) RawInput {
	in := NewRawInput()
	screen := RectFromMinSize(Pos2{}, Vec2{X: 300, Y: 200})
	in.ScreenRect = &screen
	in.Viewports[RootViewportID] = ViewportInfo{NativePixelsPerPoint: 2, InnerRect: screen}
	in.Events = events
	return in
}

func runFrame(t *testing.T, c *Context, in RawInput, build func()) FullOutput {
	t.Helper()
	c.BeginFrame(in)
	if build != nil {
		build()
	}
	return c.EndFrame()
}

func newTestContext(t *testing.T) *Context {
	t.Helper()
	c, err := NewContext()
	require.NoError(t, err)
	return c
}

func TestTakeMovesPerFrameFields(t *testing.T) {
	in := newInput(EventText{Text: "x"})
	in.MaxTextureSide = 2048
	in.Time = 1.5
	in.Modifiers = Modifiers{Shift: true}

	out := in.Take()
	assert.Len(t, out.Events, 1)
	require.NotNil(t, out.ScreenRect)
	assert.Equal(t, 2048, out.MaxTextureSide)

	assert.Empty(t, in.Events)
	assert.Nil(t, in.ScreenRect)
	assert.Zero(t, in.MaxTextureSide)
	assert.Equal(t, 1.5, in.Time)
	assert.True(t, in.Modifiers.Shift)

	// Viewports are copied, not shared.
	out.Viewports[RootViewportID] = ViewportInfo{Title: "changed"}
	assert.Empty(t, in.Viewports[RootViewportID].Title)
}

func TestFirstFrameUploadsAtlasOnce(t *testing.T) {
	c := newTestContext(t)
	out := runFrame(t, c, newInput(), nil)
	require.Len(t, out.Textures.Set, 1)
	set := out.Textures.Set[0]
	assert.Equal(t, FontTextureID, set.ID)
	assert.True(t, set.Delta.IsWhole())
	assert.Len(t, set.Delta.Image.Pixels, set.Delta.Image.Width*set.Delta.Image.Height*4)
	// The white texel used by solid fills.
	assert.Equal(t, []uint8{255, 255, 255, 255}, set.Delta.Image.Pixels[:4])
	assert.Equal(t, float32(2), out.PixelsPerPoint)

	out = runFrame(t, c, RawInput{Viewports: map[ViewportID]ViewportInfo{}}, nil)
	assert.True(t, out.Textures.IsEmpty())
}

func TestRepaintPolicy(t *testing.T) {
	c := newTestContext(t)
	out := runFrame(t, c, newInput(), nil)
	assert.Equal(t, time.Duration(0), out.Viewports[RootViewportID].RepaintDelay)

	idle := RawInput{Viewports: map[ViewportID]ViewportInfo{}}
	out = runFrame(t, c, idle, nil)
	assert.Equal(t, RepaintNever, out.Viewports[RootViewportID].RepaintDelay)

	out = runFrame(t, c, RawInput{Events: []Event{EventPointerMoved{Pos: Pos2{X: 1, Y: 1}}}}, nil)
	assert.Equal(t, time.Duration(0), out.Viewports[RootViewportID].RepaintDelay)

	out = runFrame(t, c, RawInput{}, func() {
		c.RequestRepaintAfter(time.Second)
		c.RequestRepaintAfter(200 * time.Millisecond)
		c.RequestRepaintAfter(time.Minute)
	})
	assert.Equal(t, 200*time.Millisecond, out.Viewports[RootViewportID].RepaintDelay)

	out = runFrame(t, c, RawInput{}, c.RequestRepaint)
	assert.Equal(t, time.Duration(0), out.Viewports[RootViewportID].RepaintDelay)
}

func TestButtonClick(t *testing.T) {
	c := newTestContext(t)
	at := Pos2{X: 12, Y: 12}
	var clicked bool
	build := func() { clicked = c.Button(1, "Close") }

	out := runFrame(t, c, newInput(
		EventPointerMoved{Pos: at},
		EventPointerButton{Pos: at, Button: PointerPrimary, Pressed: true},
	), build)
	assert.False(t, clicked)
	assert.Equal(t, CursorIconPointingHand, out.Platform.CursorIcon)
	assert.True(t, c.PointerDown())

	runFrame(t, c, RawInput{Events: []Event{
		EventPointerButton{Pos: at, Button: PointerPrimary, Pressed: false},
	}}, build)
	assert.True(t, clicked)
}

func TestButtonReleaseOutsideDoesNotClick(t *testing.T) {
	c := newTestContext(t)
	var clicked bool
	build := func() { clicked = c.Button(1, "Close") }
	runFrame(t, c, newInput(
		EventPointerButton{Pos: Pos2{X: 12, Y: 12}, Button: PointerPrimary, Pressed: true},
	), build)
	runFrame(t, c, RawInput{Events: []Event{
		EventPointerButton{Pos: Pos2{X: 290, Y: 190}, Button: PointerPrimary, Pressed: false},
	}}, build)
	assert.False(t, clicked)
}

func TestSliderDragAndScroll(t *testing.T) {
	c := newTestContext(t)
	v := float32(0)
	var changed bool
	build := func() { changed = c.Slider(1, "Gain", &v, -30, 30) }

	// The slider spans x 8..292 in a 300 wide screen with 8 padding.
	mid := Pos2{X: 150, Y: 12}
	runFrame(t, c, newInput(EventPointerButton{Pos: mid, Button: PointerPrimary, Pressed: true}), build)
	assert.InDelta(t, 0, v, 0.01)

	end := Pos2{X: 292, Y: 12}
	out := runFrame(t, c, RawInput{Events: []Event{EventPointerMoved{Pos: end}}}, build)
	assert.True(t, changed)
	assert.InDelta(t, 30, v, 1e-4)
	assert.Equal(t, CursorIconResizeHorizontal, out.Platform.CursorIcon)

	runFrame(t, c, RawInput{Events: []Event{
		EventPointerButton{Pos: end, Button: PointerPrimary, Pressed: false},
		EventScroll{Delta: Vec2{Y: -50}},
	}}, build)
	assert.InDelta(t, 24, v, 1e-4)
}

func TestTextEditFocusAndClipboard(t *testing.T) {
	c := newTestContext(t)
	text := "ab"
	build := func() { c.TextEdit(1, &text) }
	at := Pos2{X: 20, Y: 12}

	runFrame(t, c, newInput(EventText{Text: "ignored"}), build)
	assert.Equal(t, "ab", text)

	runFrame(t, c, RawInput{Events: []Event{
		EventPointerMoved{Pos: at},
		EventPointerButton{Pos: at, Button: PointerPrimary, Pressed: true},
	}}, build)

	out := runFrame(t, c, RawInput{Events: []Event{
		EventText{Text: "cd"},
		EventKey{Key: KeyBackspace, Pressed: true},
		EventCopy{},
	}}, build)
	assert.Equal(t, "abc", text)
	assert.Equal(t, "abc", out.Platform.CopiedText)

	// Nothing happened, but the caret still blinks.
	out = runFrame(t, c, RawInput{}, build)
	assert.Equal(t, 500*time.Millisecond, out.Viewports[RootViewportID].RepaintDelay)

	out = runFrame(t, c, RawInput{Events: []Event{EventCut{}}}, build)
	assert.Empty(t, text)
	assert.Equal(t, "abc", out.Platform.CopiedText)

	runFrame(t, c, RawInput{Events: []Event{EventWindowFocused{Focused: false}, EventText{Text: "x"}}}, build)
	assert.Empty(t, text)
}

func TestZoomIsClamped(t *testing.T) {
	c := newTestContext(t)
	runFrame(t, c, newInput(EventZoom{Factor: 10}), nil)
	assert.Equal(t, float32(3), c.Zoom())
	runFrame(t, c, RawInput{Events: []Event{EventZoom{Factor: 0.01}}}, nil)
	assert.Equal(t, float32(0.5), c.Zoom())
}

func TestOutputCarriesCommandsAndCursor(t *testing.T) {
	c := newTestContext(t)
	out := runFrame(t, c, newInput(), func() {
		c.SendViewportCmd(ViewportTitle{Title: "Gain"})
		c.SetCursorIcon(CursorIconWait)
		c.CopyText("hi")
	})
	vo := out.Viewports[RootViewportID]
	assert.Equal(t, []ViewportCommand{ViewportTitle{Title: "Gain"}}, vo.Commands)
	assert.Equal(t, CursorIconWait, out.Platform.CursorIcon)
	assert.Equal(t, "hi", out.Platform.CopiedText)

	out = runFrame(t, c, RawInput{}, nil)
	assert.Empty(t, out.Viewports[RootViewportID].Commands)
	assert.Equal(t, CursorIconDefault, out.Platform.CursorIcon)
	assert.Empty(t, out.Platform.CopiedText)
}

func TestTessellateRect(t *testing.T) {
	c := newTestContext(t)
	clip := RectFromMinSize(Pos2{}, Vec2{X: 100, Y: 100})
	prims := c.Tessellate([]ClippedShape{
		{Clip: clip, Shape: RectShape{Rect: RectFromMinSize(Pos2{X: 10, Y: 10}, Vec2{X: 20, Y: 5}), Fill: colors.Red.WithAlpha(0.5)}},
		{Clip: clip, Shape: RectShape{Rect: RectFromMinSize(Pos2{X: 40, Y: 10}, Vec2{X: 20, Y: 5}), Fill: colors.Transparent}},
		{Clip: Rect{}, Shape: RectShape{Rect: clip, Fill: colors.White}},
	}, 1)

	require.Len(t, prims, 1)
	m := prims[0].Mesh
	assert.Equal(t, FontTextureID, m.Texture)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, []uint32{0, 2, 1, 1, 2, 3}, m.Indices)
	assert.Equal(t, [4]uint8{128, 0, 0, 128}, m.Vertices[0].Color)
	assert.Equal(t, Pos2{X: 30, Y: 15}, m.Vertices[3].Pos)
}

func TestTessellateSplitsOnClipChange(t *testing.T) {
	c := newTestContext(t)
	a := RectFromMinSize(Pos2{}, Vec2{X: 50, Y: 50})
	b := RectFromMinSize(Pos2{X: 50}, Vec2{X: 50, Y: 50})
	r := RectShape{Rect: RectFromMinSize(Pos2{X: 1, Y: 1}, Vec2{X: 2, Y: 2}), Fill: colors.White}
	prims := c.Tessellate([]ClippedShape{{a, r}, {a, r}, {b, r}, {a, r}}, 1)
	require.Len(t, prims, 3)
	assert.Len(t, prims[0].Mesh.Vertices, 8)
	assert.Equal(t, b, prims[1].Clip)
}

func TestTessellateTextSnapsToPixels(t *testing.T) {
	c := newTestContext(t)
	clip := RectFromMinSize(Pos2{}, Vec2{X: 100, Y: 100})
	prims := c.Tessellate([]ClippedShape{
		{Clip: clip, Shape: TextShape{Pos: Pos2{X: 0.3, Y: 0.3}, Text: "Hi", Color: colors.White, Scale: 1}},
	}, 2)
	require.Len(t, prims, 1)
	require.Len(t, prims[0].Mesh.Vertices, 8)
	for _, v := range prims[0].Mesh.Vertices {
		assert.Equal(t, float32(0), v.Pos.X*2-float32(int(v.Pos.X*2)), "x=%v", v.Pos.X)
	}
}

func TestLayoutStacksWidgets(t *testing.T) {
	c := newTestContext(t)
	c.BeginFrame(newInput())
	c.Label("one")
	c.Label("two")
	out := c.EndFrame()
	require.Len(t, out.Shapes, 2)
	first := out.Shapes[0].Shape.(TextShape)
	second := out.Shapes[1].Shape.(TextShape)
	assert.Equal(t, Pos2{X: 8, Y: 8}, first.Pos)
	assert.Greater(t, second.Pos.Y, first.Pos.Y)
}

func TestContextWithTTFFace(t *testing.T) {
	face, err := ParseFontFace(goregular.TTF, 16)
	require.NoError(t, err)
	c, err := NewContextWithFace(face)
	require.NoError(t, err)
	out := runFrame(t, c, newInput(), func() { c.Label("Gain") })
	require.Len(t, out.Textures.Set, 1)
	assert.NotEmpty(t, c.Tessellate(out.Shapes, 1))
}

func TestFontFaceErrors(t *testing.T) {
	_, err := ParseFontFace([]byte("not a font"), 12)
	assert.ErrorContains(t, err, "parse font")
	_, err = LoadFontFace("/nonexistent/font.ttf", 12)
	assert.ErrorContains(t, err, "read font")
}
