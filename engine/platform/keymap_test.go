package platform

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	"github.com/zmann/noiseg8/engine/core"
)

func TestTranslateCodeRanges(t *testing.T) {
	assert.Equal(t, core.CodeKeyA, translateCode(glfw.KeyA))
	assert.Equal(t, core.CodeKeyV, translateCode(glfw.KeyV))
	assert.Equal(t, core.CodeKeyZ, translateCode(glfw.KeyZ))
	assert.Equal(t, core.CodeDigit0, translateCode(glfw.Key0))
	assert.Equal(t, core.CodeDigit9, translateCode(glfw.Key9))
	assert.Equal(t, core.CodeF12, translateCode(glfw.KeyF12))
	assert.Equal(t, core.CodeMetaLeft, translateCode(glfw.KeyLeftSuper))
	assert.Equal(t, core.CodeEnter, translateCode(glfw.KeyKPEnter))
	assert.Equal(t, core.CodeUnidentified, translateCode(glfw.KeyF25))
}

func TestNamedKey(t *testing.T) {
	n, ok := namedKey(core.CodeF3)
	assert.True(t, ok)
	assert.Equal(t, core.KeyF3, n)

	n, ok = namedKey(core.CodeControlRight)
	assert.True(t, ok)
	assert.Equal(t, core.KeyControl, n)

	_, ok = namedKey(core.CodeKeyA)
	assert.False(t, ok)
	_, ok = namedKey(core.CodeSpace)
	assert.False(t, ok)
}

func TestFallbackChar(t *testing.T) {
	assert.Equal(t, "q", fallbackChar(core.CodeKeyQ))
	assert.Equal(t, "7", fallbackChar(core.CodeDigit7))
	assert.Equal(t, " ", fallbackChar(core.CodeSpace))
	assert.Equal(t, `\`, fallbackChar(core.CodeBackslash))
	assert.Empty(t, fallbackChar(core.CodeEscape))
}

func TestTranslateMods(t *testing.T) {
	m := translateMods(glfw.ModShift | glfw.ModSuper)
	assert.True(t, m.Has(core.ModShift))
	assert.True(t, m.Has(core.ModMeta))
	assert.False(t, m.Has(core.ModControl))
	assert.Zero(t, translateMods(0))
}

func TestTranslateButton(t *testing.T) {
	assert.Equal(t, core.MouseLeft, translateButton(glfw.MouseButtonLeft))
	assert.Equal(t, core.MouseBack, translateButton(glfw.MouseButton4))
	assert.Equal(t, core.MouseOther, translateButton(glfw.MouseButton8))
}

func TestStandardCursor(t *testing.T) {
	assert.Equal(t, glfw.IBeamCursor, standardCursor(core.CursorText))
	assert.Equal(t, glfw.HResizeCursor, standardCursor(core.CursorColResize))
	assert.Equal(t, glfw.VResizeCursor, standardCursor(core.CursorNsResize))
	assert.Equal(t, glfw.ArrowCursor, standardCursor(core.CursorDefault))
	assert.Equal(t, glfw.ArrowCursor, standardCursor(core.CursorZoomIn))
}

type eventLog struct{ events []core.Event }

func (l *eventLog) OnFrame(core.Window)   {}
func (l *eventLog) OnDestroy(core.Window) {}
func (l *eventLog) OnEvent(_ core.Window, ev core.Event) core.EventStatus {
	l.events = append(l.events, ev)
	return core.EventCaptured
}

func TestCharKeepsKeyNameAndCarriesText(t *testing.T) {
	log := &eventLog{}
	g := &GLFWWindow{handler: log}
	g.pending = &core.EventKeyboard{
		State:     core.KeyDown,
		Key:       core.Character("a"),
		Code:      core.CodeKeyA,
		Modifiers: core.ModShift,
	}
	g.onChar(nil, 'A')

	assert.Nil(t, g.pending)
	if assert.Len(t, log.events, 1) {
		ev := log.events[0].(core.EventKeyboard)
		assert.Equal(t, core.Character("a"), ev.Key)
		assert.Equal(t, "A", ev.Text)
		assert.Equal(t, core.CodeKeyA, ev.Code)
	}
}

func TestFlushKeySendsKeyWithoutText(t *testing.T) {
	log := &eventLog{}
	g := &GLFWWindow{handler: log}
	g.pending = &core.EventKeyboard{State: core.KeyDown, Key: core.Character("v"), Code: core.CodeKeyV, Modifiers: core.ModControl}
	g.flushKey()
	g.flushKey()

	if assert.Len(t, log.events, 1) {
		ev := log.events[0].(core.EventKeyboard)
		assert.Equal(t, core.Character("v"), ev.Key)
		assert.Empty(t, ev.Text)
	}
}
