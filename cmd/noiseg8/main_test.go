package main

import (
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zmann/noiseg8/engine/clipboard"
	"github.com/zmann/noiseg8/engine/colors"
	"github.com/zmann/noiseg8/engine/core"
	"github.com/zmann/noiseg8/engine/editor"
	glbackend "github.com/zmann/noiseg8/engine/gfx/gl"
	"github.com/zmann/noiseg8/engine/meter"
	"github.com/zmann/noiseg8/engine/platform"
	"github.com/zmann/noiseg8/engine/ui"
)

type countingGL struct{ swaps int }

func (g *countingGL) MakeCurrent()                         {}
func (g *countingGL) MakeNotCurrent()                      {}
func (g *countingGL) SwapBuffers()                         { g.swaps++ }
func (g *countingGL) GetProcAddress(string) unsafe.Pointer { return nil }

type stubWindow struct {
	gl     *countingGL
	closes int
}

func (w *stubWindow) Resize(core.Size)                   {}
func (w *stubWindow) SetTitle(string)                    {}
func (w *stubWindow) Close()                             { w.closes++ }
func (w *stubWindow) SetMouseCursor(core.MouseCursor)    {}
func (w *stubWindow) GLContext() (core.GLContext, error) { return w.gl, nil }

type nopPainter struct{}

func (nopPainter) MaxTextureSide() int                                          { return 2048 }
func (nopPainter) Clear(core.PhySize, colors.Color)                             {}
func (nopPainter) SetTexture(ui.TextureID, ui.ImageDelta)                       {}
func (nopPainter) PaintPrimitives(core.PhySize, float32, []ui.ClippedPrimitive) {}
func (nopPainter) FreeTexture(ui.TextureID)                                     {}
func (nopPainter) Destroy()                                                     {}

func newTestEditor(t *testing.T, quit <-chan struct{}) (*editor.Window[editorState], *stubWindow, *time.Time, *meter.PeakMeter) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Unix(1000, 0)
	bg := &atomic.Pointer[colors.Color]{}
	black := colors.Black
	bg.Store(&black)
	state := editorState{
		gain: &gainParam{},
		peak: meter.NewPeakMeter(0),
		bg:   bg,
		quit: quit,
	}

	win := &stubWindow{gl: &countingGL{}}
	w, err := editor.New(win, editor.Options{
		Window:     core.WindowOptions{Title: "NoiseG8", Width: 400, Height: 300},
		Logger:     log,
		Policy:     editor.StandardPolicy{},
		NewPainter: func(core.GLContext, *slog.Logger) (glbackend.Painter, error) { return nopPainter{}, nil },
		Clipboard:  clipboard.Options{Logger: log, Openers: []clipboard.Opener{}},
		Now:        func() time.Time { return now },
	}, state, build, update)
	require.NoError(t, err)
	return w, win, &now, state.peak
}

func TestMeterRendersOnEveryIdleTick(t *testing.T) {
	w, win, now, peak := newTestEditor(t, nil)

	const ticks = 120
	for i := range ticks {
		peak.Store(float32(i%10) / 10)
		w.OnFrame(win)
		*now = now.Add(platform.FrameInterval)
	}
	assert.Equal(t, ticks, win.gl.swaps)
	assert.Zero(t, win.closes)
}

func TestQuitClosesEditorOnce(t *testing.T) {
	quit := make(chan struct{})
	w, win, _, _ := newTestEditor(t, quit)
	w.OnFrame(win)
	close(quit)
	w.OnFrame(win)
	w.OnFrame(win)
	assert.Equal(t, 1, win.closes)
}
