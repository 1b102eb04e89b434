package glbackend

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/zmann/noiseg8/engine/colors"
	"github.com/zmann/noiseg8/engine/core"
	"github.com/zmann/noiseg8/engine/ui"
)

// ErrPainterInit wraps any failure to build the painter. There is no
// fallback renderer, so it aborts window construction.
var ErrPainterInit = errors.New("glbackend: painter init failed")

// Painter owns GPU-side textures and draws tessellated primitives. Every
// method requires the GL context to be current.
type Painter interface {
	MaxTextureSide() int
	Clear(size core.PhySize, c colors.Color)
	SetTexture(id ui.TextureID, delta ui.ImageDelta)
	PaintPrimitives(size core.PhySize, pixelsPerPoint float32, prims []ui.ClippedPrimitive)
	FreeTexture(id ui.TextureID)
	Destroy()
}

// PainterFactory builds a painter while ctx is current.
type PainterFactory func(ctx core.GLContext, log *slog.Logger) (Painter, error)

// Tessellator turns UI shapes into primitives.
type Tessellator interface {
	Tessellate(shapes []ui.ClippedShape, pixelsPerPoint float32) []ui.ClippedPrimitive
}

type Options struct {
	Logger     *slog.Logger
	NewPainter PainterFactory // nil means NewGLPainter
}

// Frame is one render request. Shapes and Textures are consumed.
type Frame struct {
	BgColor        colors.Color
	Size           core.PhySize
	PixelsPerPoint float32
	Shapes         []ui.ClippedShape
	Textures       ui.TexturesDelta
}

// Renderer bridges UI output onto a GL context that the host may share. The
// context is current only inside NewRenderer, Render and Destroy.
type Renderer struct {
	ctx            core.GLContext
	painter        Painter
	maxTextureSide int
	log            *slog.Logger
}

func NewRenderer(ctx core.GLContext, opts Options) (*Renderer, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	newPainter := opts.NewPainter
	if newPainter == nil {
		newPainter = NewGLPainter
	}

	g := Acquire(ctx)
	defer g.Release()

	p, err := newPainter(ctx, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPainterInit, err)
	}
	return &Renderer{
		ctx:            ctx,
		painter:        p,
		maxTextureSide: p.MaxTextureSide(),
		log:            log,
	}, nil
}

// MaxTextureSide is cached at construction so it can be read without the context.
func (r *Renderer) MaxTextureSide() int { return r.maxTextureSide }

// Render draws one frame: uploads, tessellate, paint, frees, swap. Frees
// run after painting because this frame's primitives may still use them.
func (r *Renderer) Render(tess Tessellator, f Frame) {
	g := Acquire(r.ctx)
	defer g.Release()

	r.painter.Clear(f.Size, f.BgColor)

	for _, set := range f.Textures.Set {
		r.painter.SetTexture(set.ID, set.Delta)
	}

	prims := tess.Tessellate(f.Shapes, f.PixelsPerPoint)
	r.painter.PaintPrimitives(f.Size, f.PixelsPerPoint, prims)

	for _, id := range f.Textures.Free {
		r.painter.FreeTexture(id)
	}

	r.ctx.SwapBuffers()
}

// Destroy releases painter resources. The context is current while it runs
// and must still be alive.
func (r *Renderer) Destroy() {
	if r.painter == nil {
		return
	}
	g := Acquire(r.ctx)
	defer g.Release()
	r.painter.Destroy()
	r.painter = nil
	r.log.Debug("renderer destroyed")
}
