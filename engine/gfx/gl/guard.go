package glbackend

import "github.com/zmann/noiseg8/engine/core"

// ContextGuard keeps a GL context current between Acquire and Release.
//
//	g := Acquire(ctx)
//	defer g.Release()
type ContextGuard struct {
	ctx      core.GLContext
	released bool
}

// Acquire makes ctx current on the calling thread.
func Acquire(ctx core.GLContext) *ContextGuard {
	ctx.MakeCurrent()
	return &ContextGuard{ctx: ctx}
}

// Release makes the context not current. Calling it more than once is a no-op.
func (g *ContextGuard) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	g.ctx.MakeNotCurrent()
}
