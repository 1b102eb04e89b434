package ui

import (
	"math"

	"github.com/zmann/noiseg8/engine/colors"
)

// tessellator turns shapes into textured triangle meshes. Consecutive shapes
// sharing a clip rect are merged into one primitive.
type tessellator struct {
	atlas *fontAtlas
	ppp   float32
}

func (t *tessellator) run(shapes []ClippedShape) []ClippedPrimitive {
	var out []ClippedPrimitive
	for _, cs := range shapes {
		if !cs.Clip.IsPositive() {
			continue
		}
		if n := len(out); n == 0 || out[n-1].Clip != cs.Clip {
			out = append(out, ClippedPrimitive{Clip: cs.Clip, Mesh: Mesh{Texture: FontTextureID}})
		}
		mesh := &out[len(out)-1].Mesh
		switch s := cs.Shape.(type) {
		case RectShape:
			t.addRect(mesh, s.Rect, t.atlas.whiteUV, t.atlas.whiteUV, s.Fill)
		case TextShape:
			t.addText(mesh, s)
		}
	}
	// Drop primitives that ended up with nothing to draw.
	kept := out[:0]
	for _, p := range out {
		if !p.Mesh.IsEmpty() {
			kept = append(kept, p)
		}
	}
	return kept
}

func (t *tessellator) addText(mesh *Mesh, s TextShape) {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	penX, top := s.Pos.X, s.Pos.Y
	for _, r := range s.Text {
		if r == '\n' {
			penX = s.Pos.X
			top += t.atlas.lineHeight * scale
			continue
		}
		g := t.atlas.lookup(r)
		if g.w > 0 && g.h > 0 {
			x := t.snap(penX + g.bearingX*scale)
			y := t.snap(top + (t.atlas.ascent-g.bearingY)*scale)
			rect := RectFromMinSize(Pos2{x, y}, Vec2{g.w * scale, g.h * scale})
			t.addRect(mesh, rect, Pos2{g.u0, g.v0}, Pos2{g.u1, g.v1}, s.Color)
		}
		penX += g.advance * scale
	}
}

func (t *tessellator) addRect(mesh *Mesh, r Rect, uv0, uv1 Pos2, c colors.Color) {
	if !r.IsPositive() || c.A() <= 0 {
		return
	}
	col := c.Premultiplied().RGBA8()
	base := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices,
		Vertex{Pos: r.Min, UV: uv0, Color: col},
		Vertex{Pos: Pos2{r.Max.X, r.Min.Y}, UV: Pos2{uv1.X, uv0.Y}, Color: col},
		Vertex{Pos: Pos2{r.Min.X, r.Max.Y}, UV: Pos2{uv0.X, uv1.Y}, Color: col},
		Vertex{Pos: r.Max, UV: uv1, Color: col},
	)
	mesh.Indices = append(mesh.Indices,
		base+0, base+2, base+1,
		base+1, base+2, base+3,
	)
}

// snap rounds a point coordinate to the physical pixel grid.
func (t *tessellator) snap(v float32) float32 {
	if t.ppp <= 0 {
		return v
	}
	return float32(math.Round(float64(v*t.ppp))) / t.ppp
}
